package testdata

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Generator produces randomized domain fixtures for test input. Seeded
// generators replay the same sequence, so a failing test can pin its
// data by logging the seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator from the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var (
	firstNames = []string{"Alex", "Sam", "Jordan", "Taylor", "Casey", "Riley", "Morgan", "Jamie", "Quinn", "Avery"}
	lastNames  = []string{"Smith", "Garcia", "Chen", "Johnson", "Patel", "Kim", "Brown", "Novak", "Silva", "Ito"}
	streets    = []string{"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Park Blvd", "Lake Rd", "Hill St", "River Way"}
	cities     = []string{"Springfield", "Riverton", "Fairview", "Georgetown", "Clinton", "Salem", "Madison", "Ashland"}
	states     = []string{"CA", "NY", "TX", "WA", "OR", "CO", "IL", "MA"}
	countries  = []string{"US", "CA", "GB", "DE", "NL"}
	adjectives = []string{"Sleek", "Rugged", "Compact", "Ergonomic", "Refined", "Modular", "Wireless", "Solar"}
	nouns      = []string{"Keyboard", "Lamp", "Backpack", "Speaker", "Notebook", "Charger", "Bottle", "Headset"}
)

// User is a login-ready account fixture.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// Address is a shippable postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CreditCard carries a brand-prefixed, checksum-valid test number.
// The numbers pass format validation but belong to no real account.
type CreditCard struct {
	Brand  string `json:"brand"`
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
	Holder string `json:"holder"`
}

// Product is a purchasable item fixture.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// LineItem is one product at a quantity within an order.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Order is a checkout fixture whose totals are internally consistent:
// Total = sum(Subtotal) + Tax + Shipping.
type Order struct {
	ID       string     `json:"id"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Shipping float64    `json:"shipping"`
	Total    float64    `json:"total"`
	ShipTo   Address    `json:"shipTo"`
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// cents keeps generated money values representable at two decimals.
func (g *Generator) cents(minDollars, maxDollars int) float64 {
	return float64(g.rng.Intn((maxDollars-minDollars)*100)+minDollars*100) / 100
}

// User generates an account with a unique email.
func (g *Generator) User() User {
	first := g.pick(firstNames)
	last := g.pick(lastNames)
	id := uuid.NewString()
	return User{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s.%s@example.com", strings.ToLower(first), strings.ToLower(last), id[:8]),
		Password:  fmt.Sprintf("Pw!%d%s", g.rng.Intn(9000)+1000, id[:6]),
		Phone:     fmt.Sprintf("555-%03d-%04d", g.rng.Intn(1000), g.rng.Intn(10000)),
	}
}

// Address generates a postal address.
func (g *Generator) Address() Address {
	return Address{
		Street:  fmt.Sprintf("%d %s", g.rng.Intn(9899)+100, g.pick(streets)),
		City:    g.pick(cities),
		State:   g.pick(states),
		Zip:     fmt.Sprintf("%05d", g.rng.Intn(100000)),
		Country: g.pick(countries),
	}
}

// cardBrands maps brand name to issuer prefix and number length.
var cardBrands = []struct {
	name   string
	prefix string
	length int
}{
	{"visa", "4", 16},
	{"mastercard", "51", 16},
	{"amex", "34", 15},
}

// CreditCard generates a card whose number carries the brand's issuer
// prefix and a valid trailing check digit.
func (g *Generator) CreditCard() CreditCard {
	brand := cardBrands[g.rng.Intn(len(cardBrands))]

	digits := []byte(brand.prefix)
	for len(digits) < brand.length-1 {
		digits = append(digits, byte('0'+g.rng.Intn(10)))
	}
	digits = append(digits, byte('0'+checkDigit(string(digits))))

	return CreditCard{
		Brand:  brand.name,
		Number: string(digits),
		Expiry: fmt.Sprintf("%02d/%02d", g.rng.Intn(12)+1, 27+g.rng.Intn(5)),
		CVV:    fmt.Sprintf("%03d", g.rng.Intn(1000)),
		Holder: fmt.Sprintf("%s %s", g.pick(firstNames), g.pick(lastNames)),
	}
}

// Product generates a purchasable item.
func (g *Generator) Product() Product {
	return Product{
		ID:    uuid.NewString(),
		Name:  fmt.Sprintf("%s %s", g.pick(adjectives), g.pick(nouns)),
		SKU:   fmt.Sprintf("SKU-%06d", g.rng.Intn(1000000)),
		Price: g.cents(5, 500),
		Stock: g.rng.Intn(200) + 1,
	}
}

const taxRate = 0.08

// Order generates an order of itemCount distinct line items with
// consistent totals.
func (g *Generator) Order(itemCount int) Order {
	if itemCount < 1 {
		itemCount = 1
	}

	order := Order{
		ID:     uuid.NewString(),
		ShipTo: g.Address(),
	}
	for i := 0; i < itemCount; i++ {
		p := g.Product()
		qty := g.rng.Intn(3) + 1
		sub := round2(p.Price * float64(qty))
		order.Items = append(order.Items, LineItem{Product: p, Quantity: qty, Subtotal: sub})
		order.Subtotal = round2(order.Subtotal + sub)
	}
	order.Tax = round2(order.Subtotal * taxRate)
	if order.Subtotal < 50 {
		order.Shipping = 5.99
	}
	order.Total = round2(order.Subtotal + order.Tax + order.Shipping)
	return order
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
