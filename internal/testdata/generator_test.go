package testdata

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_UserFields(t *testing.T) {
	u := New(1).User()

	assert.NotEmpty(t, u.ID)
	assert.Contains(t, u.Email, "@example.com")
	assert.Contains(t, u.Email, strings.ToLower(u.FirstName))
	assert.GreaterOrEqual(t, len(u.Password), 8)
}

func TestGenerator_SeededSequencesDiverge(t *testing.T) {
	a := New(7)
	b := New(8)
	// Different seeds should produce different card numbers almost
	// surely; emails differ regardless because ids are unique.
	assert.NotEqual(t, a.CreditCard().Number, b.CreditCard().Number)
}

func TestGenerator_CreditCardsAreLuhnValid(t *testing.T) {
	g := New(42)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		card := g.CreditCard()
		assert.True(t, ValidLuhn(card.Number), "card %s (%s)", card.Number, card.Brand)
		seen[card.Brand] = true

		switch card.Brand {
		case "visa":
			assert.True(t, strings.HasPrefix(card.Number, "4"))
			assert.Len(t, card.Number, 16)
		case "mastercard":
			assert.True(t, strings.HasPrefix(card.Number, "51"))
			assert.Len(t, card.Number, 16)
		case "amex":
			assert.True(t, strings.HasPrefix(card.Number, "34"))
			assert.Len(t, card.Number, 15)
		default:
			t.Fatalf("unknown brand %q", card.Brand)
		}
	}
	// 50 draws cover all three brands with overwhelming probability.
	assert.Len(t, seen, 3)
}

func TestValidLuhn(t *testing.T) {
	assert.True(t, ValidLuhn("4532015112830366"))
	assert.False(t, ValidLuhn("4532015112830367"))
	assert.False(t, ValidLuhn(""))
	assert.False(t, ValidLuhn("4"))
}

func TestGenerator_ProductPriceHasTwoDecimals(t *testing.T) {
	g := New(3)
	for i := 0; i < 20; i++ {
		p := g.Product()
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.Less(t, p.Price, 500.0)
		assert.InDelta(t, p.Price, math.Round(p.Price*100)/100, 1e-9)
	}
}

func TestGenerator_OrderTotalsConsistent(t *testing.T) {
	g := New(11)
	order := g.Order(3)

	require.Len(t, order.Items, 3)

	var itemSum float64
	for _, item := range order.Items {
		assert.InDelta(t, item.Product.Price*float64(item.Quantity), item.Subtotal, 0.011)
		itemSum += item.Subtotal
	}
	assert.InDelta(t, itemSum, order.Subtotal, 0.011)
	assert.InDelta(t, order.Subtotal*0.08, order.Tax, 0.011)
	assert.InDelta(t, order.Subtotal+order.Tax+order.Shipping, order.Total, 0.011)
}

func TestGenerator_OrderMinimumOneItem(t *testing.T) {
	order := New(5).Order(0)
	assert.Len(t, order.Items, 1)
}

func TestGenerator_FreeShippingOverFifty(t *testing.T) {
	g := New(99)
	for i := 0; i < 10; i++ {
		order := g.Order(2)
		if order.Subtotal >= 50 {
			assert.Zero(t, order.Shipping)
		} else {
			assert.Equal(t, 5.99, order.Shipping)
		}
	}
}
