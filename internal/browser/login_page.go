package browser

import "context"

// LoginPage is the canonical example page object: selectors as
// constants, flows as methods over the embedded base page.
type LoginPage struct {
	*Page
}

const (
	loginPath          = "/login"
	usernameSelector   = "#username"
	passwordSelector   = "#password"
	submitSelector     = "button[type=submit]"
	loginErrorSelector = ".login-error"
	accountMenu        = "#account-menu"
)

// NewLoginPage creates the login page object over a base page.
func NewLoginPage(page *Page) *LoginPage {
	return &LoginPage{Page: page}
}

// Open navigates to the login form.
func (p *LoginPage) Open(ctx context.Context) error {
	return p.Page.Open(ctx, loginPath)
}

// Login submits credentials and waits for the account menu to show,
// which marks a successful session.
func (p *LoginPage) Login(ctx context.Context, username, password string) error {
	if err := p.Fill(ctx, usernameSelector, username); err != nil {
		return err
	}
	if err := p.Fill(ctx, passwordSelector, password); err != nil {
		return err
	}
	if err := p.Click(ctx, submitSelector); err != nil {
		return err
	}
	return p.WaitVisible(ctx, accountMenu)
}

// ErrorMessage returns the login failure banner text.
func (p *LoginPage) ErrorMessage(ctx context.Context) (string, error) {
	return p.Text(ctx, loginErrorSelector)
}
