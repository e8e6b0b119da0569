package browser

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"webpilot/pkg/logging"
)

// DefaultWaitTimeout bounds element waits when the caller does not
// pass an explicit timeout.
const DefaultWaitTimeout = 10 * time.Second

// Page is the base page object: it wraps a Driver with base-URL
// resolution, bounded waits and screenshot-on-failure. Concrete page
// objects embed it and add their selectors on top.
type Page struct {
	driver        Driver
	baseURL       string
	screenshotDir string
	waitTimeout   time.Duration
}

// NewPage creates a base page object. screenshotDir may be empty to
// disable failure captures.
func NewPage(driver Driver, baseURL, screenshotDir string) *Page {
	return &Page{
		driver:        driver,
		baseURL:       strings.TrimRight(baseURL, "/"),
		screenshotDir: screenshotDir,
		waitTimeout:   DefaultWaitTimeout,
	}
}

// Driver exposes the underlying driver for helpers that operate on
// the seam directly (mobile emulation, metric collection).
func (p *Page) Driver() Driver {
	return p.driver
}

// Open navigates to path resolved against the base URL. Absolute
// URLs are used as-is.
func (p *Page) Open(ctx context.Context, path string) error {
	target := path
	if u, err := url.Parse(path); err == nil && !u.IsAbs() {
		target = p.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	logging.Debug("Page", "Navigating to %s", target)
	return p.Do(ctx, "open "+target, func() error {
		return p.driver.Navigate(ctx, target)
	})
}

// Click clicks the selector after waiting for it to become visible.
func (p *Page) Click(ctx context.Context, selector string) error {
	return p.Do(ctx, "click "+selector, func() error {
		if err := p.driver.WaitVisible(ctx, selector, p.waitTimeout); err != nil {
			return err
		}
		return p.driver.Click(ctx, selector)
	})
}

// Fill waits for the selector and replaces its value.
func (p *Page) Fill(ctx context.Context, selector, value string) error {
	return p.Do(ctx, "fill "+selector, func() error {
		if err := p.driver.WaitVisible(ctx, selector, p.waitTimeout); err != nil {
			return err
		}
		return p.driver.Fill(ctx, selector, value)
	})
}

// Text returns the visible text of the selector.
func (p *Page) Text(ctx context.Context, selector string) (string, error) {
	if err := p.driver.WaitVisible(ctx, selector, p.waitTimeout); err != nil {
		p.captureFailure(ctx, "text "+selector)
		return "", err
	}
	return p.driver.Text(ctx, selector)
}

// WaitVisible waits for the selector with the page's default timeout.
func (p *Page) WaitVisible(ctx context.Context, selector string) error {
	return p.Do(ctx, "wait "+selector, func() error {
		return p.driver.WaitVisible(ctx, selector, p.waitTimeout)
	})
}

// WaitHidden waits for the selector to disappear.
func (p *Page) WaitHidden(ctx context.Context, selector string) error {
	return p.Do(ctx, "wait hidden "+selector, func() error {
		return p.driver.WaitHidden(ctx, selector, p.waitTimeout)
	})
}

// Title returns the current document title.
func (p *Page) Title(ctx context.Context) (string, error) {
	return p.driver.Title(ctx)
}

// Do runs a page step and captures a screenshot when it fails. The
// screenshot lands in the configured directory named after the step,
// so a failed run leaves visual evidence next to its log line.
func (p *Page) Do(ctx context.Context, step string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	p.captureFailure(ctx, step)
	return fmt.Errorf("step %q failed: %w", step, err)
}

func (p *Page) captureFailure(ctx context.Context, step string) {
	if p.screenshotDir == "" {
		return
	}
	shot, err := p.driver.Screenshot(ctx)
	if err != nil {
		logging.Warn("Page", "Failure screenshot for %q could not be captured: %v", step, err)
		return
	}
	if err := os.MkdirAll(p.screenshotDir, 0o755); err != nil {
		logging.Warn("Page", "Cannot create screenshot directory: %v", err)
		return
	}
	name := fmt.Sprintf("%s-%s.png", sanitizeStep(step), time.Now().Format("20060102-150405"))
	path := filepath.Join(p.screenshotDir, name)
	if err := os.WriteFile(path, shot, 0o644); err != nil {
		logging.Warn("Page", "Cannot write failure screenshot: %v", err)
		return
	}
	logging.Info("Page", "Failure screenshot saved to %s", path)
}

// sanitizeStep turns a step description into a safe file name stem.
func sanitizeStep(step string) string {
	var sb strings.Builder
	for _, r := range step {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	out := sb.String()
	if len(out) > 80 {
		out = out[:80]
	}
	return out
}
