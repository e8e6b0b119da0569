// Package mock provides a scriptable Driver implementation for tests.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"webpilot/internal/browser"
)

// Call records one driver invocation for assertion.
type Call struct {
	Op   string
	Args []string
}

// Driver is an in-memory browser.Driver. Behavior is scripted per
// selector/expression; everything else succeeds and is recorded.
type Driver struct {
	mu sync.Mutex

	// Texts maps selector -> text returned by Text.
	Texts map[string]string
	// Attributes maps "selector\x00name" -> value.
	Attributes map[string]string
	// EvalResults maps expression -> decoded result.
	EvalResults map[string]interface{}
	// FailOn maps op+" "+selector to an error to return.
	FailOn map[string]error
	// ScreenshotData is returned by Screenshot.
	ScreenshotData []byte

	calls    []Call
	url      string
	title    string
	viewport browser.Viewport
	ua       string
	touches  []browser.TouchEvent
}

// NewDriver creates an empty scriptable driver.
func NewDriver() *Driver {
	return &Driver{
		Texts:          map[string]string{},
		Attributes:     map[string]string{},
		EvalResults:    map[string]interface{}{},
		FailOn:         map[string]error{},
		ScreenshotData: []byte("png"),
	}
}

func (d *Driver) record(op string, args ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Op: op, Args: args})
	if len(args) > 0 {
		if err, ok := d.FailOn[op+" "+args[0]]; ok {
			return err
		}
	}
	if err, ok := d.FailOn[op]; ok {
		return err
	}
	return nil
}

// Calls returns a copy of the recorded invocations.
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// CallsFor returns the recorded invocations of one operation.
func (d *Driver) CallsFor(op string) []Call {
	var out []Call
	for _, c := range d.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// TouchEvents returns the dispatched touch sequence.
func (d *Driver) TouchEvents() []browser.TouchEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]browser.TouchEvent, len(d.touches))
	copy(out, d.touches)
	return out
}

// Viewport returns the last applied viewport.
func (d *Driver) Viewport() browser.Viewport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewport
}

// UserAgent returns the last applied user agent.
func (d *Driver) UserAgent() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ua
}

func (d *Driver) Navigate(ctx context.Context, url string) error {
	if err := d.record("navigate", url); err != nil {
		return err
	}
	d.mu.Lock()
	d.url = url
	d.mu.Unlock()
	return nil
}

func (d *Driver) Click(ctx context.Context, selector string) error {
	return d.record("click", selector)
}

func (d *Driver) Fill(ctx context.Context, selector, value string) error {
	return d.record("fill", selector, value)
}

func (d *Driver) Text(ctx context.Context, selector string) (string, error) {
	if err := d.record("text", selector); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.Texts[selector]; ok {
		return t, nil
	}
	return "", fmt.Errorf("no text scripted for selector %q", selector)
}

func (d *Driver) Attribute(ctx context.Context, selector, name string) (string, error) {
	if err := d.record("attribute", selector, name); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Attributes[selector+"\x00"+name], nil
}

func (d *Driver) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return d.record("waitVisible", selector)
}

func (d *Driver) WaitHidden(ctx context.Context, selector string, timeout time.Duration) error {
	return d.record("waitHidden", selector)
}

func (d *Driver) Evaluate(ctx context.Context, expression string) (interface{}, error) {
	if err := d.record("evaluate", expression); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := d.EvalResults[expression]; ok {
		return r, nil
	}
	return nil, nil
}

func (d *Driver) Screenshot(ctx context.Context) ([]byte, error) {
	if err := d.record("screenshot"); err != nil {
		return nil, err
	}
	return d.ScreenshotData, nil
}

func (d *Driver) SetViewport(ctx context.Context, vp browser.Viewport) error {
	if err := d.record("setViewport"); err != nil {
		return err
	}
	d.mu.Lock()
	d.viewport = vp
	d.mu.Unlock()
	return nil
}

func (d *Driver) SetUserAgent(ctx context.Context, ua string) error {
	if err := d.record("setUserAgent", ua); err != nil {
		return err
	}
	d.mu.Lock()
	d.ua = ua
	d.mu.Unlock()
	return nil
}

func (d *Driver) DispatchTouch(ctx context.Context, event browser.TouchEvent) error {
	if err := d.record("dispatchTouch", string(event.Phase)); err != nil {
		return err
	}
	d.mu.Lock()
	d.touches = append(d.touches, event)
	d.mu.Unlock()
	return nil
}

func (d *Driver) Title(ctx context.Context) (string, error) {
	if err := d.record("title"); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title, nil
}

// SetTitle scripts the document title.
func (d *Driver) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
}

func (d *Driver) URL(ctx context.Context) (string, error) {
	if err := d.record("url"); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url, nil
}

var _ browser.Driver = (*Driver)(nil)
