package browser

import (
	"context"
	"time"
)

// TouchPhase is one stage of a synthetic touch sequence.
type TouchPhase string

const (
	TouchStart  TouchPhase = "touchstart"
	TouchMove   TouchPhase = "touchmove"
	TouchEnd    TouchPhase = "touchend"
	TouchCancel TouchPhase = "touchcancel"
)

// TouchPoint is a single finger position within a touch event.
type TouchPoint struct {
	X float64
	Y float64
}

// TouchEvent is one synthetic touch dispatched to the page.
type TouchEvent struct {
	Phase  TouchPhase
	Points []TouchPoint
}

// Viewport describes the emulated screen.
type Viewport struct {
	Width       int
	Height      int
	PixelRatio  float64
	Mobile      bool
	HasTouch    bool
	Orientation string
}

// Driver abstracts the external browser-automation engine. The engine
// itself (navigation internals, selector resolution, media capture)
// is a black box behind this seam; everything above it programs
// against these operations only.
type Driver interface {
	// Navigate loads the given URL and waits for the load event.
	Navigate(ctx context.Context, url string) error
	// Click clicks the first element matching selector.
	Click(ctx context.Context, selector string) error
	// Fill replaces the value of the matching input element.
	Fill(ctx context.Context, selector, value string) error
	// Text returns the visible text of the matching element.
	Text(ctx context.Context, selector string) (string, error)
	// Attribute returns the named attribute of the matching element.
	Attribute(ctx context.Context, selector, name string) (string, error)
	// WaitVisible blocks until the element is visible or the timeout expires.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	// WaitHidden blocks until the element is hidden or detached.
	WaitHidden(ctx context.Context, selector string, timeout time.Duration) error
	// Evaluate runs a JavaScript expression in the page and decodes
	// its JSON result.
	Evaluate(ctx context.Context, expression string) (interface{}, error)
	// Screenshot captures the current page as PNG bytes.
	Screenshot(ctx context.Context) ([]byte, error)
	// SetViewport applies screen emulation.
	SetViewport(ctx context.Context, vp Viewport) error
	// SetUserAgent overrides the user agent for subsequent loads.
	SetUserAgent(ctx context.Context, ua string) error
	// DispatchTouch sends a synthetic touch event.
	DispatchTouch(ctx context.Context, event TouchEvent) error
	// Title returns the current document title.
	Title(ctx context.Context) (string, error)
	// URL returns the current location.
	URL(ctx context.Context) (string, error)
}
