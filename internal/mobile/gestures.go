package mobile

import (
	"context"
	"fmt"

	"webpilot/internal/browser"
)

// SwipeDirection names the four swipe axes.
type SwipeDirection string

const (
	SwipeUp    SwipeDirection = "up"
	SwipeDown  SwipeDirection = "down"
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

// swipeSteps is the number of intermediate touchmove events per
// swipe. Engines collapse a two-event swipe into a tap, so the path
// is interpolated.
const swipeSteps = 8

// Tap dispatches a single-finger touch at the given point.
func (e *Emulator) Tap(ctx context.Context, x, y float64) error {
	points := []browser.TouchPoint{{X: x, Y: y}}
	if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchStart, Points: points}); err != nil {
		return fmt.Errorf("tap start failed: %w", err)
	}
	if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchEnd, Points: points}); err != nil {
		return fmt.Errorf("tap end failed: %w", err)
	}
	return nil
}

// Swipe drags one finger from (x, y) over distance pixels in the
// given direction.
func (e *Emulator) Swipe(ctx context.Context, x, y float64, dir SwipeDirection, distance float64) error {
	dx, dy := 0.0, 0.0
	switch dir {
	case SwipeUp:
		dy = -distance
	case SwipeDown:
		dy = distance
	case SwipeLeft:
		dx = -distance
	case SwipeRight:
		dx = distance
	default:
		return fmt.Errorf("unknown swipe direction %q", dir)
	}

	start := browser.TouchPoint{X: x, Y: y}
	if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchStart, Points: []browser.TouchPoint{start}}); err != nil {
		return fmt.Errorf("swipe start failed: %w", err)
	}
	for i := 1; i <= swipeSteps; i++ {
		frac := float64(i) / float64(swipeSteps)
		p := browser.TouchPoint{X: x + dx*frac, Y: y + dy*frac}
		if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchMove, Points: []browser.TouchPoint{p}}); err != nil {
			return fmt.Errorf("swipe move failed: %w", err)
		}
	}
	end := browser.TouchPoint{X: x + dx, Y: y + dy}
	if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchEnd, Points: []browser.TouchPoint{end}}); err != nil {
		return fmt.Errorf("swipe end failed: %w", err)
	}
	return nil
}

// Pinch performs a two-finger pinch centered on (x, y). scale > 1
// zooms in (fingers move apart), scale < 1 zooms out.
func (e *Emulator) Pinch(ctx context.Context, x, y, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("pinch scale must be positive, got %v", scale)
	}

	const startSpread = 50.0
	endSpread := startSpread * scale

	two := func(spread float64) []browser.TouchPoint {
		return []browser.TouchPoint{
			{X: x - spread, Y: y},
			{X: x + spread, Y: y},
		}
	}

	if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchStart, Points: two(startSpread)}); err != nil {
		return fmt.Errorf("pinch start failed: %w", err)
	}
	for i := 1; i <= swipeSteps; i++ {
		frac := float64(i) / float64(swipeSteps)
		spread := startSpread + (endSpread-startSpread)*frac
		if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchMove, Points: two(spread)}); err != nil {
			return fmt.Errorf("pinch move failed: %w", err)
		}
	}
	if err := e.driver.DispatchTouch(ctx, browser.TouchEvent{Phase: browser.TouchEnd, Points: two(endSpread)}); err != nil {
		return fmt.Errorf("pinch end failed: %w", err)
	}
	return nil
}
