package mobile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpilot/internal/browser"
	"webpilot/internal/browser/mock"
)

func TestProfiles_GetBuiltin(t *testing.T) {
	profiles := NewProfiles()

	prof, err := profiles.Get("iPhone 14")
	require.NoError(t, err)
	assert.Equal(t, 390, prof.Width)
	assert.True(t, prof.Touch)
	assert.True(t, prof.Mobile)

	_, err = profiles.Get("Nokia 3310")
	assert.Error(t, err)
}

func TestProfiles_LoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices.yaml")
	content := `
- name: Kiosk
  width: 1080
  height: 1920
  pixel_ratio: 1
  user_agent: KioskBrowser/1.0
  touch: true
  mobile: false
- name: iPhone 14
  width: 400
  height: 850
  pixel_ratio: 3
  user_agent: Custom/1.0
  touch: true
  mobile: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	profiles := NewProfiles()
	require.NoError(t, profiles.LoadOverlay(path))

	kiosk, err := profiles.Get("Kiosk")
	require.NoError(t, err)
	assert.Equal(t, 1080, kiosk.Width)

	// Overlay replaces same-name built-in.
	iphone, err := profiles.Get("iPhone 14")
	require.NoError(t, err)
	assert.Equal(t, 400, iphone.Width)
}

func TestProfiles_LoadOverlayRejectsNameless(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- width: 100\n  height: 100\n"), 0o644))

	profiles := NewProfiles()
	assert.Error(t, profiles.LoadOverlay(path))
}

func TestEmulator_ApplySetsUserAgentAndViewport(t *testing.T) {
	driver := mock.NewDriver()
	emulator := NewEmulator(driver)
	profiles := NewProfiles()

	prof, err := profiles.Get("Pixel 7")
	require.NoError(t, err)
	require.NoError(t, emulator.Apply(context.Background(), prof))

	assert.Equal(t, prof.UserAgent, driver.UserAgent())
	vp := driver.Viewport()
	assert.Equal(t, 412, vp.Width)
	assert.Equal(t, 915, vp.Height)
	assert.True(t, vp.HasTouch)
}

func TestEmulator_TapEmitsStartThenEnd(t *testing.T) {
	driver := mock.NewDriver()
	emulator := NewEmulator(driver)

	require.NoError(t, emulator.Tap(context.Background(), 100, 200))

	events := driver.TouchEvents()
	require.Len(t, events, 2)
	assert.Equal(t, browser.TouchStart, events[0].Phase)
	assert.Equal(t, browser.TouchEnd, events[1].Phase)
	assert.Equal(t, 100.0, events[0].Points[0].X)
}

func TestEmulator_SwipeInterpolatesMoves(t *testing.T) {
	driver := mock.NewDriver()
	emulator := NewEmulator(driver)

	require.NoError(t, emulator.Swipe(context.Background(), 200, 600, SwipeUp, 400))

	events := driver.TouchEvents()
	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, browser.TouchStart, events[0].Phase)
	assert.Equal(t, browser.TouchEnd, events[len(events)-1].Phase)
	for _, e := range events[1 : len(events)-1] {
		assert.Equal(t, browser.TouchMove, e.Phase)
	}
	// Swipe up ends above the origin.
	assert.Equal(t, 200.0, events[len(events)-1].Points[0].Y)
}

func TestEmulator_SwipeUnknownDirection(t *testing.T) {
	emulator := NewEmulator(mock.NewDriver())
	assert.Error(t, emulator.Swipe(context.Background(), 0, 0, SwipeDirection("diagonal"), 10))
}

func TestEmulator_PinchSpreadChanges(t *testing.T) {
	driver := mock.NewDriver()
	emulator := NewEmulator(driver)

	require.NoError(t, emulator.Pinch(context.Background(), 300, 300, 2.0))

	events := driver.TouchEvents()
	require.GreaterOrEqual(t, len(events), 3)
	first := events[0].Points
	last := events[len(events)-1].Points
	require.Len(t, first, 2)
	require.Len(t, last, 2)

	startSpread := first[1].X - first[0].X
	endSpread := last[1].X - last[0].X
	assert.Greater(t, endSpread, startSpread, "zoom-in must move fingers apart")

	assert.Error(t, emulator.Pinch(context.Background(), 0, 0, -1))
}
