package mobile

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"webpilot/internal/browser"
	"webpilot/pkg/logging"
)

// DeviceProfile describes one emulated device.
type DeviceProfile struct {
	Name       string  `yaml:"name"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	PixelRatio float64 `yaml:"pixel_ratio"`
	UserAgent  string  `yaml:"user_agent"`
	Touch      bool    `yaml:"touch"`
	Mobile     bool    `yaml:"mobile"`
}

// builtinProfiles covers the device classes the suite targets by
// default. Profiles loaded from YAML overlay these by name.
var builtinProfiles = map[string]DeviceProfile{
	"iPhone 14": {
		Name: "iPhone 14", Width: 390, Height: 844, PixelRatio: 3,
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
		Touch:     true, Mobile: true,
	},
	"iPhone SE": {
		Name: "iPhone SE", Width: 375, Height: 667, PixelRatio: 2,
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Mobile/15E148 Safari/604.1",
		Touch:     true, Mobile: true,
	},
	"Pixel 7": {
		Name: "Pixel 7", Width: 412, Height: 915, PixelRatio: 2.625,
		UserAgent: "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Mobile Safari/537.36",
		Touch:     true, Mobile: true,
	},
	"Galaxy S22": {
		Name: "Galaxy S22", Width: 360, Height: 780, PixelRatio: 3,
		UserAgent: "Mozilla/5.0 (Linux; Android 13; SM-S901B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Mobile Safari/537.36",
		Touch:     true, Mobile: true,
	},
	"iPad Air": {
		Name: "iPad Air", Width: 820, Height: 1180, PixelRatio: 2,
		UserAgent: "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
		Touch:     true, Mobile: false,
	},
}

// Profiles holds the resolvable device profiles.
type Profiles struct {
	byName map[string]DeviceProfile
}

// NewProfiles returns the built-in profile set.
func NewProfiles() *Profiles {
	m := make(map[string]DeviceProfile, len(builtinProfiles))
	for k, v := range builtinProfiles {
		m[k] = v
	}
	return &Profiles{byName: m}
}

// LoadOverlay merges profiles from a YAML file ([]DeviceProfile) over
// the built-ins. Same-name entries replace the built-in profile.
func (p *Profiles) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read device profiles %s: %w", path, err)
	}
	var overlay []DeviceProfile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse device profiles %s: %w", path, err)
	}
	for _, prof := range overlay {
		if prof.Name == "" {
			return fmt.Errorf("device profile in %s is missing a name", path)
		}
		p.byName[prof.Name] = prof
	}
	logging.Info("Mobile", "Loaded %d device profile overlays from %s", len(overlay), path)
	return nil
}

// Get resolves a profile by name.
func (p *Profiles) Get(name string) (DeviceProfile, error) {
	prof, ok := p.byName[name]
	if !ok {
		return DeviceProfile{}, fmt.Errorf("unknown device profile %q (known: %v)", name, p.Names())
	}
	return prof, nil
}

// Names returns the known profile names, sorted.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.byName))
	for n := range p.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Emulator applies device profiles and drives synthetic gestures
// through the browser seam.
type Emulator struct {
	driver browser.Driver
}

// NewEmulator creates an emulator over the given driver.
func NewEmulator(driver browser.Driver) *Emulator {
	return &Emulator{driver: driver}
}

// Apply configures viewport and user agent for the profile. The user
// agent must be set before navigation to take effect on the load.
func (e *Emulator) Apply(ctx context.Context, profile DeviceProfile) error {
	if err := e.driver.SetUserAgent(ctx, profile.UserAgent); err != nil {
		return fmt.Errorf("failed to set user agent for %s: %w", profile.Name, err)
	}
	vp := browser.Viewport{
		Width:       profile.Width,
		Height:      profile.Height,
		PixelRatio:  profile.PixelRatio,
		Mobile:      profile.Mobile,
		HasTouch:    profile.Touch,
		Orientation: "portrait",
	}
	if err := e.driver.SetViewport(ctx, vp); err != nil {
		return fmt.Errorf("failed to set viewport for %s: %w", profile.Name, err)
	}
	logging.Debug("Mobile", "Emulating %s (%dx%d @%.2fx)", profile.Name, profile.Width, profile.Height, profile.PixelRatio)
	return nil
}
