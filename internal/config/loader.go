package config

import (
	"errors"
	"fmt"
	"os"

	"webpilot/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the conventional config location relative to
// the working directory.
const DefaultConfigFile = "webpilot.yaml"

// Load reads configuration from path, layered over the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config file at %s, using defaults", path)
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	logging.Info("Config", "Loaded configuration from %s", path)
	return cfg, nil
}

// applyEnv lets WEBPILOT_* environment variables override file values.
// Environment wins over file so CI can redirect runs without editing
// checked-in config.
func applyEnv(cfg Config) Config {
	overrides := map[string]*string{
		"WEBPILOT_BASE_URL":      &cfg.BaseURL,
		"WEBPILOT_API_BASE_URL":  &cfg.APIBaseURL,
		"WEBPILOT_ENVIRONMENT":   &cfg.Environment,
		"WEBPILOT_BRANCH":        &cfg.Branch,
		"WEBPILOT_COMMIT":        &cfg.Commit,
		"WEBPILOT_RESULTS_DIR":   &cfg.ResultsDir,
		"WEBPILOT_DASHBOARD_DIR": &cfg.DashboardDir,
		"WEBPILOT_LOG_DIR":       &cfg.LogDir,
		"WEBPILOT_LOG_LEVEL":     &cfg.LogLevel,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}
	return cfg
}

// Validate checks the fields that later stages depend on.
func (c Config) Validate() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("results_dir must not be empty")
	}
	if c.DashboardDir == "" {
		return fmt.Errorf("dashboard_dir must not be empty")
	}
	if c.AccessibilityMinScore < 0 || c.AccessibilityMinScore > 100 {
		return fmt.Errorf("accessibility_min_score must be within [0,100], got %v", c.AccessibilityMinScore)
	}
	return nil
}
