package config

// Config is the framework configuration. It is constructed once at
// process start (defaults, then file, then environment overrides) and
// passed into component constructors; there is no global config state.
type Config struct {
	// BaseURL is the application under test.
	BaseURL string `yaml:"base_url"`
	// APIBaseURL is the backend endpoint used by the API client.
	APIBaseURL string `yaml:"api_base_url"`

	// Environment labels archived runs (local, staging, ci, ...).
	Environment string `yaml:"environment"`
	// Branch and Commit identify the code under test.
	Branch string `yaml:"branch"`
	Commit string `yaml:"commit"`

	// ResultsDir is the append-only archive of run result files.
	ResultsDir string `yaml:"results_dir"`
	// DashboardDir receives the generated dashboard artifacts.
	DashboardDir string `yaml:"dashboard_dir"`
	// ScreenshotDir receives failure screenshots.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// LogDir receives date-stamped log files. Empty disables file logging.
	LogDir string `yaml:"log_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DefaultDevice is the mobile profile applied when none is named.
	DefaultDevice string `yaml:"default_device"`

	// Performance holds the metric thresholds used for scoring.
	Performance PerformanceThresholds `yaml:"performance"`

	// AccessibilityMinScore is the score below which a scan fails.
	AccessibilityMinScore float64 `yaml:"accessibility_min_score"`
}

// PerformanceThresholds are the upper bounds for a "good" rating per
// metric. Values are milliseconds except CLS, which is unitless.
type PerformanceThresholds struct {
	LoadTime               float64 `yaml:"load_time"`
	FirstContentfulPaint   float64 `yaml:"first_contentful_paint"`
	LargestContentfulPaint float64 `yaml:"largest_contentful_paint"`
	CumulativeLayoutShift  float64 `yaml:"cumulative_layout_shift"`
	TimeToInteractive      float64 `yaml:"time_to_interactive"`
}
