package config

// Default returns the built-in configuration. Threshold values follow
// the published Core Web Vitals "good" boundaries.
func Default() Config {
	return Config{
		BaseURL:       "http://localhost:3000",
		APIBaseURL:    "http://localhost:3000/api",
		Environment:   "local",
		ResultsDir:    "test-results/history",
		DashboardDir:  "dashboard",
		ScreenshotDir: "test-results/screenshots",
		LogDir:        "",
		LogLevel:      "info",
		DefaultDevice: "iPhone 14",
		Performance: PerformanceThresholds{
			LoadTime:               3000,
			FirstContentfulPaint:   1800,
			LargestContentfulPaint: 2500,
			CumulativeLayoutShift:  0.1,
			TimeToInteractive:      3800,
		},
		AccessibilityMinScore: 90,
	}
}
