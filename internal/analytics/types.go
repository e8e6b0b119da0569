package analytics

import "time"

// TrendDirection classifies how the pass rate is moving across the
// recent history.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// TrendPoint is one run's summary positioned on the timeline.
type TrendPoint struct {
	Date               time.Time `json:"date"`
	PassRate           float64   `json:"passRate"`
	TotalTests         int       `json:"totalTests"`
	AvgDuration        float64   `json:"avgDuration"`
	PerformanceScore   float64   `json:"performanceScore"`
	AccessibilityScore float64   `json:"accessibilityScore"`
}

// FlakinessRecord aggregates one test identity with mixed outcomes
// across the archived history. Uniformly failing tests are broken,
// not flaky, and never appear here.
type FlakinessRecord struct {
	Test          string  `json:"test"`
	TotalRuns     int     `json:"totalRuns"`
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	FlakinessRate float64 `json:"flakinessRate"`
	LastError     string  `json:"lastError,omitempty"`
}

// SlowTest flags one of the slowest-loading tests in the history.
type SlowTest struct {
	Test     string  `json:"test"`
	LoadTime float64 `json:"loadTime"`
}

// PerformanceAnalysis aggregates the optional performance envelopes
// found across all archived results.
type PerformanceAnalysis struct {
	AverageLoadTime float64    `json:"averageLoadTime"`
	AverageFCP      float64    `json:"averageFCP"`
	AverageLCP      float64    `json:"averageLCP"`
	AverageCLS      float64    `json:"averageCLS"`
	AverageTTI      float64    `json:"averageTTI"`
	SampleCount     int        `json:"sampleCount"`
	SlowestTests    []SlowTest `json:"slowestTests"`
}

// ReportSummary is the roll-up block of the composite report.
type ReportSummary struct {
	TotalRuns       int            `json:"totalRuns"`
	AveragePassRate float64        `json:"averagePassRate"`
	TrendDirection  TrendDirection `json:"trendDirection"`
}

// Report is the composite analytics output consumed by the dashboard.
// Two reports over an unchanged archive differ only in GeneratedAt.
type Report struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Trends      []TrendPoint        `json:"trends"`
	Flakiness   []FlakinessRecord   `json:"flakiness"`
	Performance PerformanceAnalysis `json:"performance"`
	Summary     ReportSummary       `json:"summary"`
}
