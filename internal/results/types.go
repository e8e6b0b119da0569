package results

import (
	"strings"
	"time"
)

// Status is the outcome of a single test execution.
type Status string

const (
	// StatusPassed indicates the test passed.
	StatusPassed Status = "passed"
	// StatusFailed indicates the test failed.
	StatusFailed Status = "failed"
	// StatusSkipped indicates the test was skipped.
	StatusSkipped Status = "skipped"
)

// PerformanceMetrics is the optional browser timing envelope attached
// to a test result. Times are milliseconds; CLS is unitless.
type PerformanceMetrics struct {
	LoadTime               float64 `json:"loadTime"`
	FirstContentfulPaint   float64 `json:"firstContentfulPaint"`
	LargestContentfulPaint float64 `json:"largestContentfulPaint"`
	CumulativeLayoutShift  float64 `json:"cumulativeLayoutShift"`
	TimeToInteractive      float64 `json:"timeToInteractive"`
}

// TestResult is one executed test, immutable once parsed.
type TestResult struct {
	// Suite is the owning suite name.
	Suite string `json:"suite"`
	// Name is the test title.
	Name string `json:"name"`
	// Status is passed, failed or skipped.
	Status Status `json:"status"`
	// Duration is the execution time in milliseconds, never negative.
	Duration float64 `json:"duration"`
	// StartTime and EndTime bound the execution.
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	// Error carries the failure message, if any.
	Error string `json:"error,omitempty"`
	// Screenshot and Video reference captured artifacts.
	Screenshot string `json:"screenshot,omitempty"`
	Video      string `json:"video,omitempty"`
	// Performance is populated when the test collected timing metrics.
	Performance *PerformanceMetrics `json:"performance,omitempty"`
}

// Identity returns the normalized cross-run identity of the test.
func (r TestResult) Identity() string {
	return Identity(r.Suite, r.Name)
}

// Identity builds the normalized "suite > test" key used to correlate
// the same test across runs.
func Identity(suite, name string) string {
	return strings.TrimSpace(suite) + " > " + strings.TrimSpace(name)
}

// TestSuite groups the results of one suite with derived counts.
type TestSuite struct {
	Name       string       `json:"name"`
	Results    []TestResult `json:"results"`
	TotalTests int          `json:"totalTests"`
	Passed     int          `json:"passed"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	// PassRate is a percentage in [0,100]; 0 for an empty suite.
	PassRate float64 `json:"passRate"`
}

// Recount recomputes the derived counters from Results.
func (s *TestSuite) Recount() {
	s.TotalTests = len(s.Results)
	s.Passed, s.Failed, s.Skipped = 0, 0, 0
	for _, r := range s.Results {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	s.PassRate = 0
	if s.TotalTests > 0 {
		s.PassRate = float64(s.Passed) / float64(s.TotalTests) * 100
	}
}

// TestSummary aggregates a run. PerformanceScore and
// AccessibilityScore are populated by their helpers, not by parsing.
type TestSummary struct {
	TotalTests    int     `json:"totalTests"`
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	Skipped       int     `json:"skipped"`
	TotalDuration float64 `json:"totalDuration"`
	// PassRate is a percentage in [0,100]; 0 for an empty run.
	PassRate           float64 `json:"passRate"`
	PerformanceScore   float64 `json:"performanceScore"`
	AccessibilityScore float64 `json:"accessibilityScore"`
}

// TestRun is one archived execution of the suite. Runs are written
// once and never mutated; re-aggregation always re-reads the archive.
type TestRun struct {
	ID          string      `json:"id"`
	Timestamp   time.Time   `json:"timestamp"`
	Environment string      `json:"environment"`
	Branch      string      `json:"branch,omitempty"`
	Commit      string      `json:"commit,omitempty"`
	Suites      []TestSuite `json:"suites"`
	Summary     TestSummary `json:"summary"`
}

// Summarize recomputes the run summary from its suites.
func (r *TestRun) Summarize() {
	sum := TestSummary{
		PerformanceScore:   r.Summary.PerformanceScore,
		AccessibilityScore: r.Summary.AccessibilityScore,
	}
	for i := range r.Suites {
		r.Suites[i].Recount()
		s := &r.Suites[i]
		sum.TotalTests += s.TotalTests
		sum.Passed += s.Passed
		sum.Failed += s.Failed
		sum.Skipped += s.Skipped
		for _, t := range s.Results {
			sum.TotalDuration += t.Duration
		}
	}
	if sum.TotalTests > 0 {
		sum.PassRate = float64(sum.Passed) / float64(sum.TotalTests) * 100
	}
	r.Summary = sum
}

// AllResults flattens the run into a single result slice.
func (r *TestRun) AllResults() []TestResult {
	var out []TestResult
	for _, s := range r.Suites {
		out = append(out, s.Results...)
	}
	return out
}
