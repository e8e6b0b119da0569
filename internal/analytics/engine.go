package analytics

import (
	"sort"
	"time"

	"webpilot/internal/results"
	"webpilot/pkg/logging"
)

// DefaultTrendWindowDays bounds the trend series when the caller does
// not specify a window.
const DefaultTrendWindowDays = 30

// Engine computes read-only views over the run archive. Every call
// re-reads the archive; there is no rollup state to invalidate.
type Engine struct {
	store *results.Store
	now   func() time.Time
}

// NewEngine creates an analytics engine over the given archive.
func NewEngine(store *results.Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// TrendData returns one point per archived run within the trailing
// windowDays, sorted ascending by timestamp. windowDays <= 0 means
// the whole archive.
func (e *Engine) TrendData(windowDays int) []TrendPoint {
	return e.trendData(e.store.LoadAll(), windowDays)
}

// FlakinessReport returns the mixed-outcome test identities ranked by
// flakiness rate, descending.
func (e *Engine) FlakinessReport() []FlakinessRecord {
	return e.flakiness(e.store.LoadAll())
}

// PerformanceAnalysis aggregates every performance envelope in the
// archive. An archive without performance data yields the zero
// aggregate, not an error.
func (e *Engine) PerformanceAnalysis() PerformanceAnalysis {
	return e.performance(e.store.LoadAll())
}

// GenerateReport builds the composite report from a single archive
// scan. windowDays bounds the trend series only; flakiness and
// performance always cover the full history.
func (e *Engine) GenerateReport(windowDays int) *Report {
	runs := e.store.LoadAll()
	trends := e.trendData(runs, windowDays)

	report := &Report{
		GeneratedAt: e.now().UTC(),
		Trends:      trends,
		Flakiness:   e.flakiness(runs),
		Performance: e.performance(runs),
		Summary: ReportSummary{
			TotalRuns:       len(runs),
			AveragePassRate: meanPassRate(trends),
			TrendDirection:  classifyTrend(trends),
		},
	}

	logging.Info("Analytics", "Report over %d runs: %d trend points, %d flaky tests, direction %s",
		len(runs), len(report.Trends), len(report.Flakiness), report.Summary.TrendDirection)
	return report
}

func (e *Engine) trendData(runs []*results.TestRun, windowDays int) []TrendPoint {
	var cutoff time.Time
	if windowDays > 0 {
		cutoff = e.now().AddDate(0, 0, -windowDays)
	}

	points := make([]TrendPoint, 0, len(runs))
	for _, run := range runs {
		if windowDays > 0 && run.Timestamp.Before(cutoff) {
			continue
		}
		avg := 0.0
		if run.Summary.TotalTests > 0 {
			avg = run.Summary.TotalDuration / float64(run.Summary.TotalTests)
		}
		points = append(points, TrendPoint{
			Date:               run.Timestamp,
			PassRate:           run.Summary.PassRate,
			TotalTests:         run.Summary.TotalTests,
			AvgDuration:        avg,
			PerformanceScore:   run.Summary.PerformanceScore,
			AccessibilityScore: run.Summary.AccessibilityScore,
		})
	}

	// Directory enumeration order is not chronological; compare
	// instants, never their string form.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// history is one identity's record across runs.
type history struct {
	total, passed, failed int
	lastError             string
}

func (e *Engine) flakiness(runs []*results.TestRun) []FlakinessRecord {
	byTest := make(map[string]*history)
	for _, run := range runs {
		for _, r := range run.AllResults() {
			h := byTest[r.Identity()]
			if h == nil {
				h = &history{}
				byTest[r.Identity()] = h
			}
			h.total++
			switch r.Status {
			case results.StatusPassed:
				h.passed++
			case results.StatusFailed:
				h.failed++
				if r.Error != "" {
					h.lastError = r.Error
				}
			}
		}
	}

	// Deterministic identity order before the rate sort keeps repeat
	// reports byte-identical.
	ids := make([]string, 0, len(byTest))
	for id := range byTest {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]FlakinessRecord, 0)
	for _, id := range ids {
		h := byTest[id]
		// Flaky means mixed outcomes over more than one observation.
		if h.total <= 1 || h.passed == 0 || h.failed == 0 {
			continue
		}
		records = append(records, FlakinessRecord{
			Test:          id,
			TotalRuns:     h.total,
			Passed:        h.passed,
			Failed:        h.failed,
			FlakinessRate: float64(h.failed) / float64(h.total) * 100,
			LastError:     h.lastError,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].FlakinessRate > records[j].FlakinessRate
	})
	return records
}

const slowTestLimit = 10

func (e *Engine) performance(runs []*results.TestRun) PerformanceAnalysis {
	analysis := PerformanceAnalysis{SlowestTests: []SlowTest{}}

	var slow []SlowTest
	for _, run := range runs {
		for _, r := range run.AllResults() {
			if r.Performance == nil {
				continue
			}
			p := r.Performance
			analysis.SampleCount++
			analysis.AverageLoadTime += p.LoadTime
			analysis.AverageFCP += p.FirstContentfulPaint
			analysis.AverageLCP += p.LargestContentfulPaint
			analysis.AverageCLS += p.CumulativeLayoutShift
			analysis.AverageTTI += p.TimeToInteractive
			slow = append(slow, SlowTest{Test: r.Identity(), LoadTime: p.LoadTime})
		}
	}

	if analysis.SampleCount == 0 {
		return analysis
	}

	n := float64(analysis.SampleCount)
	analysis.AverageLoadTime /= n
	analysis.AverageFCP /= n
	analysis.AverageLCP /= n
	analysis.AverageCLS /= n
	analysis.AverageTTI /= n

	sort.SliceStable(slow, func(i, j int) bool {
		if slow[i].LoadTime != slow[j].LoadTime {
			return slow[i].LoadTime > slow[j].LoadTime
		}
		return slow[i].Test < slow[j].Test
	})
	if len(slow) > slowTestLimit {
		slow = slow[:slowTestLimit]
	}
	analysis.SlowestTests = slow
	return analysis
}

// classifyTrend compares the mean pass rate of the most recent points
// against the window preceding them. The comparison window is five
// points when the history allows it and shrinks to half the series
// otherwise, so short histories still classify.
func classifyTrend(trends []TrendPoint) TrendDirection {
	if len(trends) < 2 {
		return TrendStable
	}

	k := 5
	if len(trends) < 2*k {
		k = len(trends) / 2
	}

	recent := meanPassRate(trends[len(trends)-k:])
	previous := meanPassRate(trends[len(trends)-2*k : len(trends)-k])

	switch diff := recent - previous; {
	case diff > 5:
		return TrendImproving
	case diff < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanPassRate(points []TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.PassRate
	}
	return sum / float64(len(points))
}
