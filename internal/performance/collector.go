package performance

import (
	"context"
	"encoding/json"
	"fmt"

	"webpilot/internal/browser"
	"webpilot/internal/config"
	"webpilot/internal/results"
	"webpilot/pkg/logging"
)

// metricsExpression reads navigation timing, paint entries and the
// layout-shift observer buffer from the page. Values are milliseconds
// except cumulativeLayoutShift.
const metricsExpression = `(() => {
	const nav = performance.getEntriesByType("navigation")[0] || {};
	const paints = Object.fromEntries(performance.getEntriesByType("paint").map(e => [e.name, e.startTime]));
	const lcp = performance.getEntriesByType("largest-contentful-paint").pop();
	const cls = performance.getEntriesByType("layout-shift").filter(e => !e.hadRecentInput).reduce((s, e) => s + e.value, 0);
	return {
		loadTime: nav.loadEventEnd || 0,
		firstContentfulPaint: paints["first-contentful-paint"] || 0,
		largestContentfulPaint: lcp ? lcp.startTime : 0,
		cumulativeLayoutShift: cls,
		timeToInteractive: nav.domInteractive || 0,
	};
})()`

// Rating buckets a metric against its threshold.
type Rating string

const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs-improvement"
	RatingPoor             Rating = "poor"
)

// Assessment is the scored view of one metrics sample.
type Assessment struct {
	Metrics results.PerformanceMetrics `json:"metrics"`
	Ratings map[string]Rating          `json:"ratings"`
	// Score is 0-100: the share of metrics rated good, with
	// needs-improvement counting half.
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}

// Collector gathers timing metrics through the browser seam and
// scores them against configured thresholds.
type Collector struct {
	driver     browser.Driver
	thresholds config.PerformanceThresholds
}

// NewCollector creates a collector with the given thresholds.
func NewCollector(driver browser.Driver, thresholds config.PerformanceThresholds) *Collector {
	return &Collector{driver: driver, thresholds: thresholds}
}

// Collect reads the current page's metrics.
func (c *Collector) Collect(ctx context.Context) (*results.PerformanceMetrics, error) {
	raw, err := c.driver.Evaluate(ctx, metricsExpression)
	if err != nil {
		return nil, fmt.Errorf("failed to collect performance metrics: %w", err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("performance metrics are unencodable: %w", err)
	}
	var m results.PerformanceMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("performance metrics have unexpected shape: %w", err)
	}

	logging.Debug("Performance", "Collected metrics: load=%.0fms fcp=%.0fms lcp=%.0fms cls=%.3f tti=%.0fms",
		m.LoadTime, m.FirstContentfulPaint, m.LargestContentfulPaint, m.CumulativeLayoutShift, m.TimeToInteractive)
	return &m, nil
}

// Assess rates each metric against its threshold and computes the
// composite score. The "poor" boundary is 2.5x the good threshold,
// matching the ratio the published vitals bands use.
func (c *Collector) Assess(m results.PerformanceMetrics) Assessment {
	t := c.thresholds
	ratings := map[string]Rating{
		"loadTime":               rate(m.LoadTime, t.LoadTime),
		"firstContentfulPaint":   rate(m.FirstContentfulPaint, t.FirstContentfulPaint),
		"largestContentfulPaint": rate(m.LargestContentfulPaint, t.LargestContentfulPaint),
		"cumulativeLayoutShift":  rate(m.CumulativeLayoutShift, t.CumulativeLayoutShift),
		"timeToInteractive":      rate(m.TimeToInteractive, t.TimeToInteractive),
	}

	var score float64
	for _, r := range ratings {
		switch r {
		case RatingGood:
			score += 1
		case RatingNeedsImprovement:
			score += 0.5
		}
	}
	score = score / float64(len(ratings)) * 100

	return Assessment{
		Metrics: m,
		Ratings: ratings,
		Score:   score,
		Passed:  score >= 50,
	}
}

const poorMultiplier = 2.5

func rate(value, goodThreshold float64) Rating {
	if goodThreshold <= 0 {
		// Unconfigured thresholds rate everything good rather than
		// failing every sample.
		return RatingGood
	}
	switch {
	case value <= goodThreshold:
		return RatingGood
	case value <= goodThreshold*poorMultiplier:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}
