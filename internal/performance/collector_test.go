package performance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpilot/internal/browser/mock"
	"webpilot/internal/config"
	"webpilot/internal/results"
)

func testThresholds() config.PerformanceThresholds {
	return config.Default().Performance
}

func TestCollect_DecodesMetrics(t *testing.T) {
	driver := mock.NewDriver()
	driver.EvalResults[metricsExpression] = map[string]interface{}{
		"loadTime":               2100.5,
		"firstContentfulPaint":   900.0,
		"largestContentfulPaint": 1500.0,
		"cumulativeLayoutShift":  0.04,
		"timeToInteractive":      2500.0,
	}

	m, err := NewCollector(driver, testThresholds()).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2100.5, m.LoadTime)
	assert.Equal(t, 900.0, m.FirstContentfulPaint)
	assert.Equal(t, 0.04, m.CumulativeLayoutShift)
}

func TestCollect_DriverFailurePropagates(t *testing.T) {
	driver := mock.NewDriver()
	driver.FailOn["evaluate"] = errors.New("target closed")

	_, err := NewCollector(driver, testThresholds()).Collect(context.Background())
	assert.Error(t, err)
}

func TestAssess_AllGood(t *testing.T) {
	c := NewCollector(mock.NewDriver(), testThresholds())

	a := c.Assess(results.PerformanceMetrics{
		LoadTime:               1000,
		FirstContentfulPaint:   800,
		LargestContentfulPaint: 1200,
		CumulativeLayoutShift:  0.05,
		TimeToInteractive:      2000,
	})

	assert.Equal(t, 100.0, a.Score)
	assert.True(t, a.Passed)
	for metric, rating := range a.Ratings {
		assert.Equal(t, RatingGood, rating, metric)
	}
}

func TestAssess_MixedRatings(t *testing.T) {
	c := NewCollector(mock.NewDriver(), testThresholds())

	// load 3000 good (boundary), fcp 4000 needs-improvement (<=4500),
	// lcp 10000 poor, cls 0.05 good, tti 20000 poor.
	a := c.Assess(results.PerformanceMetrics{
		LoadTime:               3000,
		FirstContentfulPaint:   4000,
		LargestContentfulPaint: 10000,
		CumulativeLayoutShift:  0.05,
		TimeToInteractive:      20000,
	})

	assert.Equal(t, RatingGood, a.Ratings["loadTime"])
	assert.Equal(t, RatingNeedsImprovement, a.Ratings["firstContentfulPaint"])
	assert.Equal(t, RatingPoor, a.Ratings["largestContentfulPaint"])
	// 2 good + 1 half out of 5 metrics.
	assert.Equal(t, 50.0, a.Score)
	assert.True(t, a.Passed)
}

func TestAssess_AllPoorFails(t *testing.T) {
	c := NewCollector(mock.NewDriver(), testThresholds())

	a := c.Assess(results.PerformanceMetrics{
		LoadTime:               60000,
		FirstContentfulPaint:   60000,
		LargestContentfulPaint: 60000,
		CumulativeLayoutShift:  3,
		TimeToInteractive:      60000,
	})

	assert.Equal(t, 0.0, a.Score)
	assert.False(t, a.Passed)
}

func TestAssess_UnconfiguredThresholdRatesGood(t *testing.T) {
	c := NewCollector(mock.NewDriver(), config.PerformanceThresholds{})

	a := c.Assess(results.PerformanceMetrics{LoadTime: 99999})
	assert.Equal(t, 100.0, a.Score)
}
