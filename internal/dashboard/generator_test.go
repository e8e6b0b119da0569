package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpilot/internal/analytics"
)

func sampleReport() *analytics.Report {
	return &analytics.Report{
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Trends: []analytics.TrendPoint{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), PassRate: 90, TotalTests: 10, PerformanceScore: 85, AccessibilityScore: 92},
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), PassRate: 95, TotalTests: 10, PerformanceScore: 88, AccessibilityScore: 93},
			{Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), PassRate: 100, TotalTests: 10, PerformanceScore: 90, AccessibilityScore: 95},
		},
		Flakiness: []analytics.FlakinessRecord{
			{Test: "UI > login", TotalRuns: 4, Passed: 2, Failed: 2, FlakinessRate: 50, LastError: "timeout waiting for #submit"},
		},
		Performance: analytics.PerformanceAnalysis{
			AverageLoadTime: 2400,
			AverageLCP:      2100,
			AverageCLS:      0.08,
			SampleCount:     12,
			SlowestTests:    []analytics.SlowTest{{Test: "UI > checkout", LoadTime: 4100}},
		},
		Summary: analytics.ReportSummary{TotalRuns: 3, AveragePassRate: 95, TrendDirection: analytics.TrendImproving},
	}
}

func TestGenerate_WritesAllPages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dash")
	gen, err := NewGenerator(dir)
	require.NoError(t, err)

	require.NoError(t, gen.Generate(sampleReport()))

	for _, name := range []string{"index.html", "styles.css", "performance.html", "accessibility.html", "mobile.html"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestGenerate_IndexContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dash")
	gen, err := NewGenerator(dir)
	require.NoError(t, err)
	require.NoError(t, gen.Generate(sampleReport()))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	html := string(data)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	// Total-runs count from the report must be visible.
	assert.Contains(t, html, "<h2>3</h2>")
	assert.Contains(t, html, "UI &gt; login")
	assert.Contains(t, html, "Improving")
	// Inline chart payload, not a network fetch.
	assert.Contains(t, html, `"passRate":90`)
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dash")
	gen, err := NewGenerator(dir)
	require.NoError(t, err)

	report := sampleReport()
	require.NoError(t, gen.Generate(report))
	first, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	require.NoError(t, gen.Generate(report))
	second, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same report must render byte-identical output")
}

func TestGenerate_EmptyReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dash")
	gen, err := NewGenerator(dir)
	require.NoError(t, err)

	empty := &analytics.Report{
		GeneratedAt: time.Now().UTC(),
		Trends:      []analytics.TrendPoint{},
		Flakiness:   []analytics.FlakinessRecord{},
		Performance: analytics.PerformanceAnalysis{SlowestTests: []analytics.SlowTest{}},
		Summary:     analytics.ReportSummary{TrendDirection: analytics.TrendStable},
	}
	require.NoError(t, gen.Generate(empty))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "No flaky tests")
}

func TestGenerate_WriteFailureIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}
	dir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.MkdirAll(dir, 0o555))

	gen, err := NewGenerator(filepath.Join(dir, "dash"))
	require.NoError(t, err)
	assert.Error(t, gen.Generate(sampleReport()))
}
