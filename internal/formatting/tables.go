package formatting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"webpilot/internal/analytics"
	"webpilot/internal/results"
)

// createTable returns a writer with the house style applied.
func createTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	return t
}

// statusText colors a pass rate: green at 100, yellow above 80, red
// below.
func statusText(passRate float64) string {
	formatted := fmt.Sprintf("%.1f%%", passRate)
	switch {
	case passRate >= 100:
		return text.FgGreen.Sprint(formatted)
	case passRate >= 80:
		return text.FgYellow.Sprint(formatted)
	default:
		return text.FgRed.Sprint(formatted)
	}
}

// RunSummary renders one ingested run as a per-suite table with a
// totals footer.
func RunSummary(out io.Writer, run *results.TestRun) {
	t := createTable(out)
	t.AppendHeader(table.Row{"Suite", "Tests", "Passed", "Failed", "Skipped", "Pass Rate"})
	for _, s := range run.Suites {
		t.AppendRow(table.Row{s.Name, s.TotalTests, s.Passed, s.Failed, s.Skipped, statusText(s.PassRate)})
	}
	sum := run.Summary
	t.AppendFooter(table.Row{"Total", sum.TotalTests, sum.Passed, sum.Failed, sum.Skipped, statusText(sum.PassRate)})
	t.Render()
}

// AnalyticsSummary renders the headline numbers of a report.
func AnalyticsSummary(out io.Writer, report *analytics.Report) {
	t := createTable(out)
	t.AppendHeader(table.Row{"Runs", "Avg Pass Rate", "Trend", "Flaky Tests"})
	t.AppendRow(table.Row{
		report.Summary.TotalRuns,
		statusText(report.Summary.AveragePassRate),
		trendText(report.Summary.TrendDirection),
		len(report.Flakiness),
	})
	t.Render()
}

func trendText(d analytics.TrendDirection) string {
	switch d {
	case analytics.TrendImproving:
		return text.FgGreen.Sprint(string(d))
	case analytics.TrendDeclining:
		return text.FgRed.Sprint(string(d))
	default:
		return string(d)
	}
}

// FlakinessTable renders the ranked flaky tests, empty-safe.
func FlakinessTable(out io.Writer, records []analytics.FlakinessRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, text.FgGreen.Sprint("No flaky tests found"))
		return
	}
	t := createTable(out)
	t.AppendHeader(table.Row{"Test", "Runs", "Failed", "Flakiness", "Last Error"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Test, r.TotalRuns, r.Failed, fmt.Sprintf("%.1f%%", r.FlakinessRate), truncate(r.LastError, 60)})
	}
	t.Render()
}

// SlowTestsTable renders the slowest tests by load time, empty-safe.
func SlowTestsTable(out io.Writer, tests []analytics.SlowTest) {
	if len(tests) == 0 {
		fmt.Fprintln(out, "No performance samples recorded")
		return
	}
	t := createTable(out)
	t.AppendHeader(table.Row{"Test", "Load Time (ms)"})
	for _, s := range tests {
		t.AppendRow(table.Row{s.Test, fmt.Sprintf("%.0f", s.LoadTime)})
	}
	t.Render()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
