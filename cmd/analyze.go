package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"webpilot/internal/analytics"
	"webpilot/internal/formatting"
	"webpilot/internal/results"
)

var (
	analyzeWindowDays int
	analyzeJSONPath   string
)

// newAnalyzeCmd creates the command that aggregates the archive into
// trend, flakiness and performance views.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate archived runs into trend, flakiness and performance analytics",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	}
	cmd.Flags().IntVar(&analyzeWindowDays, "window", analytics.DefaultTrendWindowDays, "trailing trend window in days")
	cmd.Flags().StringVar(&analyzeJSONPath, "json", "", "also write the full report as JSON to this path")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Scanning run archive..."
	s.Start()

	engine := analytics.NewEngine(results.NewStore(cfg.ResultsDir))
	report := engine.GenerateReport(analyzeWindowDays)

	s.Stop()

	out := cmd.OutOrStdout()
	formatting.AnalyticsSummary(out, report)
	fmt.Fprintln(out, "\nFlaky tests:")
	formatting.FlakinessTable(out, report.Flakiness)
	fmt.Fprintln(out, "\nSlowest tests:")
	formatting.SlowTestsTable(out, report.Performance.SlowestTests)

	if analyzeJSONPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(analyzeJSONPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", analyzeJSONPath, err)
		}
		fmt.Fprintf(out, "\nReport written to %s\n", analyzeJSONPath)
	}
	return nil
}
