package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpilot/internal/allure"
	"webpilot/internal/formatting"
	"webpilot/internal/results"
)

var ingestAllureDir string

// newIngestCmd creates the command that parses a runner report and
// archives it. The requested report failing to parse is a hard error;
// this is the one run the caller explicitly asked to persist.
func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <report.json>",
		Short: "Parse a test-runner report and archive it as a run",
		Args:  cobra.ExactArgs(1),
		RunE:  runIngest,
	}
	cmd.Flags().StringVar(&ingestAllureDir, "allure-dir", "", "also emit allure-results files to this directory")
	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	run, err := results.ParseReport(args[0], results.RunMeta{
		Environment: cfg.Environment,
		Branch:      cfg.Branch,
		Commit:      cfg.Commit,
	})
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", args[0], err)
	}

	path, err := results.NewStore(cfg.ResultsDir).Save(run)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Archived run %s to %s\n", run.ID, path)
	formatting.RunSummary(cmd.OutOrStdout(), run)

	if ingestAllureDir != "" {
		if err := allure.NewWriter(ingestAllureDir).Write(run); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Allure results written to %s\n", ingestAllureDir)
	}
	return nil
}
