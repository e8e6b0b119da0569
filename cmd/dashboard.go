package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpilot/internal/analytics"
	"webpilot/internal/dashboard"
	"webpilot/internal/results"
)

var dashboardWatch bool

// newDashboardCmd creates the command that renders the static HTML
// dashboard from the archive. A write failure is fatal; producing no
// dashboard must be visible to the caller.
func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Generate the static HTML dashboard from archived runs",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
	cmd.Flags().BoolVar(&dashboardWatch, "watch", false, "regenerate whenever the archive changes")
	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := analytics.NewEngine(results.NewStore(cfg.ResultsDir))
	gen, err := dashboard.NewGenerator(cfg.DashboardDir)
	if err != nil {
		return err
	}

	generate := func() error {
		return gen.Generate(engine.GenerateReport(analytics.DefaultTrendWindowDays))
	}

	if err := generate(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Dashboard written to %s\n", gen.OutDir())

	if !dashboardWatch {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for new runs (Ctrl+C to stop)\n", cfg.ResultsDir)
	return dashboard.NewWatcher(cfg.ResultsDir, generate).Run(cmd.Context())
}
