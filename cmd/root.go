package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"webpilot/internal/config"
	"webpilot/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
)

// configPath is the optional configuration file; unset means defaults
// plus environment overrides.
var configPath string

// rootCmd represents the base command for the webpilot application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "webpilot",
	Short: "Analytics and tooling for browser test runs",
	Long: `webpilot ingests the JSON reports produced by a browser test
runner, archives them, and turns the archive into trend, flakiness
and performance analytics plus a static HTML dashboard. It also
scaffolds new test files.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "webpilot version %s\n" .Version}}`)

	err := rootCmd.Execute()
	// Flush and release the log file before deciding the exit code;
	// os.Exit would skip deferred cleanup.
	logging.Close()
	if err != nil {
		os.Exit(ExitCodeError)
	}
}

// loadConfig builds the effective configuration for a command and
// initializes logging from it.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := logging.Init(logging.ParseLevel(cfg.LogLevel), os.Stderr, cfg.LogDir); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is webpilot.yaml if present)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newIngestCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newScaffoldCmd())
}
