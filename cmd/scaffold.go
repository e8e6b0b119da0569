package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"webpilot/internal/scaffold"
)

var (
	scaffoldPackage   string
	scaffoldPage      string
	scaffoldURL       string
	scaffoldScenarios []string
	scaffoldSpecFile  string
	scaffoldOutput    string
)

// newScaffoldCmd creates the command that emits a test-file skeleton,
// defined either by flags or by a YAML spec file.
func newScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate a test-file skeleton for a page object",
		RunE:  runScaffold,
	}
	cmd.Flags().StringVar(&scaffoldPackage, "package", "", "Go package name of the generated file")
	cmd.Flags().StringVar(&scaffoldPage, "page", "", "page object name the scenarios drive")
	cmd.Flags().StringVar(&scaffoldURL, "url", "/", "path the page opens")
	cmd.Flags().StringSliceVar(&scaffoldScenarios, "scenario", nil, "scenario name (repeatable)")
	cmd.Flags().StringVar(&scaffoldSpecFile, "spec", "", "YAML spec file instead of flags")
	cmd.Flags().StringVar(&scaffoldOutput, "out", "", "output file (default stdout)")
	return cmd
}

func runScaffold(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	spec := scaffold.Spec{
		PackageName: scaffoldPackage,
		PageName:    scaffoldPage,
		URL:         scaffoldURL,
		Scenarios:   scaffoldScenarios,
	}
	if scaffoldSpecFile != "" {
		data, err := os.ReadFile(scaffoldSpecFile)
		if err != nil {
			return fmt.Errorf("failed to read spec %s: %w", scaffoldSpecFile, err)
		}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return fmt.Errorf("failed to parse spec %s: %w", scaffoldSpecFile, err)
		}
	}

	if scaffoldOutput == "" {
		content, err := scaffold.Render(spec)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	if err := scaffold.WriteFile(spec, scaffoldOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Scaffold written to %s\n", scaffoldOutput)
	return nil
}
