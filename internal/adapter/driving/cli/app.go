package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/caguiar/servicedesk-dashboard-go/internal/application/usecase"
	"github.com/caguiar/servicedesk-dashboard-go/internal/shared/types"
	"github.com/caguiar/servicedesk-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "servicedesk-dash",
		Short:   "Service Desk Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Service Desk Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("trend-url", "", "Published CSV URL of the daily call trend sheet")
	rootCmd.PersistentFlags().String("calls-url", "", "Published CSV URL of the per-call detail sheet")
	rootCmd.PersistentFlags().String("year", "", "Restrict the views to one year (e.g. 2024)")
	rootCmd.PersistentFlags().String("month", "", "Restrict the views to one month (e.g. 2024-06)")
	rootCmd.PersistentFlags().String("group-by", "", "Group the duration views by: category, module")
	rootCmd.PersistentFlags().String("select", "", "Restrict the duration views to one group value")
	rootCmd.PersistentFlags().Bool("facet", false, "Split the duration histogram into per-group series")
	rootCmd.PersistentFlags().Bool("percent", false, "Show duration bins as percentages instead of counts")
	rootCmd.PersistentFlags().String("bins", "fixed", "Duration bin mode: fixed, auto")
	rootCmd.PersistentFlags().Bool("focus", false, "Focus the duration view on calls under 30 minutes")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Start the interactive selection loop after the first render")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Export reports after rendering (any non-empty value enables exports)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	trendURL, _ := app.rootCmd.Flags().GetString("trend-url")
	callsURL, _ := app.rootCmd.Flags().GetString("calls-url")
	year, _ := app.rootCmd.Flags().GetString("year")
	month, _ := app.rootCmd.Flags().GetString("month")
	groupBy, _ := app.rootCmd.Flags().GetString("group-by")
	selection, _ := app.rootCmd.Flags().GetString("select")
	facet, _ := app.rootCmd.Flags().GetBool("facet")
	percent, _ := app.rootCmd.Flags().GetBool("percent")
	binMode, _ := app.rootCmd.Flags().GetString("bins")
	focus, _ := app.rootCmd.Flags().GetBool("focus")
	interactive, _ := app.rootCmd.Flags().GetBool("interactive")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		TrendURL:    trendURL,
		CallsURL:    callsURL,
		Year:        year,
		Month:       month,
		GroupBy:     groupBy,
		Selection:   selection,
		Facet:       facet,
		Percent:     percent,
		BinMode:     binMode,
		Focus30:     focus,
		Interactive: interactive,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
	}

	return args, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
