package main

import (
	"fmt"
	"os"

	"github.com/caguiar/servicedesk-dashboard-go/internal/adapter/driven/config"
	"github.com/caguiar/servicedesk-dashboard-go/internal/adapter/driven/export"
	"github.com/caguiar/servicedesk-dashboard-go/internal/adapter/driven/sheets"
	"github.com/caguiar/servicedesk-dashboard-go/internal/adapter/driving/cli"
	"github.com/caguiar/servicedesk-dashboard-go/internal/application/usecase"
	"github.com/caguiar/servicedesk-dashboard-go/pkg/console"
	"github.com/caguiar/servicedesk-dashboard-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	datasetRepo := sheets.NewSheetsRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
