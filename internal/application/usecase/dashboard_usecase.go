package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/caguiar/servicedesk-dashboard-go/internal/application/analytics"
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/repository"
	"github.com/caguiar/servicedesk-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// ResolveSources determines the dataset URLs from the config file and
// CLI args. Flags override the file; config values only fill in args the
// user left unset.
func (uc *DashboardUseCase) ResolveSources(args *types.CLIArgs) (types.DataSources, error) {
	var sources types.DataSources

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return sources, err
		}
		sources = cfg.Sources
		applyConfigDefaults(args, cfg)
	}

	if args.TrendURL != "" {
		sources.TrendURL = args.TrendURL
	}
	if args.CallsURL != "" {
		sources.CallsURL = args.CallsURL
	}

	if sources.TrendURL == "" {
		return sources, types.ErrNoTrendURL
	}
	return sources, nil
}

// applyConfigDefaults fills unset CLI args from the config file.
func applyConfigDefaults(args *types.CLIArgs, cfg *types.Config) {
	if args.Year == "" {
		args.Year = cfg.Year
	}
	if args.Month == "" {
		args.Month = cfg.Month
	}
	if args.GroupBy == "" {
		args.GroupBy = cfg.GroupBy
	}
	if args.Selection == "" {
		args.Selection = cfg.Selection
	}
	if cfg.Facet {
		args.Facet = true
	}
	if cfg.Percent {
		args.Percent = true
	}
	if args.BinMode == "" || args.BinMode == string(entity.BinModeFixed) {
		if cfg.BinMode != "" {
			args.BinMode = cfg.BinMode
		}
	}
	if cfg.Focus30 {
		args.Focus30 = true
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && args.Dir == "" {
		args.Dir = cfg.Dir
	}
}

// initialState builds the filter, grouping and display state from the CLI
// args, repairing any combination the args cannot express together.
func initialState(args *types.CLIArgs, idx analytics.TimeIndex) (entity.FilterState, entity.GroupConfig, entity.DisplayOptions) {
	filter := entity.NewFilterState()
	if args.Year != "" {
		filter.SetYear(args.Year, idx.MonthsByYear)
	}
	if args.Month != "" {
		if len(args.Month) == 7 && filter.Year == entity.All {
			filter.SetYear(args.Month[:4], idx.MonthsByYear)
		}
		filter.SetMonth(args.Month, idx.MonthsByYear)
	}

	group := entity.NewGroupConfig()
	switch args.GroupBy {
	case string(entity.GroupByCategory):
		group.SetGroupBy(entity.GroupByCategory)
	case string(entity.GroupByModule):
		group.SetGroupBy(entity.GroupByModule)
	}
	if args.Selection != "" {
		group.SetSelection(args.Selection)
	}
	group.FacetEnabled = args.Facet
	group.Repair()

	opts := entity.NewDisplayOptions()
	opts.Percent = args.Percent
	opts.Focus30 = args.Focus30
	if args.BinMode == string(entity.BinModeAuto) {
		opts.BinMode = entity.BinModeAuto
	}

	return filter, group, opts
}

// loadDataset fetches every configured dataset behind a progress bar that
// advances per URL. The fetches warm the repository cache, so the
// normalizing load afterwards does not refetch.
func (uc *DashboardUseCase) loadDataset(ctx context.Context, sources types.DataSources) (*entity.Dataset, error) {
	urls := []string{sources.TrendURL}
	if sources.CallsURL != "" {
		urls = append(urls, sources.CallsURL)
	}

	progress := uc.console.ProgressWithTotal(len(urls))
	for _, url := range urls {
		if _, err := uc.datasetRepo.FetchCSV(ctx, url); err != nil {
			progress.Stop()
			return nil, err
		}
		progress.Increment()
	}
	progress.Stop()

	return uc.datasetRepo.LoadDataset(ctx, sources)
}

// RunDashboard executes the main dashboard flow.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	sources, err := uc.ResolveSources(args)
	if err != nil {
		return err
	}

	ds, err := uc.loadDataset(ctx, sources)
	if err != nil {
		return err
	}

	status := uc.console.Status("Computing views...")
	idx := analytics.Index(ds.Trend)
	filter, group, opts := initialState(args, idx)
	views := analytics.Compute(ds, filter, group, opts)
	status.Stop()

	uc.displayDashboard(views)

	if args.Interactive {
		views, err = uc.runInteractive(ctx, sources, ds, idx, views)
		if err != nil {
			return err
		}
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(views, args)
	}

	return nil
}

// displayDashboard renders every derived view to the console.
func (uc *DashboardUseCase) displayDashboard(views *entity.DerivedViews) {
	uc.displaySummary(views)
	uc.displayTrend(views)
	uc.displayWeekdays(views)
	uc.displayHistogram(views)
	uc.displayTopCategories(views)
	uc.displayInsights(views)
}

func (uc *DashboardUseCase) displaySummary(views *entity.DerivedViews) {
	table := uc.console.CreateTable()
	table.AddColumn("Scope")
	table.AddColumn("Total Calls")
	table.AddColumn("Daily Average")
	table.AddColumn("Peak Day")
	table.AddColumn("Quietest Day")

	peak, low := "-", "-"
	if views.Peak != nil {
		peak = fmt.Sprintf("%s (%d)", views.Peak.Date, views.Peak.Count)
	}
	if views.Low != nil {
		low = fmt.Sprintf("%s (%d)", views.Low.Date, views.Low.Count)
	}

	table.AddRow(
		views.Filter.Scope(),
		views.TotalCount,
		fmt.Sprintf("%.1f", views.DailyAverage),
		peak,
		low,
	)
	uc.console.Print(table.Render())

	if views.MonthOverMonth != nil {
		uc.console.LogInfo("Month over month: %+.1f%% vs %s", views.MonthOverMonth.Percent, views.MonthOverMonth.ReferenceMonth)
	}
	if views.YearOverYear != nil {
		uc.console.LogInfo("Year over year: %+.1f%% vs %s", views.YearOverYear.Percent, views.YearOverYear.ReferenceMonth)
	}
}

func (uc *DashboardUseCase) displayTrend(views *entity.DerivedViews) {
	monthlyCounts := make([]types.MonthlyCount, 0, len(views.MonthlyTotals))
	for _, mt := range views.MonthlyTotals {
		monthlyCounts = append(monthlyCounts, types.MonthlyCount{
			Month: mt.Month,
			Count: mt.Total,
		})
	}
	uc.console.DisplayTrendBars(monthlyCounts)
}

func (uc *DashboardUseCase) displayWeekdays(views *entity.DerivedViews) {
	if len(views.Weekdays) == 0 {
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Weekday")
	table.AddColumn("Average")
	table.AddColumn("Days")

	for _, wd := range views.Weekdays {
		avg := fmt.Sprintf("%.1f", wd.Average)
		if wd.Excluded {
			avg = pterm.FgGray.Sprint("excluded")
		}
		table.AddRow(wd.Weekday, avg, wd.Days)
	}
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) displayHistogram(views *entity.DerivedViews) {
	h := views.Histogram
	if h.InScope == 0 {
		return
	}

	maxValue := 0.0
	for _, s := range h.Series {
		for _, v := range s.Values {
			if v > maxValue {
				maxValue = v
			}
		}
	}

	table := uc.console.CreateTable()
	table.AddColumn("Bin")
	if h.Faceted {
		table.AddColumn("Group")
	}
	table.AddColumn("Count")
	table.AddColumn("")

	for _, s := range h.Series {
		for j, bin := range h.Bins {
			value := s.Values[j]
			barLength := 0
			if maxValue > 0 {
				barLength = int(value * 30 / maxValue)
			}
			bar := pterm.FgBlue.Sprint(strings.Repeat("█", barLength))

			cell := fmt.Sprintf("%d", s.Counts[j])
			if h.Percent {
				cell = fmt.Sprintf("%.1f%%", value)
			}

			if h.Faceted {
				table.AddRow(bin.Label, s.Group, cell, bar)
			} else {
				table.AddRow(bin.Label, cell, bar)
			}
		}
	}
	uc.console.Print(table.Render())

	if h.Missing > 0 {
		uc.console.LogWarning("%d call(s) have no recorded duration", h.Missing)
	}
	if h.Mean != nil && h.Median != nil {
		uc.console.LogInfo("Mean duration: %.2f min, median: %.2f min", *h.Mean, *h.Median)
	}
}

func (uc *DashboardUseCase) displayTopCategories(views *entity.DerivedViews) {
	if len(views.TopCategories) == 0 {
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn("Category")
	table.AddColumn("Calls")

	for i, c := range views.TopCategories {
		table.AddRow(i+1, c.Name, c.Total)
	}
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) displayInsights(views *entity.DerivedViews) {
	if len(views.Insights) == 0 {
		return
	}
	uc.console.DisplayPanel("Insights", strings.Join(views.Insights, "\n"))
}

// groupValues lists the distinct values of the active grouping dimension,
// sorted, for the interactive selection prompt.
func groupValues(calls []entity.CallRecord, groupBy entity.GroupBy) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, call := range calls {
		v := call.GroupValue(groupBy)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// runInteractive drives the selection loop: each action adjusts one piece
// of state, then the views are recomputed from scratch and redisplayed.
func (uc *DashboardUseCase) runInteractive(
	ctx context.Context,
	sources types.DataSources,
	ds *entity.Dataset,
	idx analytics.TimeIndex,
	views *entity.DerivedViews,
) (*entity.DerivedViews, error) {
	filter := views.Filter
	group := views.Group
	opts := views.Options

	actions := []string{
		"Select year",
		"Select month",
		"Group durations by",
		"Select group value",
		"Toggle facet",
		"Toggle percent mode",
		"Switch bin mode",
		"Toggle focus under 30 min",
		"Refresh data",
		"Export reports",
		"Quit",
	}

	for {
		action := uc.console.Select("Dashboard action", actions, "Quit")

		switch action {
		case "Select year":
			options := append([]string{entity.All}, idx.Years...)
			filter.SetYear(uc.console.Select("Year", options, filter.Year), idx.MonthsByYear)

		case "Select month":
			if filter.Year == entity.All {
				uc.console.LogWarning("Select a year before selecting a month")
				continue
			}
			options := append([]string{entity.All}, idx.Months(filter.Year)...)
			filter.SetMonth(uc.console.Select("Month", options, filter.Month), idx.MonthsByYear)

		case "Group durations by":
			choice := uc.console.Select("Group by", []string{
				string(entity.GroupByNone),
				string(entity.GroupByCategory),
				string(entity.GroupByModule),
			}, string(group.GroupBy))
			group.SetGroupBy(entity.GroupBy(choice))

		case "Select group value":
			if group.GroupBy == entity.GroupByNone {
				uc.console.LogWarning("Pick a grouping dimension first")
				continue
			}
			options := append([]string{entity.All}, groupValues(ds.Calls, group.GroupBy)...)
			group.SetSelection(uc.console.Select("Group value", options, group.Selection))

		case "Toggle facet":
			if group.GroupBy == entity.GroupByNone || group.Selection != entity.All {
				uc.console.LogWarning("Faceting needs a grouping dimension with no value selected")
				continue
			}
			group.FacetEnabled = !group.FacetEnabled
			group.Repair()

		case "Toggle percent mode":
			opts.Percent = !opts.Percent

		case "Switch bin mode":
			if opts.BinMode == entity.BinModeFixed {
				opts.BinMode = entity.BinModeAuto
			} else {
				opts.BinMode = entity.BinModeFixed
			}

		case "Toggle focus under 30 min":
			opts.Focus30 = !opts.Focus30

		case "Refresh data":
			uc.datasetRepo.Invalidate()
			fresh, err := uc.loadDataset(ctx, sources)
			if err != nil {
				uc.console.LogError("Failed to refresh datasets: %s", err)
				continue
			}
			ds = fresh
			idx = analytics.Index(ds.Trend)
			filter.Revalidate(idx.MonthsByYear)
			uc.console.LogSuccess("Datasets refreshed")

		case "Export reports":
			// Exports overwrite any existing <view>-<scope>.csv files.
			if !uc.console.Confirm("Write CSV reports to the current directory?", true) {
				continue
			}
			files, err := uc.exportRepo.ExportAllToCSV(views, "")
			if err != nil {
				uc.console.LogError("Failed to export: %s", err)
				continue
			}
			for _, f := range files {
				uc.console.LogSuccess("Exported %s", f)
			}
			continue

		case "Quit":
			return views, nil
		}

		views = analytics.Compute(ds, filter, group, opts)
		uc.displayDashboard(views)
	}
}

// exportReports writes the requested report formats.
func (uc *DashboardUseCase) exportReports(views *entity.DerivedViews, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			files, err := uc.exportRepo.ExportAllToCSV(views, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				for _, f := range files {
					uc.console.LogSuccess("Successfully exported to CSV: %s", f)
				}
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportViewsToJSON(views, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(views, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}
