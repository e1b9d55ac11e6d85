package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/caguiar/servicedesk-dashboard-go/internal/shared/types"
)

// Console is an implementation of the ConsoleInterface.
type Console struct{}

// NewConsole creates a new Console.
func NewConsole() *Console {
	return &Console{}
}

// Print prints to the console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf prints a formatted string to the console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println prints to the console with a trailing newline.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo logs an informational message.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning logs a warning message.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError logs an error message.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess logs a success message.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Predefined colors for consistent accents.
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// statusHandle is an implementation of the StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status starts a status spinner with the given message.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update updates the status message.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop stops the status spinner.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle is an implementation of the ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress starts a progress bar sized to the given items.
func (c *Console) Progress(items []string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.WithTotal(len(items)).Start()
	return &progressHandle{bar: bar}
}

// ProgressWithTotal starts a progress bar with an explicit step total.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Fetching datasets").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment advances the progress bar.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop stops the progress bar.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table is an implementation of the TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable creates a new table.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn appends a column to the table.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars renders the monthly call volumes as a bar chart with
// a month-over-month change column.
func (c *Console) DisplayTrendBars(monthlyCounts []types.MonthlyCount) {
	maxCount := 0
	for _, mc := range monthlyCounts {
		if mc.Count > maxCount {
			maxCount = mc.Count
		}
	}

	if maxCount == 0 {
		pterm.Warning.Println("No calls recorded for this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Calls", "", "MoM Change"},
	}

	var prevCount *int
	for _, mc := range monthlyCounts {
		barLength := mc.Count * 40 / maxCount
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevCount != nil {
			switch {
			case *prevCount == 0 && mc.Count == 0:
				change = pterm.FgYellow.Sprint("0%")
				barColor = pterm.FgYellow.Sprint(bar)
			case *prevCount == 0:
				change = pterm.FgRed.Sprint("N/A")
				barColor = pterm.FgRed.Sprint(bar)
			default:
				changePercent := float64(mc.Count-*prevCount) / float64(*prevCount) * 100
				if changePercent > 0 {
					change = pterm.FgRed.Sprintf("+%.1f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				} else if changePercent < 0 {
					change = pterm.FgGreen.Sprintf("%.1f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				} else {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			mc.Month,
			fmt.Sprintf("%d", mc.Count),
			barColor,
			change,
		})

		current := mc.Count
		prevCount = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle("Monthly Call Trend").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayPanel renders content inside a titled box.
func (c *Console) DisplayPanel(title, content string) {
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(content)
	fmt.Println("\n" + panel)
}

// Select prompts the user to choose one of the options.
func (c *Console) Select(label string, options []string, defaultOption string) string {
	selector := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(label)
	if defaultOption != "" {
		selector = selector.WithDefaultOption(defaultOption)
	}
	choice, err := selector.Show()
	if err != nil {
		return defaultOption
	}
	return choice
}

// Confirm prompts the user for a yes/no answer.
func (c *Console) Confirm(label string, defaultValue bool) bool {
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(label).
		WithDefaultValue(defaultValue).
		Show()
	if err != nil {
		return defaultValue
	}
	return answer
}
