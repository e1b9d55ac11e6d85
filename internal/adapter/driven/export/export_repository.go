package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// utf8BOM prefixes every CSV export so spreadsheet applications detect
// the encoding.
const utf8BOM = "\ufeff"

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new ExportRepository implementation.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// EncodeCSV renders an export table as CSV text: a byte-order-mark
// prefix, one header line, and one line per row with every cell
// JSON-stringified so delimiters and newlines inside values stay safe.
// An empty row set yields an empty string, not a header-only file.
func EncodeCSV(table entity.ExportTable) string {
	if len(table.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(utf8BOM)
	writeCSVLine(&b, table.Headers)
	for _, row := range table.Rows {
		writeCSVLine(&b, row)
	}
	return b.String()
}

func writeCSVLine(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		// json.Marshal of a string cannot fail.
		encoded, _ := json.Marshal(cell)
		b.Write(encoded)
	}
	b.WriteByte('\n')
}

// ExportViewToCSV writes one derived view as `<view>-<scope>.csv`.
func (r *ExportRepositoryImpl) ExportViewToCSV(view string, table entity.ExportTable, scope, outputDir string) (string, error) {
	outputFilename, err := buildFilename(view, scope, outputDir, "csv")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, []byte(EncodeCSV(table)), 0644); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// ExportAllToCSV writes every derived view to its own CSV file.
func (r *ExportRepositoryImpl) ExportAllToCSV(views *entity.DerivedViews, outputDir string) ([]string, error) {
	scope := views.Filter.Scope()
	var files []string
	for _, export := range []struct {
		view  string
		table entity.ExportTable
	}{
		{"trend", TrendTable(views.Trend)},
		{"monthly", MonthlyTable(views.MonthlyTotals)},
		{"weekday", WeekdayTable(views.Weekdays)},
		{"durations", HistogramTable(views.Histogram)},
		{"stacked", StackedTable(views.Stacked)},
		{"top-categories", RankingTable(views.TopCategories)},
	} {
		path, err := r.ExportViewToCSV(export.view, export.table, scope, outputDir)
		if err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

// ExportViewsToJSON writes the full derived view set as
// `dashboard-<scope>.json`.
func (r *ExportRepositoryImpl) ExportViewsToJSON(views *entity.DerivedViews, outputDir string) (string, error) {
	outputFilename, err := buildFilename("dashboard", views.Filter.Scope(), outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(views); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// ExportReportToPDF writes a paginated summary report of the derived
// views as `dashboard-<scope>.pdf`.
func (r *ExportRepositoryImpl) ExportReportToPDF(views *entity.DerivedViews, outputDir string) (string, error) {
	scope := views.Filter.Scope()
	outputFilename, err := buildFilename("dashboard", scope, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Service Desk Dashboard — %s", scope)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	drawSection("Insights", strings.Join(views.Insights, "\n"))

	var monthly strings.Builder
	for _, mt := range views.MonthlyTotals {
		monthly.WriteString(fmt.Sprintf("%s: %d calls over %d days (peak %s: %d)\n",
			mt.Month, mt.Total, mt.Days, mt.Max.Date, mt.Max.Count))
	}
	drawSection("Monthly Totals", monthly.String())

	var weekdays strings.Builder
	for _, wd := range views.Weekdays {
		if wd.Excluded {
			weekdays.WriteString(fmt.Sprintf("%s: excluded by policy\n", wd.Weekday))
			continue
		}
		weekdays.WriteString(fmt.Sprintf("%s: avg %.1f (%d days)\n", wd.Weekday, wd.Average, wd.Days))
	}
	drawSection("Weekday Averages", weekdays.String())

	var durations strings.Builder
	if views.Histogram.InScope > 0 {
		durations.WriteString(fmt.Sprintf("In scope: %d, missing duration: %d\n",
			views.Histogram.InScope, views.Histogram.Missing))
		if views.Histogram.Mean != nil {
			durations.WriteString(fmt.Sprintf("Mean: %.2f min, median: %.2f min\n",
				*views.Histogram.Mean, *views.Histogram.Median))
		}
		for _, s := range views.Histogram.Series {
			for j, bin := range views.Histogram.Bins {
				if s.Counts[j] == 0 {
					continue
				}
				name := s.Group
				if name != "" {
					name += " | "
				}
				durations.WriteString(fmt.Sprintf("%s%s: %d\n", name, bin.Label, s.Counts[j]))
			}
		}
	}
	drawSection("Duration Distribution", durations.String())

	var top strings.Builder
	for i, c := range views.TopCategories {
		top.WriteString(fmt.Sprintf("%d. %s: %d\n", i+1, c.Name, c.Total))
	}
	drawSection("Top Categories", top.String())

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Service Desk Dashboard | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// buildFilename joins `<view>-<scope>.<ext>` under the output directory,
// creating the directory when needed.
func buildFilename(view, scope, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%s", view, scope, ext)), nil
}

func formatMA(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// TrendTable lays out the daily trend with its moving averages.
func TrendTable(rows []entity.TrendRow) entity.ExportTable {
	t := entity.ExportTable{Headers: []string{"date", "count", "ma7", "ma30"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			row.Date,
			strconv.Itoa(row.Count),
			formatMA(row.MA7),
			formatMA(row.MA30),
		})
	}
	return t
}

// MonthlyTable lays out the monthly totals.
func MonthlyTable(totals []entity.MonthlyTotal) entity.ExportTable {
	t := entity.ExportTable{Headers: []string{"month", "total", "days", "max_date", "max_count", "min_date", "min_count"}}
	for _, mt := range totals {
		t.Rows = append(t.Rows, []string{
			mt.Month,
			strconv.Itoa(mt.Total),
			strconv.Itoa(mt.Days),
			mt.Max.Date,
			strconv.Itoa(mt.Max.Count),
			mt.Min.Date,
			strconv.Itoa(mt.Min.Count),
		})
	}
	return t
}

// WeekdayTable lays out the weekday seasonality view.
func WeekdayTable(rows []entity.WeekdayAverage) entity.ExportTable {
	t := entity.ExportTable{Headers: []string{"weekday", "total", "days", "average"}}
	for _, wd := range rows {
		t.Rows = append(t.Rows, []string{
			wd.Weekday,
			strconv.Itoa(wd.Total),
			strconv.Itoa(wd.Days),
			strconv.FormatFloat(wd.Average, 'f', 1, 64),
		})
	}
	return t
}

// HistogramTable lays out the duration distribution, one row per
// (bin, group) pair.
func HistogramTable(h entity.Histogram) entity.ExportTable {
	t := entity.ExportTable{Headers: []string{"bin", "group", "count", "value"}}
	for _, s := range h.Series {
		for j, bin := range h.Bins {
			t.Rows = append(t.Rows, []string{
				bin.Label,
				s.Group,
				strconv.Itoa(s.Counts[j]),
				strconv.FormatFloat(s.Values[j], 'f', -1, 64),
			})
		}
	}
	return t
}

// StackedTable lays out the category-over-time series, one row per time
// bucket with one column per retained category.
func StackedTable(s entity.StackedSeries) entity.ExportTable {
	t := entity.ExportTable{Headers: append([]string{"bucket"}, s.Categories...)}
	for j, bucket := range s.Buckets {
		row := []string{bucket}
		for i := range s.Categories {
			row = append(row, strconv.Itoa(s.Counts[i][j]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// RankingTable lays out a top-N ranking.
func RankingTable(rows []entity.CategoryCount) entity.ExportTable {
	t := entity.ExportTable{Headers: []string{"rank", "name", "total"}}
	for i, c := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			c.Name,
			strconv.Itoa(c.Total),
		})
	}
	return t
}
