package repository

import (
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing derived views to
// report files. CSV files are UTF-8 with a byte-order-mark prefix and
// follow the `<view>-<scope>.csv` naming convention, where scope is the
// active month key, year, or "all".
type ExportRepository interface {
	ExportViewToCSV(view string, table entity.ExportTable, scope, outputDir string) (string, error)
	ExportAllToCSV(views *entity.DerivedViews, outputDir string) ([]string, error)
	ExportViewsToJSON(views *entity.DerivedViews, outputDir string) (string, error)
	ExportReportToPDF(views *entity.DerivedViews, outputDir string) (string, error)
}
