package repository

import (
	"context"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
	"github.com/caguiar/servicedesk-dashboard-go/internal/shared/types"
)

// DatasetRepository defines the interface for fetching the published
// spreadsheet CSV exports.
type DatasetRepository interface {
	// FetchCSV retrieves one CSV resource and returns its records keyed
	// by column header. Results are served from the in-memory cache on
	// repeat fetches of the same URL.
	FetchCSV(ctx context.Context, url string) ([]entity.RawRow, error)

	// LoadDataset fetches and normalizes every configured dataset.
	LoadDataset(ctx context.Context, sources types.DataSources) (*entity.Dataset, error)

	// Invalidate drops any cached rows so the next load refetches.
	Invalidate()
}
