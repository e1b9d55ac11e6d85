package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/caguiar/servicedesk-dashboard-go/internal/application/analytics"
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/repository"
	"github.com/caguiar/servicedesk-dashboard-go/internal/shared/types"
)

// SheetsRepositoryImpl implements the DatasetRepository against
// published spreadsheet CSV exports fetched over plain HTTP. Fetched
// rows are kept in a transient in-memory cache keyed by URL.
type SheetsRepositoryImpl struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string][]entity.RawRow
}

// NewSheetsRepository creates a new DatasetRepository implementation.
func NewSheetsRepository() repository.DatasetRepository {
	return &SheetsRepositoryImpl{
		client: &http.Client{Timeout: 30 * time.Second},
		cache:  make(map[string][]entity.RawRow),
	}
}

// FetchCSV retrieves one CSV resource and returns its records keyed by
// column header. Repeat fetches of the same URL are served from cache.
func (r *SheetsRepositoryImpl) FetchCSV(ctx context.Context, url string) ([]entity.RawRow, error) {
	r.mu.Lock()
	if rows, ok := r.cache[url]; ok {
		r.mu.Unlock()
		return rows, nil
	}
	r.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request for %s: %w", url, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching CSV from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching CSV from %s", resp.Status, url)
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV from %s: %w", url, err)
	}

	r.mu.Lock()
	r.cache[url] = rows
	r.mu.Unlock()
	return rows, nil
}

// LoadDataset fetches and normalizes the configured datasets. The trend
// dataset is required; the calls dataset is optional and its absence
// just leaves the duration/ranking views empty.
func (r *SheetsRepositoryImpl) LoadDataset(ctx context.Context, sources types.DataSources) (*entity.Dataset, error) {
	if sources.TrendURL == "" {
		return nil, types.ErrNoTrendURL
	}

	trendRaw, err := r.FetchCSV(ctx, sources.TrendURL)
	if err != nil {
		return nil, err
	}

	ds := &entity.Dataset{Trend: analytics.NormalizeTrend(trendRaw)}
	if len(ds.Trend) == 0 {
		return nil, types.ErrEmptyDataset
	}

	if sources.CallsURL != "" {
		callsRaw, err := r.FetchCSV(ctx, sources.CallsURL)
		if err != nil {
			return nil, err
		}
		ds.Calls = analytics.NormalizeCalls(callsRaw)
	}

	return ds, nil
}

// Invalidate drops the cache so the next load refetches every dataset.
func (r *SheetsRepositoryImpl) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string][]entity.RawRow)
	r.mu.Unlock()
}

// parseCSV reads a CSV stream into header-keyed rows. Records may have
// ragged lengths; missing trailing cells are simply absent from the row.
func parseCSV(body io.Reader) ([]entity.RawRow, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []entity.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(entity.RawRow, len(header))
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}
