package analytics

import (
	"sort"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// TimeIndex is the set of selectable years and, per year, selectable
// months, derived from the normalized trend series.
type TimeIndex struct {
	Years        []string
	MonthsByYear map[string][]string
}

// Index builds the TimeIndex. Keys are deduplicated and sorted
// lexicographically, which is chronological for zero-padded ISO keys.
func Index(rows []entity.TrendRow) TimeIndex {
	monthSet := make(map[string]struct{})
	for _, row := range rows {
		month := row.MonthKey()
		if len(month) < 7 {
			continue
		}
		monthSet[month] = struct{}{}
	}

	idx := TimeIndex{MonthsByYear: make(map[string][]string)}
	yearSet := make(map[string]struct{})
	for month := range monthSet {
		year := month[:4]
		if _, ok := yearSet[year]; !ok {
			yearSet[year] = struct{}{}
			idx.Years = append(idx.Years, year)
		}
		idx.MonthsByYear[year] = append(idx.MonthsByYear[year], month)
	}

	sort.Strings(idx.Years)
	for _, months := range idx.MonthsByYear {
		sort.Strings(months)
	}
	return idx
}

// Months returns the selectable months for a year ("ALL" has none).
func (idx TimeIndex) Months(year string) []string {
	return idx.MonthsByYear[year]
}
