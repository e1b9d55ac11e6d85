package analytics

import (
	"sort"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

const stackedCategoryLimit = 5

// ComputeStacked builds the category-over-time series: per-day buckets
// when a specific month is selected, per-month buckets otherwise. Only
// the top five categories by overall total across the filtered range are
// retained; records under dropped categories are omitted, not merged.
func ComputeStacked(calls []entity.CallRecord, filter entity.FilterState) entity.StackedSeries {
	inScope := FilterCalls(calls, filter, entity.NewGroupConfig())
	byDay := filter.Month != entity.All

	bucketOf := func(c entity.CallRecord) (string, bool) {
		if byDay {
			// Degraded month-only dates cannot be placed on a day.
			if len(c.Date) < 10 {
				return "", false
			}
			return c.Date, true
		}
		return c.MonthKey(), true
	}

	categoryTotals := make(map[string]int)
	var categoryOrder []string
	bucketSet := make(map[string]struct{})
	counts := make(map[string]map[string]int) // category -> bucket -> total

	for _, c := range inScope {
		bucket, ok := bucketOf(c)
		if !ok {
			continue
		}
		if _, seen := categoryTotals[c.Category]; !seen {
			categoryOrder = append(categoryOrder, c.Category)
			counts[c.Category] = make(map[string]int)
		}
		categoryTotals[c.Category] += c.Count
		counts[c.Category][bucket] += c.Count
		bucketSet[bucket] = struct{}{}
	}

	sort.SliceStable(categoryOrder, func(i, j int) bool {
		return categoryTotals[categoryOrder[i]] > categoryTotals[categoryOrder[j]]
	})
	if len(categoryOrder) > stackedCategoryLimit {
		categoryOrder = categoryOrder[:stackedCategoryLimit]
	}

	buckets := make([]string, 0, len(bucketSet))
	for b := range bucketSet {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	series := entity.StackedSeries{Buckets: buckets, Categories: categoryOrder}
	for _, cat := range categoryOrder {
		row := make([]int, len(buckets))
		for j, b := range buckets {
			row[j] = counts[cat][b]
		}
		series.Counts = append(series.Counts, row)
	}
	return series
}
