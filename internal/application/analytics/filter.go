package analytics

import (
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// matchScope reports whether a "YYYY-MM" month key falls inside the
// year/month filter.
func matchScope(month string, filter entity.FilterState) bool {
	if filter.Month != entity.All {
		return month == filter.Month
	}
	if filter.Year != entity.All {
		return len(month) >= 4 && month[:4] == filter.Year
	}
	return true
}

// FilterTrend returns the trend rows inside the current year/month scope.
func FilterTrend(rows []entity.TrendRow, filter entity.FilterState) []entity.TrendRow {
	out := make([]entity.TrendRow, 0, len(rows))
	for _, row := range rows {
		if matchScope(row.MonthKey(), filter) {
			out = append(out, row)
		}
	}
	return out
}

// FilterCalls returns the call records inside the current year/month
// scope and, when a concrete group value is selected, only the records
// carrying that value.
func FilterCalls(calls []entity.CallRecord, filter entity.FilterState, group entity.GroupConfig) []entity.CallRecord {
	selected := group.GroupBy != entity.GroupByNone && group.Selection != entity.All
	out := make([]entity.CallRecord, 0, len(calls))
	for _, c := range calls {
		if !matchScope(c.MonthKey(), filter) {
			continue
		}
		if selected && c.GroupValue(group.GroupBy) != group.Selection {
			continue
		}
		out = append(out, c)
	}
	return out
}
