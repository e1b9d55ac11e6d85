package analytics

import (
	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// Compute derives every dashboard view from the immutable dataset and
// the current filter, grouping and display state. It is a pure function:
// each call returns a fresh DerivedViews sharing no mutable state with
// any previous pass, and an empty dataset yields well-formed empty views.
func Compute(ds *entity.Dataset, filter entity.FilterState, group entity.GroupConfig, opts entity.DisplayOptions) *entity.DerivedViews {
	group.Repair()

	views := &entity.DerivedViews{
		Filter:  filter,
		Group:   group,
		Options: opts,
	}
	if ds == nil {
		ds = &entity.Dataset{}
	}

	filtered := FilterTrend(ds.Trend, filter)
	views.Trend = WithMovingAverages(filtered)

	views.AllMonthlyTotals = MonthlyTotals(ds.Trend)
	if filter.Year != entity.All {
		yearOnly := entity.FilterState{Year: filter.Year, Month: entity.All}
		views.MonthlyTotals = MonthlyTotals(FilterTrend(ds.Trend, yearOnly))
	} else {
		views.MonthlyTotals = views.AllMonthlyTotals
	}

	if filter.Month != entity.All {
		views.MonthOverMonth = MonthOverMonth(views.MonthlyTotals, filter.Month)
		views.YearOverYear = YearOverYear(views.AllMonthlyTotals, filter.Month)
	}

	for _, row := range views.Trend {
		views.TotalCount += row.Count
		if views.Peak == nil || row.Count > views.Peak.Count {
			r := row
			views.Peak = &r
		}
		if views.Low == nil || row.Count < views.Low.Count {
			r := row
			views.Low = &r
		}
	}
	if n := len(views.Trend); n > 0 {
		views.DailyAverage = round1(float64(views.TotalCount) / float64(n))
	}

	views.Weekdays = WeekdayAverages(filtered)
	views.Histogram = ComputeHistogram(ds.Calls, filter, group, opts)
	views.Stacked = ComputeStacked(ds.Calls, filter)
	views.TopCategories = TopCategories(ds.Calls, filter)
	views.Insights = Insights(views)

	return views
}
