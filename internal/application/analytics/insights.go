package analytics

import (
	"fmt"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// Insights generates the narrative summary lines for the derived views.
// The order is fixed; a line whose precondition does not hold is simply
// omitted, never reordered.
func Insights(v *entity.DerivedViews) []string {
	var lines []string

	if len(v.Trend) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Handled %d calls across %d days (avg %.1f/day).",
			v.TotalCount, len(v.Trend), v.DailyAverage))
	}

	if v.MonthOverMonth != nil {
		lines = append(lines, fmt.Sprintf(
			"Month-over-month: %+.1f%% vs %s (%d calls).",
			v.MonthOverMonth.Percent, v.MonthOverMonth.ReferenceMonth, v.MonthOverMonth.ReferenceTotal))
	}

	if v.YearOverYear != nil {
		lines = append(lines, fmt.Sprintf(
			"Year-over-year: %+.1f%% vs %s (%d calls).",
			v.YearOverYear.Percent, v.YearOverYear.ReferenceMonth, v.YearOverYear.ReferenceTotal))
	}

	if v.Peak != nil {
		lines = append(lines, fmt.Sprintf(
			"Peak day: %s with %d calls.", v.Peak.Date, v.Peak.Count))
	}

	if v.Low != nil && v.Peak != nil && v.Low.Date != v.Peak.Date {
		lines = append(lines, fmt.Sprintf(
			"Quietest day: %s with %d calls.", v.Low.Date, v.Low.Count))
	}

	if len(v.TopCategories) > 0 {
		top := v.TopCategories[0]
		lines = append(lines, fmt.Sprintf(
			"Top category: %s (%d calls).", top.Name, top.Total))
	}

	return lines
}
