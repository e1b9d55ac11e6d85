package analytics

import (
	"time"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// ExcludedWeekday is always reported as zero in the seasonality view,
// regardless of what the underlying data says. The published sheets have
// always carried zero for Saturdays (the desk is not staffed then), and
// the dashboard preserves that behavior as an explicit policy.
// TODO: confirm with the service desk whether Saturday rows in newer
// sheet exports are real data or an export artifact.
const ExcludedWeekday = time.Saturday

var weekdayOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayAverages buckets the filtered trend rows by weekday and returns
// the Mon-Sun averages (total/days, one decimal). Rows with a degraded
// month-only date cannot be placed on a weekday and are skipped. The
// excluded weekday is forced to zero output.
func WeekdayAverages(rows []entity.TrendRow) []entity.WeekdayAverage {
	totals := make(map[time.Weekday]int)
	days := make(map[time.Weekday]int)

	for _, row := range rows {
		t, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			continue
		}
		wd := t.Weekday()
		totals[wd] += row.Count
		days[wd]++
	}

	out := make([]entity.WeekdayAverage, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		avg := entity.WeekdayAverage{Weekday: wd.String()}
		if wd == ExcludedWeekday {
			avg.Excluded = true
			out = append(out, avg)
			continue
		}
		avg.Total = totals[wd]
		avg.Days = days[wd]
		if avg.Days > 0 {
			avg.Average = round1(float64(avg.Total) / float64(avg.Days))
		}
		out = append(out, avg)
	}
	return out
}
