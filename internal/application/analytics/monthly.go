package analytics

import (
	"sort"
	"strconv"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// MonthlyTotals groups trend rows by month key and accumulates the
// total, the number of observed days, and the busiest/quietest day of
// each month (ties keep the first row encountered). The result is
// sorted chronologically and contains one entry per month with data.
func MonthlyTotals(rows []entity.TrendRow) []entity.MonthlyTotal {
	byMonth := make(map[string]*entity.MonthlyTotal)
	var order []string

	for _, row := range rows {
		month := row.MonthKey()
		if len(month) < 7 {
			continue
		}
		mt, ok := byMonth[month]
		if !ok {
			mt = &entity.MonthlyTotal{Month: month, Max: row, Min: row}
			byMonth[month] = mt
			order = append(order, month)
		}
		mt.Total += row.Count
		mt.Days++
		if row.Count > mt.Max.Count {
			mt.Max = row
		}
		if row.Count < mt.Min.Count {
			mt.Min = row
		}
	}

	sort.Strings(order)
	out := make([]entity.MonthlyTotal, 0, len(order))
	for _, month := range order {
		out = append(out, *byMonth[month])
	}
	return out
}

// MonthOverMonth compares a month against the chronologically preceding
// entry of the given monthly list. It returns nil when the month is not
// in the list, has no predecessor, or the predecessor's total is zero.
func MonthOverMonth(totals []entity.MonthlyTotal, month string) *entity.DeltaStat {
	idx := -1
	for i, mt := range totals {
		if mt.Month == month {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return nil
	}
	prev := totals[idx-1]
	if prev.Total == 0 {
		return nil
	}
	cur := totals[idx]
	return &entity.DeltaStat{
		Month:          cur.Month,
		Total:          cur.Total,
		ReferenceMonth: prev.Month,
		ReferenceTotal: prev.Total,
		Percent:        float64(cur.Total-prev.Total) / float64(prev.Total) * 100,
	}
}

// YearOverYear compares a month against the month exactly one calendar
// year earlier, located by key arithmetic rather than list position. It
// returns nil when either month is absent or the reference total is zero.
func YearOverYear(totals []entity.MonthlyTotal, month string) *entity.DeltaStat {
	ref := previousYearKey(month)
	if ref == "" {
		return nil
	}

	var cur, prev *entity.MonthlyTotal
	for i := range totals {
		switch totals[i].Month {
		case month:
			cur = &totals[i]
		case ref:
			prev = &totals[i]
		}
	}
	if cur == nil || prev == nil || prev.Total == 0 {
		return nil
	}
	return &entity.DeltaStat{
		Month:          cur.Month,
		Total:          cur.Total,
		ReferenceMonth: prev.Month,
		ReferenceTotal: prev.Total,
		Percent:        float64(cur.Total-prev.Total) / float64(prev.Total) * 100,
	}
}

// previousYearKey returns the "YYYY-MM" key one year before the given
// one, or "" when the key is not a valid month key.
func previousYearKey(month string) string {
	if len(month) != 7 || month[4] != '-' {
		return ""
	}
	year, err := strconv.Atoi(month[:4])
	if err != nil {
		return ""
	}
	return strconv.Itoa(year-1) + month[4:]
}
