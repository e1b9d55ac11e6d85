package analytics

import (
	"math"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// Moving-average window sizes applied to the daily trend.
const (
	ShortWindow = 7
	LongWindow  = 30
)

// WithMovingAverages returns a copy of the chronologically sorted series
// with MA7 and MA30 populated. The two windows are computed
// independently over the same input series.
func WithMovingAverages(rows []entity.TrendRow) []entity.TrendRow {
	out := make([]entity.TrendRow, len(rows))
	copy(out, rows)

	ma7 := MovingAverage(rows, ShortWindow)
	ma30 := MovingAverage(rows, LongWindow)
	for i := range out {
		out[i].MA7 = ma7[i]
		out[i].MA30 = ma30[i]
	}
	return out
}

// MovingAverage computes the trailing simple moving average of the daily
// counts. The output has the same length as the input; entries before a
// full window has accumulated (index < window-1) are nil. Defined values
// are rounded to two decimals.
func MovingAverage(rows []entity.TrendRow, window int) []*float64 {
	out := make([]*float64, len(rows))
	if window <= 0 {
		return out
	}

	sum := 0
	for i, row := range rows {
		sum += row.Count
		if i >= window {
			sum -= rows[i-window].Count
		}
		if i >= window-1 {
			avg := round2(float64(sum) / float64(window))
			out[i] = &avg
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
