package analytics

import (
	"fmt"
	"testing"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

func trendSeries(counts ...int) []entity.TrendRow {
	rows := make([]entity.TrendRow, len(counts))
	for i, c := range counts {
		rows[i] = entity.TrendRow{
			Date:  fmt.Sprintf("2024-06-%02d", i+1),
			Count: c,
		}
	}
	return rows
}

func TestMovingAverageSevenDay(t *testing.T) {
	rows := trendSeries(1, 2, 3, 4, 5, 6, 7, 8)

	got := MovingAverage(rows, ShortWindow)
	if len(got) != len(rows) {
		t.Fatalf("output length %d, want %d", len(got), len(rows))
	}

	for i := 0; i < ShortWindow-1; i++ {
		if got[i] != nil {
			t.Errorf("index %d should be nil before a full window, got %v", i, *got[i])
		}
	}

	if got[6] == nil || *got[6] != 4 {
		t.Errorf("got[6] = %v, want 4", got[6])
	}
	if got[7] == nil || *got[7] != 5 {
		t.Errorf("got[7] = %v, want 5", got[7])
	}
}

func TestMovingAverageRounding(t *testing.T) {
	rows := trendSeries(1, 1, 0, 0, 0, 0, 0)
	got := MovingAverage(rows, ShortWindow)
	if got[6] == nil || *got[6] != 0.29 {
		t.Errorf("got[6] = %v, want 0.29", got[6])
	}
}

func TestMovingAverageShortSeries(t *testing.T) {
	rows := trendSeries(5, 10)
	for _, v := range MovingAverage(rows, ShortWindow) {
		if v != nil {
			t.Errorf("series shorter than the window should be all nil, got %v", *v)
		}
	}
}

func TestWithMovingAverages(t *testing.T) {
	rows := trendSeries(1, 2, 3, 4, 5, 6, 7, 8)
	got := WithMovingAverages(rows)

	if rows[6].MA7 != nil {
		t.Error("input series must not be mutated")
	}
	if got[6].MA7 == nil || *got[6].MA7 != 4 {
		t.Errorf("MA7[6] = %v, want 4", got[6].MA7)
	}
	for i := range got {
		if got[i].MA30 != nil {
			t.Errorf("MA30[%d] should be nil on an 8-day series", i)
		}
	}
}
