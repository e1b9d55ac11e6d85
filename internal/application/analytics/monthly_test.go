package analytics

import (
	"math"
	"testing"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

func TestMonthlyTotals(t *testing.T) {
	rows := []entity.TrendRow{
		{Date: "2024-01-01", Count: 5},
		{Date: "2024-01-02", Count: 7},
		{Date: "2024-01-03", Count: 7},
		{Date: "2024-02-01", Count: 10},
	}

	got := MonthlyTotals(rows)
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}

	jan := got[0]
	if jan.Month != "2024-01" || jan.Total != 19 || jan.Days != 3 {
		t.Errorf("january = %+v", jan)
	}
	if jan.Max.Date != "2024-01-02" {
		t.Errorf("max tie should keep the first row, got %s", jan.Max.Date)
	}
	if jan.Min.Date != "2024-01-01" || jan.Min.Count != 5 {
		t.Errorf("min = %+v", jan.Min)
	}

	feb := got[1]
	if feb.Month != "2024-02" || feb.Total != 10 || feb.Days != 1 {
		t.Errorf("february = %+v", feb)
	}
}

func TestMonthOverMonth(t *testing.T) {
	totals := []entity.MonthlyTotal{
		{Month: "2024-01", Total: 12},
		{Month: "2024-02", Total: 10},
		{Month: "2024-03", Total: 0},
		{Month: "2024-04", Total: 8},
	}

	t.Run("regular delta", func(t *testing.T) {
		got := MonthOverMonth(totals, "2024-02")
		if got == nil {
			t.Fatal("expected a delta")
		}
		want := float64(10-12) / 12 * 100
		if math.Abs(got.Percent-want) > 1e-9 {
			t.Errorf("percent = %v, want %v", got.Percent, want)
		}
		if got.ReferenceMonth != "2024-01" || got.ReferenceTotal != 12 {
			t.Errorf("reference = %s/%d", got.ReferenceMonth, got.ReferenceTotal)
		}
	})

	t.Run("first month has no predecessor", func(t *testing.T) {
		if got := MonthOverMonth(totals, "2024-01"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("zero reference total", func(t *testing.T) {
		if got := MonthOverMonth(totals, "2024-04"); got != nil {
			t.Errorf("division by a zero month must yield nil, got %+v", got)
		}
	})

	t.Run("month not in list", func(t *testing.T) {
		if got := MonthOverMonth(totals, "2024-12"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}

func TestYearOverYear(t *testing.T) {
	totals := []entity.MonthlyTotal{
		{Month: "2023-06", Total: 100},
		{Month: "2023-07", Total: 40},
		{Month: "2024-06", Total: 150},
	}

	t.Run("fifty percent up", func(t *testing.T) {
		got := YearOverYear(totals, "2024-06")
		if got == nil {
			t.Fatal("expected a delta")
		}
		if got.Percent != 50 {
			t.Errorf("percent = %v, want 50", got.Percent)
		}
		if got.ReferenceMonth != "2023-06" || got.ReferenceTotal != 100 {
			t.Errorf("reference = %s/%d", got.ReferenceMonth, got.ReferenceTotal)
		}
	})

	t.Run("current month absent", func(t *testing.T) {
		if got := YearOverYear(totals, "2024-07"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("reference month absent", func(t *testing.T) {
		if got := YearOverYear(totals, "2023-06"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("malformed key", func(t *testing.T) {
		if got := YearOverYear(totals, "2024-6"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}

func TestPreviousYearKey(t *testing.T) {
	tests := []struct {
		month string
		want  string
	}{
		{"2024-06", "2023-06"},
		{"2000-01", "1999-01"},
		{"2024/06", ""},
		{"202406", ""},
		{"abcd-06", ""},
	}
	for _, tt := range tests {
		if got := previousYearKey(tt.month); got != tt.want {
			t.Errorf("previousYearKey(%q) = %q, want %q", tt.month, got, tt.want)
		}
	}
}
