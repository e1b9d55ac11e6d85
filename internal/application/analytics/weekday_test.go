package analytics

import (
	"testing"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

func TestWeekdayAverages(t *testing.T) {
	// 2024-06-03 and 2024-06-10 are Mondays, 2024-06-08 is a Saturday.
	rows := []entity.TrendRow{
		{Date: "2024-06-03", Count: 4},
		{Date: "2024-06-10", Count: 6},
		{Date: "2024-06-08", Count: 99},
		{Date: "2024-06-04", Count: 7},
		{Date: "2024-06", Count: 50}, // degraded date, no weekday
	}

	got := WeekdayAverages(rows)
	if len(got) != 7 {
		t.Fatalf("got %d weekdays, want 7", len(got))
	}

	if got[0].Weekday != "Monday" || got[6].Weekday != "Sunday" {
		t.Errorf("order = %s..%s, want Monday..Sunday", got[0].Weekday, got[6].Weekday)
	}

	mon := got[0]
	if mon.Total != 10 || mon.Days != 2 || mon.Average != 5 {
		t.Errorf("monday = %+v", mon)
	}

	tue := got[1]
	if tue.Total != 7 || tue.Days != 1 || tue.Average != 7 {
		t.Errorf("tuesday = %+v", tue)
	}

	sat := got[5]
	if sat.Weekday != "Saturday" || !sat.Excluded {
		t.Fatalf("saturday = %+v", sat)
	}
	if sat.Total != 0 || sat.Days != 0 || sat.Average != 0 {
		t.Errorf("saturday must report zero despite data, got %+v", sat)
	}

	sun := got[6]
	if sun.Days != 0 || sun.Average != 0 {
		t.Errorf("sunday without data = %+v", sun)
	}
}

func TestWeekdayAveragesRounding(t *testing.T) {
	// Three Wednesdays: 2024-06-05, 2024-06-12, 2024-06-19.
	rows := []entity.TrendRow{
		{Date: "2024-06-05", Count: 1},
		{Date: "2024-06-12", Count: 1},
		{Date: "2024-06-19", Count: 2},
	}

	got := WeekdayAverages(rows)
	wed := got[2]
	if wed.Weekday != "Wednesday" {
		t.Fatalf("index 2 = %s", wed.Weekday)
	}
	if wed.Average != 1.3 {
		t.Errorf("average = %v, want 1.3", wed.Average)
	}
}
