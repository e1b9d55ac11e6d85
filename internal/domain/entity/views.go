package entity

// WeekdayAverage is the seasonality figure for one weekday. Excluded
// marks the weekday that is zeroed by policy rather than computed.
type WeekdayAverage struct {
	Weekday  string  `json:"weekday"`
	Total    int     `json:"total"`
	Days     int     `json:"days"`
	Average  float64 `json:"average"`
	Excluded bool    `json:"excluded,omitempty"`
}

// CategoryCount is one entry of a top-N ranking.
type CategoryCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// StackedSeries is the category-over-time view: Counts[i][j] is the
// total for Categories[i] in Buckets[j]. Buckets are day keys when a
// specific month is selected, month keys otherwise.
type StackedSeries struct {
	Buckets    []string `json:"buckets"`
	Categories []string `json:"categories"`
	Counts     [][]int  `json:"counts"`
}

// ExportTable is a finished, ordered row set handed to the export
// adapter.
type ExportTable struct {
	Headers []string
	Rows    [][]string
}

// DerivedViews is the full set of derived analytical views for one
// (dataset, filter, group, options) combination. Each recomputation
// produces a fresh value sharing no mutable state with the previous one.
type DerivedViews struct {
	Filter  FilterState    `json:"filter"`
	Group   GroupConfig    `json:"group"`
	Options DisplayOptions `json:"options"`

	Trend            []TrendRow       `json:"trend"`
	MonthlyTotals    []MonthlyTotal   `json:"monthly_totals"`
	AllMonthlyTotals []MonthlyTotal   `json:"all_monthly_totals"`
	MonthOverMonth   *DeltaStat       `json:"month_over_month,omitempty"`
	YearOverYear     *DeltaStat       `json:"year_over_year,omitempty"`
	Weekdays         []WeekdayAverage `json:"weekdays"`
	Histogram        Histogram        `json:"histogram"`
	Stacked          StackedSeries    `json:"stacked"`
	TopCategories    []CategoryCount  `json:"top_categories"`
	Insights         []string         `json:"insights"`

	TotalCount   int      `json:"total_count"`
	DailyAverage float64  `json:"daily_average"`
	Peak         *TrendRow `json:"peak,omitempty"`
	Low          *TrendRow `json:"low,omitempty"`
}
