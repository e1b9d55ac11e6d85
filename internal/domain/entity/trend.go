package entity

// TrendRow represents the call volume observed on one calendar day.
// Date is a canonical "YYYY-MM-DD" string, or a degraded "YYYY-MM" month
// key when the source date could not be fully parsed.
type TrendRow struct {
	Date  string   `json:"date"`
	Count int      `json:"count"`
	MA7   *float64 `json:"ma7,omitempty"`
	MA30  *float64 `json:"ma30,omitempty"`
}

// MonthKey returns the "YYYY-MM" grouping key for the row.
func (r TrendRow) MonthKey() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

// MonthlyTotal aggregates the trend rows of one calendar month.
type MonthlyTotal struct {
	Month string   `json:"month"`
	Total int      `json:"total"`
	Days  int      `json:"days"`
	Max   TrendRow `json:"max"`
	Min   TrendRow `json:"min"`
}

// DeltaStat is a percent comparison of one month against a reference
// month (the previous month, or the same month one year earlier).
type DeltaStat struct {
	Month          string  `json:"month"`
	Total          int     `json:"total"`
	ReferenceMonth string  `json:"reference_month"`
	ReferenceTotal int     `json:"reference_total"`
	Percent        float64 `json:"percent"`
}
