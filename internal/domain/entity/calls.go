package entity

// CallRecord is one normalized service-call record. Minutes is nil when
// the source row carried no finite resolve duration; zero minutes is a
// legitimate value and is never used to mean "missing".
type CallRecord struct {
	Index    int      `json:"index"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Module   string   `json:"module"`
	Count    int      `json:"count"`
	Minutes  *float64 `json:"minutes,omitempty"`
}

// MonthKey returns the "YYYY-MM" grouping key for the record.
func (c CallRecord) MonthKey() string {
	if len(c.Date) < 7 {
		return c.Date
	}
	return c.Date[:7]
}

// GroupValue returns the record's value for the given grouping dimension.
func (c CallRecord) GroupValue(groupBy GroupBy) string {
	switch groupBy {
	case GroupByCategory:
		return c.Category
	case GroupByModule:
		return c.Module
	default:
		return ""
	}
}

// Dataset is the immutable normalized row set every derived view is
// recomputed from. Nothing downstream mutates it.
type Dataset struct {
	Trend []TrendRow   `json:"trend"`
	Calls []CallRecord `json:"calls"`
}
