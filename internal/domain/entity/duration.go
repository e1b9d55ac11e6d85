package entity

// DurationBin is one partition of the duration axis. Max is nil for the
// open-ended overflow bin.
type DurationBin struct {
	Min   float64  `json:"min"`
	Max   *float64 `json:"max,omitempty"`
	Label string   `json:"label"`
}

// HistogramSeries holds the per-bin counts for one group (Group is empty
// for the single ungrouped series). RowIndexes keeps, per bin, the
// indexes of the constituent records in the normalized call slice so a
// drill-down view can resolve them on demand.
type HistogramSeries struct {
	Group      string    `json:"group"`
	Counts     []int     `json:"counts"`
	Values     []float64 `json:"values"`
	RowIndexes [][]int   `json:"row_indexes"`
}

// Histogram is the derived duration distribution view.
type Histogram struct {
	Bins    []DurationBin     `json:"bins"`
	Series  []HistogramSeries `json:"series"`
	Percent bool              `json:"percent"`
	Faceted bool              `json:"faceted"`

	// InScope counts the filtered records with a finite duration;
	// Missing counts the filtered records without one.
	InScope int `json:"in_scope"`
	Missing int `json:"missing"`

	Mean      *float64 `json:"mean,omitempty"`
	Median    *float64 `json:"median,omitempty"`
	MeanBin   int      `json:"mean_bin"`
	MedianBin int      `json:"median_bin"`
}
