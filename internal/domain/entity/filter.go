package entity

// All is the unfiltered sentinel for year, month and group selections.
const All = "ALL"

// FilterState holds the user's year/month drill-down selection.
// Invariant: Month is All, or a member of the months available for Year.
type FilterState struct {
	Year  string `json:"year"`
	Month string `json:"month"`
}

// NewFilterState returns the unfiltered state.
func NewFilterState() FilterState {
	return FilterState{Year: All, Month: All}
}

// SetYear changes the selected year and repairs the month selection:
// switching to All clears the month, and switching to a year that does
// not contain the current month resets the month to All.
func (f *FilterState) SetYear(year string, monthsByYear map[string][]string) {
	f.Year = year
	f.Revalidate(monthsByYear)
}

// SetMonth selects a month. Months outside the active year's month list
// are rejected and reset to All.
func (f *FilterState) SetMonth(month string, monthsByYear map[string][]string) {
	f.Month = month
	f.Revalidate(monthsByYear)
}

// Revalidate repairs the state after any change to the selection or to
// the underlying month index (e.g. a data reload).
func (f *FilterState) Revalidate(monthsByYear map[string][]string) {
	if f.Year == All {
		f.Month = All
		return
	}
	if f.Month == All {
		return
	}
	for _, m := range monthsByYear[f.Year] {
		if m == f.Month {
			return
		}
	}
	f.Month = All
}

// Scope returns the export-name scope for the current selection: the
// active month key, the active year, or "all".
func (f FilterState) Scope() string {
	if f.Month != All {
		return f.Month
	}
	if f.Year != All {
		return f.Year
	}
	return "all"
}

// GroupBy selects the secondary dimension for the duration views.
type GroupBy string

const (
	GroupByNone     GroupBy = "none"
	GroupByCategory GroupBy = "category"
	GroupByModule   GroupBy = "module"
)

// GroupConfig holds the duration-view grouping controls.
// Invariant: faceting requires GroupBy != none and Selection == All.
type GroupConfig struct {
	GroupBy      GroupBy `json:"group_by"`
	Selection    string  `json:"selection"`
	FacetEnabled bool    `json:"facet_enabled"`
}

// NewGroupConfig returns the ungrouped configuration.
func NewGroupConfig() GroupConfig {
	return GroupConfig{GroupBy: GroupByNone, Selection: All}
}

// SetGroupBy switches the grouping dimension. Turning grouping off
// clears both the value selection and the facet toggle.
func (g *GroupConfig) SetGroupBy(groupBy GroupBy) {
	g.GroupBy = groupBy
	if groupBy == GroupByNone {
		g.Selection = All
		g.FacetEnabled = false
	}
	g.Repair()
}

// SetSelection picks a single group value (or All). A concrete value
// disables faceting.
func (g *GroupConfig) SetSelection(selection string) {
	g.Selection = selection
	g.Repair()
}

// Repair forces FacetEnabled off whenever the facet precondition does
// not hold.
func (g *GroupConfig) Repair() {
	if g.GroupBy == GroupByNone {
		g.Selection = All
		g.FacetEnabled = false
		return
	}
	if g.Selection != All {
		g.FacetEnabled = false
	}
}

// FacetActive reports whether the histogram should be split into
// per-group series.
func (g GroupConfig) FacetActive() bool {
	return g.FacetEnabled && g.GroupBy != GroupByNone && g.Selection == All
}

// BinMode selects how the duration axis is partitioned.
type BinMode string

const (
	BinModeFixed BinMode = "fixed"
	BinModeAuto  BinMode = "auto"
)

// DisplayOptions are the presentation toggles for the duration views.
type DisplayOptions struct {
	Percent bool    `json:"percent"`
	BinMode BinMode `json:"bin_mode"`
	Focus30 bool    `json:"focus30"`
}

// NewDisplayOptions returns the defaults: raw counts, fixed ladder.
func NewDisplayOptions() DisplayOptions {
	return DisplayOptions{BinMode: BinModeFixed}
}
