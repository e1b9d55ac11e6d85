package analytics

import (
	"math"
	"sort"
	"strconv"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// FocusLimit is the upper edge of the duration axis in focus mode;
// everything above collapses into one overflow bin.
const FocusLimit = 30.0

// OthersLabel aggregates the groups outside the facet top five.
const OthersLabel = "其他"

const (
	facetGroupLimit = 5
	minAutoBins     = 4
	maxAutoBins     = 12
)

// Canonical duration ladder, in minutes. The final edge opens into an
// unbounded bin.
var fixedEdges = []float64{0, 3, 5, 10, 15, 20, 30, 45, 60, 90, 120, 180}

func formatMinutes(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func binLabel(min float64, max *float64) string {
	if max == nil {
		return formatMinutes(min) + "+ 分"
	}
	return formatMinutes(min) + "-" + formatMinutes(*max) + " 分"
}

func newBin(min float64, max *float64) entity.DurationBin {
	return entity.DurationBin{Min: min, Max: max, Label: binLabel(min, max)}
}

// FixedBins returns the canonical ladder. In focus mode the ladder is
// truncated at the focus limit and closed with one overflow bin.
func FixedBins(focus bool) []entity.DurationBin {
	var bins []entity.DurationBin
	for i := 0; i < len(fixedEdges); i++ {
		min := fixedEdges[i]
		if focus && min >= FocusLimit {
			break
		}
		if i == len(fixedEdges)-1 {
			bins = append(bins, newBin(min, nil))
			break
		}
		max := fixedEdges[i+1]
		bins = append(bins, newBin(min, &max))
	}
	if focus {
		limit := FocusLimit
		bins = append(bins, newBin(limit, nil))
	}
	return bins
}

// AutoBins computes equal-width bins over the observed value range. The
// bucket count is ceil(sqrt(n)) clamped to [4,12]; a single observed
// value degenerates to one bin of width max(1,value) centered on it. In
// focus mode only values up to the focus limit shape the bins and an
// overflow bin is appended.
func AutoBins(values []float64, focus bool) []entity.DurationBin {
	inRange := values
	if focus {
		inRange = nil
		for _, v := range values {
			if v <= FocusLimit {
				inRange = append(inRange, v)
			}
		}
	}

	var bins []entity.DurationBin
	if len(inRange) > 0 {
		lo, hi := inRange[0], inRange[0]
		for _, v := range inRange[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		if lo == hi {
			width := math.Max(1, lo)
			min := lo - width/2
			max := lo + width/2
			bins = append(bins, newBin(min, &max))
		} else {
			desired := int(math.Ceil(math.Sqrt(float64(len(inRange)))))
			if desired < minAutoBins {
				desired = minAutoBins
			}
			if desired > maxAutoBins {
				desired = maxAutoBins
			}
			width := (hi - lo) / float64(desired)
			for i := 0; i < desired; i++ {
				min := lo + float64(i)*width
				max := lo + float64(i+1)*width
				if i == desired-1 {
					max = hi
				}
				bins = append(bins, newBin(min, &max))
			}
		}
	}

	if focus {
		limit := FocusLimit
		bins = append(bins, newBin(limit, nil))
	}
	return bins
}

// binFor returns the index of the bin containing v, or -1. Closed bins
// are lower-exclusive and upper-inclusive, so a value sitting exactly on
// an edge belongs to the bin below it; the first bin also accepts its
// own lower edge so zero-minute durations stay in scope.
func binFor(bins []entity.DurationBin, v float64) int {
	for i, b := range bins {
		if v < b.Min || (v == b.Min && i > 0) {
			continue
		}
		if b.Max == nil || v <= *b.Max {
			return i
		}
	}
	return -1
}

// ComputeHistogram builds the duration-distribution view for the current
// filter, grouping and display options. Records without a finite
// duration are excluded from binning and surfaced via Missing; every
// binned record's index is retained per (bin, group) for drill-down.
func ComputeHistogram(calls []entity.CallRecord, filter entity.FilterState, group entity.GroupConfig, opts entity.DisplayOptions) entity.Histogram {
	inScope := FilterCalls(calls, filter, group)

	var finite []entity.CallRecord
	missing := 0
	for _, c := range inScope {
		if c.Minutes == nil {
			missing++
			continue
		}
		finite = append(finite, c)
	}

	var bins []entity.DurationBin
	if opts.BinMode == entity.BinModeAuto {
		values := make([]float64, len(finite))
		for i, c := range finite {
			values[i] = *c.Minutes
		}
		bins = AutoBins(values, opts.Focus30)
	} else {
		bins = FixedBins(opts.Focus30)
	}

	hist := entity.Histogram{
		Bins:      bins,
		Percent:   opts.Percent,
		Faceted:   group.FacetActive(),
		InScope:   len(finite),
		Missing:   missing,
		MeanBin:   -1,
		MedianBin: -1,
	}

	newSeries := func(name string) *entity.HistogramSeries {
		return &entity.HistogramSeries{
			Group:      name,
			Counts:     make([]int, len(bins)),
			RowIndexes: make([][]int, len(bins)),
		}
	}

	if hist.Faceted {
		top := topGroups(finite, group.GroupBy, facetGroupLimit)
		rank := make(map[string]int, len(top))
		series := make([]*entity.HistogramSeries, 0, len(top)+1)
		for i, name := range top {
			rank[name] = i
			series = append(series, newSeries(name))
		}
		var others *entity.HistogramSeries

		for _, c := range finite {
			bin := binFor(bins, *c.Minutes)
			if bin < 0 {
				continue
			}
			s, ok := rank[c.GroupValue(group.GroupBy)]
			var target *entity.HistogramSeries
			if ok {
				target = series[s]
			} else {
				if others == nil {
					others = newSeries(OthersLabel)
				}
				target = others
			}
			target.Counts[bin]++
			target.RowIndexes[bin] = append(target.RowIndexes[bin], c.Index)
		}
		if others != nil {
			series = append(series, others)
		}
		for _, s := range series {
			hist.Series = append(hist.Series, *s)
		}
	} else {
		s := newSeries(group.Selection)
		if group.GroupBy == entity.GroupByNone {
			s.Group = ""
		}
		for _, c := range finite {
			bin := binFor(bins, *c.Minutes)
			if bin < 0 {
				continue
			}
			s.Counts[bin]++
			s.RowIndexes[bin] = append(s.RowIndexes[bin], c.Index)
		}
		hist.Series = append(hist.Series, *s)
	}

	applyMetric(&hist)
	applySummaryStats(&hist, finite)
	return hist
}

// topGroups ranks the group values of the binnable records by volume and
// returns up to limit names. Ties keep first-encounter order.
func topGroups(records []entity.CallRecord, groupBy entity.GroupBy, limit int) []string {
	totals := make(map[string]int)
	var order []string
	for _, c := range records {
		name := c.GroupValue(groupBy)
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// applyMetric fills Values as raw counts or percentages. Facet mode
// normalizes each group against its own total; otherwise the overall
// in-scope total is the denominator.
func applyMetric(hist *entity.Histogram) {
	for i := range hist.Series {
		s := &hist.Series[i]
		s.Values = make([]float64, len(s.Counts))

		denom := hist.InScope
		if hist.Faceted {
			denom = 0
			for _, c := range s.Counts {
				denom += c
			}
		}

		for j, c := range s.Counts {
			if !hist.Percent {
				s.Values[j] = float64(c)
				continue
			}
			if denom > 0 {
				s.Values[j] = round1(float64(c) / float64(denom) * 100)
			}
		}
	}
}

// applySummaryStats computes mean and median of the binnable durations
// and maps each onto the bin containing it for reference annotation.
func applySummaryStats(hist *entity.Histogram, finite []entity.CallRecord) {
	if len(finite) == 0 {
		return
	}

	values := make([]float64, len(finite))
	sum := 0.0
	for i, c := range finite {
		values[i] = *c.Minutes
		sum += *c.Minutes
	}
	sort.Float64s(values)

	mean := round2(sum / float64(len(values)))
	var median float64
	mid := len(values) / 2
	if len(values)%2 == 0 {
		median = round2((values[mid-1] + values[mid]) / 2)
	} else {
		median = values[mid]
	}

	hist.Mean = &mean
	hist.Median = &median
	hist.MeanBin = binFor(hist.Bins, mean)
	hist.MedianBin = binFor(hist.Bins, median)
}
