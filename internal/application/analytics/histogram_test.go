package analytics

import (
	"testing"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

func minutes(v float64) *float64 { return &v }

func callsWithDurations(durations ...*float64) []entity.CallRecord {
	calls := make([]entity.CallRecord, len(durations))
	for i, d := range durations {
		calls[i] = entity.CallRecord{
			Index:    i,
			Date:     "2024-06-03",
			Category: "帳號",
			Module:   "登入",
			Count:    1,
			Minutes:  d,
		}
	}
	return calls
}

func unfiltered() entity.FilterState { return entity.NewFilterState() }

func TestFixedBins(t *testing.T) {
	bins := FixedBins(false)
	if len(bins) != 12 {
		t.Fatalf("got %d bins, want 12", len(bins))
	}
	if bins[0].Label != "0-3 分" {
		t.Errorf("first label = %q", bins[0].Label)
	}
	last := bins[len(bins)-1]
	if last.Max != nil || last.Label != "180+ 分" {
		t.Errorf("last bin = %+v", last)
	}
}

func TestFixedBinsFocus(t *testing.T) {
	bins := FixedBins(true)
	if len(bins) != 7 {
		t.Fatalf("got %d bins, want 7", len(bins))
	}
	last := bins[len(bins)-1]
	if last.Min != FocusLimit || last.Max != nil || last.Label != "30+ 分" {
		t.Errorf("overflow bin = %+v", last)
	}
}

func TestComputeHistogramFixed(t *testing.T) {
	calls := callsWithDurations(minutes(5), minutes(12), minutes(45), minutes(200), nil)

	h := ComputeHistogram(calls, unfiltered(), entity.NewGroupConfig(), entity.NewDisplayOptions())

	if h.InScope != 4 || h.Missing != 1 {
		t.Fatalf("in scope %d missing %d, want 4/1", h.InScope, h.Missing)
	}
	if len(h.Series) != 1 || h.Series[0].Group != "" {
		t.Fatalf("series = %+v", h.Series)
	}

	counts := h.Series[0].Counts
	wantBins := map[string]int{
		"3-5 分":   1,
		"10-15 分": 1,
		"30-45 分": 1,
		"180+ 分":  1,
	}
	total := 0
	for j, bin := range h.Bins {
		total += counts[j]
		if want, ok := wantBins[bin.Label]; ok && counts[j] != want {
			t.Errorf("bin %s = %d, want %d", bin.Label, counts[j], want)
		}
	}
	if total != h.InScope {
		t.Errorf("bin counts sum to %d, want in-scope total %d", total, h.InScope)
	}

	if h.Mean == nil || *h.Mean != 65.5 {
		t.Errorf("mean = %v, want 65.5", h.Mean)
	}
	if h.Median == nil || *h.Median != 28.5 {
		t.Errorf("median = %v, want 28.5", h.Median)
	}
	if h.Bins[h.MeanBin].Label != "60-90 分" {
		t.Errorf("mean bin = %s", h.Bins[h.MeanBin].Label)
	}
	if h.Bins[h.MedianBin].Label != "20-30 分" {
		t.Errorf("median bin = %s", h.Bins[h.MedianBin].Label)
	}
}

func TestComputeHistogramFocusOverflow(t *testing.T) {
	calls := callsWithDurations(minutes(5), minutes(12), minutes(45), minutes(200))

	opts := entity.NewDisplayOptions()
	opts.Focus30 = true
	h := ComputeHistogram(calls, unfiltered(), entity.NewGroupConfig(), opts)

	counts := h.Series[0].Counts
	overflow := counts[len(counts)-1]
	if overflow != 2 {
		t.Errorf("overflow bin = %d, want 2 (45 and 200)", overflow)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != h.InScope {
		t.Errorf("focus mode must keep every row binned, got %d of %d", total, h.InScope)
	}
}

func TestComputeHistogramFocusBinMap(t *testing.T) {
	calls := callsWithDurations(minutes(5), minutes(12), minutes(45), minutes(200))

	opts := entity.NewDisplayOptions()
	opts.Focus30 = true
	h := ComputeHistogram(calls, unfiltered(), entity.NewGroupConfig(), opts)

	want := map[string]int{
		"3-5 分":   1,
		"10-15 分": 1,
		"30+ 分":   2,
	}
	for j, bin := range h.Bins {
		if got := h.Series[0].Counts[j]; got != want[bin.Label] {
			t.Errorf("bin %s = %d, want %d", bin.Label, got, want[bin.Label])
		}
	}
}

func TestBinForEdges(t *testing.T) {
	bins := FixedBins(true)

	tests := []struct {
		value float64
		label string
	}{
		{0, "0-3 分"},   // the first bin keeps its lower edge
		{3, "0-3 分"},   // an edge value belongs to the bin below
		{5, "3-5 分"},
		{30, "20-30 分"}, // the focus limit itself is not overflow
		{30.5, "30+ 分"},
	}
	for _, tt := range tests {
		got := binFor(bins, tt.value)
		if got < 0 {
			t.Errorf("binFor(%v) = -1", tt.value)
			continue
		}
		if bins[got].Label != tt.label {
			t.Errorf("binFor(%v) = %s, want %s", tt.value, bins[got].Label, tt.label)
		}
	}

	if binFor(bins, -1) != -1 {
		t.Error("negative values must not bin")
	}
}

func TestComputeHistogramPercent(t *testing.T) {
	calls := callsWithDurations(minutes(1), minutes(2), minutes(7), minutes(8))

	opts := entity.NewDisplayOptions()
	opts.Percent = true
	h := ComputeHistogram(calls, unfiltered(), entity.NewGroupConfig(), opts)

	values := h.Series[0].Values
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if sum != 100 {
		t.Errorf("percent values sum to %v, want 100", sum)
	}
	if values[0] != 50 {
		t.Errorf("0-3 bin = %v%%, want 50", values[0])
	}
}

func TestComputeHistogramDrilldown(t *testing.T) {
	calls := callsWithDurations(minutes(6), minutes(7), minutes(45))

	h := ComputeHistogram(calls, unfiltered(), entity.NewGroupConfig(), entity.NewDisplayOptions())

	s := h.Series[0]
	for j, bin := range h.Bins {
		if len(s.RowIndexes[j]) != s.Counts[j] {
			t.Errorf("bin %s: %d indexes for %d rows", bin.Label, len(s.RowIndexes[j]), s.Counts[j])
		}
	}

	// 6 and 7 land in 5-10, 45 in 30-45.
	var fiveToTen []int
	for j, bin := range h.Bins {
		if bin.Label == "5-10 分" {
			fiveToTen = s.RowIndexes[j]
		}
	}
	if len(fiveToTen) != 2 || fiveToTen[0] != 0 || fiveToTen[1] != 1 {
		t.Errorf("5-10 indexes = %v, want [0 1]", fiveToTen)
	}
}

func TestComputeHistogramFacet(t *testing.T) {
	calls := []entity.CallRecord{
		{Index: 0, Date: "2024-06-03", Category: "A", Count: 1, Minutes: minutes(5)},
		{Index: 1, Date: "2024-06-03", Category: "A", Count: 1, Minutes: minutes(6)},
		{Index: 2, Date: "2024-06-03", Category: "A", Count: 1, Minutes: minutes(7)},
		{Index: 3, Date: "2024-06-03", Category: "B", Count: 1, Minutes: minutes(12)},
		{Index: 4, Date: "2024-06-03", Category: "B", Count: 1, Minutes: minutes(13)},
		{Index: 5, Date: "2024-06-03", Category: "C", Count: 1, Minutes: minutes(50)},
	}

	group := entity.NewGroupConfig()
	group.SetGroupBy(entity.GroupByCategory)
	group.FacetEnabled = true

	h := ComputeHistogram(calls, unfiltered(), group, entity.NewDisplayOptions())

	if !h.Faceted {
		t.Fatal("expected a faceted histogram")
	}
	if len(h.Series) != 3 {
		t.Fatalf("got %d series, want 3", len(h.Series))
	}
	if h.Series[0].Group != "A" || h.Series[1].Group != "B" || h.Series[2].Group != "C" {
		t.Errorf("series order = %s,%s,%s", h.Series[0].Group, h.Series[1].Group, h.Series[2].Group)
	}

	total := 0
	for _, s := range h.Series {
		for _, c := range s.Counts {
			total += c
		}
	}
	if total != h.InScope {
		t.Errorf("faceted counts sum to %d, want %d", total, h.InScope)
	}
}

func TestComputeHistogramFacetOthers(t *testing.T) {
	var calls []entity.CallRecord
	for i, cat := range []string{"A", "A", "B", "B", "C", "D", "E", "F", "G"} {
		calls = append(calls, entity.CallRecord{
			Index: i, Date: "2024-06-03", Category: cat, Count: 1, Minutes: minutes(10),
		})
	}

	group := entity.NewGroupConfig()
	group.SetGroupBy(entity.GroupByCategory)
	group.FacetEnabled = true

	h := ComputeHistogram(calls, unfiltered(), group, entity.NewDisplayOptions())

	if len(h.Series) != 6 {
		t.Fatalf("got %d series, want top five plus %s", len(h.Series), OthersLabel)
	}
	last := h.Series[len(h.Series)-1]
	if last.Group != OthersLabel {
		t.Errorf("last series = %q, want %q", last.Group, OthersLabel)
	}

	othersTotal := 0
	for _, c := range last.Counts {
		othersTotal += c
	}
	if othersTotal != 2 {
		t.Errorf("others total = %d, want 2 (F and G)", othersTotal)
	}
}

func TestComputeHistogramSelection(t *testing.T) {
	calls := []entity.CallRecord{
		{Index: 0, Date: "2024-06-03", Category: "A", Count: 1, Minutes: minutes(5)},
		{Index: 1, Date: "2024-06-03", Category: "B", Count: 1, Minutes: minutes(6)},
	}

	group := entity.NewGroupConfig()
	group.SetGroupBy(entity.GroupByCategory)
	group.SetSelection("A")

	h := ComputeHistogram(calls, unfiltered(), group, entity.NewDisplayOptions())

	if h.Faceted {
		t.Error("a concrete selection must not facet")
	}
	if h.InScope != 1 {
		t.Errorf("in scope = %d, want 1", h.InScope)
	}
	if len(h.Series) != 1 || h.Series[0].Group != "A" {
		t.Errorf("series = %+v", h.Series)
	}
}

func TestAutoBins(t *testing.T) {
	t.Run("single value degenerates", func(t *testing.T) {
		bins := AutoBins([]float64{10, 10, 10}, false)
		if len(bins) != 1 {
			t.Fatalf("got %d bins, want 1", len(bins))
		}
		if bins[0].Min != 5 || bins[0].Max == nil || *bins[0].Max != 15 {
			t.Errorf("bin = %+v", bins[0])
		}
	})

	t.Run("range splits into clamped bucket count", func(t *testing.T) {
		bins := AutoBins([]float64{0, 4, 8, 16}, false)
		if len(bins) != minAutoBins {
			t.Fatalf("got %d bins, want %d", len(bins), minAutoBins)
		}
		if bins[0].Min != 0 {
			t.Errorf("first bin min = %v", bins[0].Min)
		}
		if *bins[len(bins)-1].Max != 16 {
			t.Errorf("last bin max = %v", *bins[len(bins)-1].Max)
		}
	})

	t.Run("maximum lands in the last bin", func(t *testing.T) {
		bins := AutoBins([]float64{0, 4, 8, 16}, false)
		if got := binFor(bins, 16); got != len(bins)-1 {
			t.Errorf("binFor(16) = %d, want %d", got, len(bins)-1)
		}
	})

	t.Run("focus appends an overflow bin", func(t *testing.T) {
		bins := AutoBins([]float64{5, 10, 20, 100}, true)
		last := bins[len(bins)-1]
		if last.Min != FocusLimit || last.Max != nil {
			t.Errorf("overflow bin = %+v", last)
		}
	})
}

func TestComputeHistogramAutoConservation(t *testing.T) {
	calls := callsWithDurations(
		minutes(1), minutes(3), minutes(8), minutes(14),
		minutes(22), minutes(37), minutes(90), minutes(181),
	)

	opts := entity.NewDisplayOptions()
	opts.BinMode = entity.BinModeAuto
	h := ComputeHistogram(calls, unfiltered(), entity.NewGroupConfig(), opts)

	total := 0
	for _, c := range h.Series[0].Counts {
		total += c
	}
	if total != h.InScope {
		t.Errorf("auto-binned counts sum to %d, want %d", total, h.InScope)
	}
}

func TestComputeHistogramEmpty(t *testing.T) {
	h := ComputeHistogram(nil, unfiltered(), entity.NewGroupConfig(), entity.NewDisplayOptions())
	if h.InScope != 0 || h.Missing != 0 {
		t.Errorf("empty input: in scope %d missing %d", h.InScope, h.Missing)
	}
	if h.Mean != nil || h.Median != nil {
		t.Error("empty input must not carry summary stats")
	}
	if h.MeanBin != -1 || h.MedianBin != -1 {
		t.Errorf("mean/median bins = %d/%d, want -1/-1", h.MeanBin, h.MedianBin)
	}
}
