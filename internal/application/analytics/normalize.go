// Package analytics is the aggregation engine: pure functions that turn
// the normalized dataset plus the current filter/group/display state
// into derived dashboard views. Nothing in this package performs I/O or
// holds state between calls.
package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// Sentinel labels substituted for blank categorical fields, matching the
// labels the source spreadsheets publish.
const (
	UncategorizedLabel = "未分類"
	UnassignedLabel    = "未指派"
)

// Ordered alias lists for the logical columns. The spreadsheets are
// exported from differently-maintained sheets, so headers vary between
// localized and plain-English forms; the first alias present wins.
var (
	dateAliases     = []string{"日期", "date", "Date", "day", "Day"}
	countAliases    = []string{"件數", "count", "Count", "數量", "筆數", "total"}
	categoryAliases = []string{"分類", "category", "Category", "類別", "問題分類"}
	moduleAliases   = []string{"模組", "module", "Module", "系統模組"}
	durationAliases = []string{"處理時長(分)", "處理時長", "resolve_minutes", "duration_minutes", "duration", "Duration"}
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"2006.01.02",
	"2006年1月2日",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"01/02/2006",
}

// lookupField resolves a logical field against the raw row using the
// ordered alias list. A key that exists wins even when its cell is
// empty, so alias precedence stays deterministic.
func lookupField(row entity.RawRow, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok {
			return v, true
		}
	}
	return "", false
}

// normalizeDate parses a raw date cell. On a full parse it returns the
// canonical "YYYY-MM-DD" form; otherwise it degrades to the first seven
// characters of the raw string as a month key. ok is false when not even
// a month key can be derived.
func normalizeDate(raw string) (date string, monthOnly bool, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), false, true
		}
	}
	if len(trimmed) >= 7 {
		return trimmed[:7], true, true
	}
	return "", false, false
}

// normalizeCount coerces a raw count cell. Missing, malformed, non-finite
// and negative values all default to zero.
func normalizeCount(raw string, def int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// normalizeMinutes coerces a raw duration cell. Unlike counts, absence is
// preserved as nil: zero minutes is a legitimate duration and must not be
// confused with a missing one.
func normalizeMinutes(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// normalizeLabel trims a categorical cell, falling back to the sentinel
// when the result is empty.
func normalizeLabel(raw, sentinel string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return sentinel
	}
	return trimmed
}

// NormalizeTrend turns raw daily-trend rows into the chronological
// TrendRow series. Rows without a derivable date are dropped; rows
// sharing a date are merged by summing their counts.
func NormalizeTrend(raws []entity.RawRow) []entity.TrendRow {
	byDate := make(map[string]int)
	for _, raw := range raws {
		rawDate, ok := lookupField(raw, dateAliases)
		if !ok {
			continue
		}
		date, _, ok := normalizeDate(rawDate)
		if !ok {
			continue
		}
		rawCount, _ := lookupField(raw, countAliases)
		byDate[date] += normalizeCount(rawCount, 0)
	}

	rows := make([]entity.TrendRow, 0, len(byDate))
	for date, count := range byDate {
		rows = append(rows, entity.TrendRow{Date: date, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// NormalizeCalls turns raw service-call rows into CallRecords. Rows
// without a derivable date are dropped; blank category/module cells get
// their sentinel labels; a missing count column means one call per row.
func NormalizeCalls(raws []entity.RawRow) []entity.CallRecord {
	records := make([]entity.CallRecord, 0, len(raws))
	for _, raw := range raws {
		rawDate, ok := lookupField(raw, dateAliases)
		if !ok {
			continue
		}
		date, _, ok := normalizeDate(rawDate)
		if !ok {
			continue
		}

		count := 1
		if rawCount, ok := lookupField(raw, countAliases); ok {
			count = normalizeCount(rawCount, 1)
		}

		rawCategory, _ := lookupField(raw, categoryAliases)
		rawModule, _ := lookupField(raw, moduleAliases)

		var minutes *float64
		if rawMinutes, ok := lookupField(raw, durationAliases); ok {
			minutes = normalizeMinutes(rawMinutes)
		}

		records = append(records, entity.CallRecord{
			Index:    len(records),
			Date:     date,
			Category: normalizeLabel(rawCategory, UncategorizedLabel),
			Module:   normalizeLabel(rawModule, UnassignedLabel),
			Count:    count,
			Minutes:  minutes,
		})
	}
	return records
}
