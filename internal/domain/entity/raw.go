package entity

// RawRow is a single record of a fetched CSV resource, keyed by the
// original column header. Cell values are kept as raw text; typing
// happens during normalization.
type RawRow map[string]string
