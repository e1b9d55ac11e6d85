package types

import "errors"

var (
	ErrNoTrendURL   = errors.New("no trend dataset URL configured; set sources.trend_url or pass --trend-url")
	ErrEmptyDataset = errors.New("the trend dataset contained no usable rows")
)
