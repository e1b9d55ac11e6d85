package types

// DataSources holds the fetch URLs of the published CSV exports. The
// calls dataset is optional; without it the duration, stacked and
// ranking views are empty.
type DataSources struct {
	TrendURL string `json:"trend_url" yaml:"trend_url" toml:"trend_url"`
	CallsURL string `json:"calls_url" yaml:"calls_url" toml:"calls_url"`
}

// Config represents the application configuration that can be loaded
// from a TOML, YAML or JSON file. Flags override config values.
type Config struct {
	Sources    DataSources `json:"sources" yaml:"sources" toml:"sources"`
	Year       string      `json:"year" yaml:"year" toml:"year"`
	Month      string      `json:"month" yaml:"month" toml:"month"`
	GroupBy    string      `json:"group_by" yaml:"group_by" toml:"group_by"`
	Selection  string      `json:"selection" yaml:"selection" toml:"selection"`
	Facet      bool        `json:"facet" yaml:"facet" toml:"facet"`
	Percent    bool        `json:"percent" yaml:"percent" toml:"percent"`
	BinMode    string      `json:"bin_mode" yaml:"bin_mode" toml:"bin_mode"`
	Focus30    bool        `json:"focus30" yaml:"focus30" toml:"focus30"`
	ReportName string      `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string    `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string      `json:"dir" yaml:"dir" toml:"dir"`
}
