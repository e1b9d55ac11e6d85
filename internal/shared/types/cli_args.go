package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	TrendURL    string
	CallsURL    string
	Year        string
	Month       string
	GroupBy     string
	Selection   string
	Facet       bool
	Percent     bool
	BinMode     string
	Focus30     bool
	Interactive bool
	ReportName  string
	ReportType  []string
	Dir         string
}
