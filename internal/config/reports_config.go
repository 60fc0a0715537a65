package config

type ReportsConfig interface {
	// GetReportsAPIBase is the external report service's base URL; ""
	// disables the report endpoint
	GetReportsAPIBase() string
	GetReportsAPIKey() string
}

type Reports struct{}

var _ ReportsConfig = Reports{}

func (Reports) GetReportsAPIBase() string {
	return GetEnv("REPORTS_API_BASE", "")
}

func (Reports) GetReportsAPIKey() string {
	return GetEnv("REPORTS_API_KEY", "")
}
