package reporting

import "github.com/tradeperf/analyzer/internal/analytics"

// Package reporting renders a computed performance report. It owns all
// formatting: the analytics core only ever hands over typed values and
// availability markers.

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputReport(report *analytics.Report)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteEquityCSV(report *analytics.Report, path string) error
	WriteTradesCSV(report *analytics.Report, trades TradeRows, path string) error
	WriteReportJSON(report *analytics.Report, path string) error
	WriteReportXLSX(report *analytics.Report, trades TradeRows, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(dataFile string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}
