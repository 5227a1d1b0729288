package main

import (
	"flag"
	"fmt"
)

// AnalyzerFlags holds all command line flags for the analyzer
type AnalyzerFlags struct {
	// Configuration
	ConfigFile *string
	DataFile   *string
	TimeLayout *string

	// Account settings
	InitialBalance *float64

	// Analysis window
	From *string
	To   *string

	// Output options
	OutputDir     *string
	ConsoleOnly   *bool
	SmoothSamples *int
	EnvFile       *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewAnalyzerFlags creates and registers all command line flags
func NewAnalyzerFlags() *AnalyzerFlags {
	return &AnalyzerFlags{
		ConfigFile: flag.String("config", "", "Path to JSON configuration file"),
		DataFile:   flag.String("data", "", "Path to the ledger CSV export"),
		TimeLayout: flag.String("time-layout", "", "Timestamp layout of the CSV export (default dd/mm/yyyy hh:mm)"),

		InitialBalance: flag.Float64("balance", 0, "Starting account balance (default 25000)"),

		From: flag.String("from", "", "Analysis window start (YYYY-MM-DD, inclusive)"),
		To:   flag.String("to", "", "Analysis window end (YYYY-MM-DD, inclusive)"),

		OutputDir:     flag.String("output", "", "Output directory (default derived from the data file)"),
		ConsoleOnly:   flag.Bool("console-only", false, "Print the report without writing files"),
		SmoothSamples: flag.Int("smooth-samples", 0, "Resolution of the smoothed balance curve (default 10000)"),
		EnvFile:       flag.String("env", ".env", "Environment file"),

		ShowVersion: flag.Bool("version", false, "Show version"),
		ShowHelp:    flag.Bool("help", false, "Show help"),
	}
}

// PrintUsageExamples prints common invocations
func PrintUsageExamples() {
	fmt.Println("EXAMPLES:")
	fmt.Println("  analyzer -data trades.csv")
	fmt.Println("  analyzer -data trades.csv -balance 25000 -from 2023-09-01 -to 2024-03-31")
	fmt.Println("  analyzer -config run.json -console-only")
	fmt.Println()
}
