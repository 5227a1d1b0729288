package main

import (
	"log"
	"path/filepath"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/pkg/config"
	"github.com/tradeperf/analyzer/pkg/reporting"
	"github.com/tradeperf/analyzer/pkg/types"
)

// writeArtifacts persists the report next to the console output:
// report.json, equity.csv, trades.csv and report.xlsx under the run's
// output directory.
func writeArtifacts(reporter *reporting.DefaultReporter, report *analytics.Report, trades []types.Trade, cfg *config.Config) error {
	outDir := cfg.OutputDir
	if outDir == "" || outDir == config.DefaultOutputDir {
		outDir = reporter.GetDefaultOutputDir(cfg.DataFile)
	}
	if err := reporter.EnsureDirectoryExists(outDir); err != nil {
		return err
	}

	jsonPath := filepath.Join(outDir, "report.json")
	if err := reporter.WriteReportJSON(report, jsonPath); err != nil {
		return err
	}

	equityPath := filepath.Join(outDir, "equity.csv")
	if err := reporter.WriteEquityCSV(report, equityPath); err != nil {
		return err
	}

	tradesPath := filepath.Join(outDir, "trades.csv")
	if err := reporter.WriteTradesCSV(report, trades, tradesPath); err != nil {
		return err
	}

	xlsxPath := filepath.Join(outDir, "report.xlsx")
	if err := reporter.WriteReportXLSX(report, trades, xlsxPath); err != nil {
		return err
	}

	log.Printf("💾 Report written to %s", outDir)
	return nil
}
