package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/internal/session"
	"github.com/tradeperf/analyzer/pkg/config"
	"github.com/tradeperf/analyzer/pkg/data"
	"github.com/tradeperf/analyzer/pkg/reporting"
)

const (
	AppName    = "Performance Analyzer"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewAnalyzerFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}
	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	cfg, err := loadConfiguration(flags)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := runAnalysis(cfg); err != nil {
		log.Fatalf("❌ Analysis error: %v", err)
	}
}

// runAnalysis is the whole pipeline: load, window, classify, compute,
// report. Each stage consumes the previous stage's result and nothing
// flows backwards.
func runAnalysis(cfg *config.Config) error {
	provider := newProvider(cfg)
	ledger, err := provider.LoadLedger(cfg.DataFile)
	if err != nil {
		return err
	}
	log.Printf("📥 Loaded %d trades from %s", len(ledger), cfg.DataFile)

	from, to, err := cfg.Window()
	if err != nil {
		return err
	}
	if !from.IsZero() || !to.IsZero() {
		filter := data.NewDefaultTradeFilter()
		ledger = filter.FilterByDateRange(ledger, from, to)
		log.Printf("🗓️  %d trades inside the analysis window", len(ledger))
	}

	classified := session.Apply(ledger)

	engine := analytics.NewEngineWithSamples(cfg.InitialBalance, cfg.SmoothSamples)
	report, err := engine.Compute(classified)
	if err != nil {
		return err
	}

	reporter := reporting.NewReporter()
	reporter.OutputReport(report)

	if cfg.ConsoleOnly {
		return nil
	}
	return writeArtifacts(reporter, report, classified, cfg)
}

func newProvider(cfg *config.Config) data.TradeProvider {
	if cfg.TimeLayout != "" {
		return data.NewCSVProviderWithLayout(cfg.TimeLayout)
	}
	return data.NewCSVProvider()
}

// loadConfiguration merges defaults, config file, environment and flags
// (highest precedence last).
func loadConfiguration(flags *AnalyzerFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(*flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ANALYZER_DATA_FILE"); v != "" && cfg.DataFile == "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("ANALYZER_INITIAL_BALANCE"); v != "" {
		balance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYZER_INITIAL_BALANCE %q: %w", v, err)
		}
		cfg.InitialBalance = balance
	}

	if *flags.DataFile != "" {
		cfg.DataFile = *flags.DataFile
	}
	if *flags.TimeLayout != "" {
		cfg.TimeLayout = *flags.TimeLayout
	}
	if *flags.InitialBalance > 0 {
		cfg.InitialBalance = *flags.InitialBalance
	}
	if *flags.From != "" {
		cfg.From = *flags.From
	}
	if *flags.To != "" {
		cfg.To = *flags.To
	}
	if *flags.OutputDir != "" {
		cfg.OutputDir = *flags.OutputDir
	}
	if *flags.SmoothSamples > 0 {
		cfg.SmoothSamples = *flags.SmoothSamples
	}
	if *flags.ConsoleOnly {
		cfg.ConsoleOnly = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printHeader() {
	fmt.Printf("📊 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Trading Account Performance Analysis\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  analyzer [OPTIONS]\n\n")
	PrintUsageExamples()
	flag.PrintDefaults()
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
		log.Println("💡 Using environment variables and flags only")
	}
}
