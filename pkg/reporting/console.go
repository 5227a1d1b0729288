package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/pkg/types"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputReport prints the full performance report to stdout.
func (r *DefaultConsoleReporter) OutputReport(report *analytics.Report) {
	r.printKeyMetrics(report)
	r.printSessionPerformance(report)
	r.printSymbolPerformance(report)
	r.printInsights(report)
}

func (r *DefaultConsoleReporter) printKeyMetrics(report *analytics.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("KEY METRICS")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"💰 Initial Balance", fmt.Sprintf("%.2f", report.InitialBalance)},
		{"💰 Final Balance", fmt.Sprintf("%.2f", report.FinalBalance)},
		{"📈 Total P&L", fmt.Sprintf("%+.2f", report.TotalPnL)},
		{"📈 Account Growth", fmt.Sprintf("%+.2f%%", report.GrowthPercent)},
		{"🔄 Trades", fmt.Sprintf("%d", report.TotalTrades)},
		{"✅ Win Rate", fmt.Sprintf("%.2f%%", report.WinRate)},
		{"📊 Average RRR", formatStat(report.RiskReward, "%.2f")},
		{"📉 Max Drawdown", fmt.Sprintf("%.2f", report.MaxDrawdown)},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"💵 Average Win", formatStat(report.AverageWin, "%.2f")},
		{"💸 Average Loss", formatStat(report.AverageLoss, "%.2f")},
		{"⏱️  Avg Duration", fmt.Sprintf("%.2f mins", report.AvgDurationMin)},
		{"🏆 Most Traded", report.MostTradedSymbol},
		{"📅 Most Traded Day", report.MostCommonWeekday.String()},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 20, Align: text.AlignLeft},
		{Number: 2, WidthMin: 15, WidthMax: 25, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

func (r *DefaultConsoleReporter) printSessionPerformance(report *analytics.Report) {
	printAggregate("SESSION PERFORMANCE", "Session", report.BySession)
}

func (r *DefaultConsoleReporter) printSymbolPerformance(report *analytics.Report) {
	printAggregate("NET PROFIT PER SYMBOL", "Symbol", report.BySymbol)
}

func printAggregate(title, keyHeader string, agg *analytics.Aggregate) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{keyHeader, "Net Profit"})

	for _, key := range agg.Keys() {
		sum, _ := agg.Sum(key)
		t.AppendRow(table.Row{key, fmt.Sprintf("%+.2f", sum)})
	}
	t.AppendFooter(table.Row{"Total", fmt.Sprintf("%+.2f", agg.Total())})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

func (r *DefaultConsoleReporter) printInsights(report *analytics.Report) {
	ins := report.Insights

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("INSIGHTS AND ADVICE")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🥇 Best Pair", fmt.Sprintf("%s (%+.2f)", ins.BestSymbol.Key, ins.BestSymbol.Profit)},
		{"🥀 Worst Pair", fmt.Sprintf("%s (%+.2f)", ins.WorstSymbol.Key, ins.WorstSymbol.Profit)},
		{"🥇 Best Session", fmt.Sprintf("%s (%+.2f)", ins.BestSession.Key, ins.BestSession.Profit)},
		{"🥀 Worst Session", fmt.Sprintf("%s (%+.2f)", ins.WorstSession.Key, ins.WorstSession.Profit)},
		{"🌙 Off-Session P&L", fmt.Sprintf("%+.2f", ins.OutOfSessionPnL)},
	})

	if ins.AvoidedLoss.Valid {
		t.AppendSeparator()
		t.AppendRow(table.Row{
			"🚫 Loss Avoidable",
			fmt.Sprintf("%.2f by skipping out-of-session trades", ins.AvoidedLoss.Value),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 20, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// formatStat renders an unavailable statistic as n/a; reporters never
// substitute a number for it.
func formatStat(s types.Stat, format string) string {
	if !s.Valid {
		return "n/a"
	}
	return fmt.Sprintf(format, s.Value)
}

// Package-level convenience function
func OutputConsole(report *analytics.Report) {
	NewDefaultConsoleReporter().OutputReport(report)
}
