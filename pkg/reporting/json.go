package reporting

import (
	"encoding/json"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/pkg/types"
)

// DefaultJSONReporter implements JSON output functionality
type DefaultJSONReporter struct{}

// NewDefaultJSONReporter creates a new JSON reporter
func NewDefaultJSONReporter() *DefaultJSONReporter {
	return &DefaultJSONReporter{}
}

// keySum preserves the aggregate's first-seen key order, which a plain
// JSON object would lose.
type keySum struct {
	Key    string  `json:"key"`
	Profit float64 `json:"profit"`
}

type rankedJSON struct {
	Key    string  `json:"key"`
	Profit float64 `json:"profit"`
}

type insightsJSON struct {
	BestSymbol      rankedJSON `json:"best_symbol"`
	WorstSymbol     rankedJSON `json:"worst_symbol"`
	BestSession     rankedJSON `json:"best_session"`
	WorstSession    rankedJSON `json:"worst_session"`
	OutOfSessionPnL float64    `json:"out_of_session_pnl"`
	AvoidedLoss     types.Stat `json:"avoided_loss"`
}

type reportJSON struct {
	InitialBalance    float64             `json:"initial_balance"`
	FinalBalance      float64             `json:"final_balance"`
	TotalTrades       int                 `json:"total_trades"`
	TotalPnL          float64             `json:"total_pnl"`
	GrowthPercent     float64             `json:"growth_percent"`
	WinRate           float64             `json:"win_rate"`
	AverageWin        types.Stat          `json:"average_win"`
	AverageLoss       types.Stat          `json:"average_loss"`
	RiskReward        types.Stat          `json:"risk_reward"`
	MaxDrawdown       float64             `json:"max_drawdown"`
	AvgDurationMin    float64             `json:"avg_duration_min"`
	MostTradedSymbol  string              `json:"most_traded_symbol"`
	MostCommonWeekday string              `json:"most_common_weekday"`
	BySymbol          []keySum            `json:"by_symbol"`
	BySession         []keySum            `json:"by_session"`
	Insights          insightsJSON        `json:"insights"`
	EquityCurve       []types.EquityPoint `json:"equity_curve"`
	SmoothedAvailable bool                `json:"smoothed_available"`
}

// WriteReportJSON writes the serialized report. The smoothed curve is
// elided (10k display samples have no place in the JSON artifact); its
// availability flag is kept so consumers can branch on it.
func (r *DefaultJSONReporter) WriteReportJSON(report *analytics.Report, path string) error {
	view := reportJSON{
		InitialBalance:    report.InitialBalance,
		FinalBalance:      report.FinalBalance,
		TotalTrades:       report.TotalTrades,
		TotalPnL:          report.TotalPnL,
		GrowthPercent:     report.GrowthPercent,
		WinRate:           report.WinRate,
		AverageWin:        report.AverageWin,
		AverageLoss:       report.AverageLoss,
		RiskReward:        report.RiskReward,
		MaxDrawdown:       report.MaxDrawdown,
		AvgDurationMin:    report.AvgDurationMin,
		MostTradedSymbol:  report.MostTradedSymbol,
		MostCommonWeekday: report.MostCommonWeekday.String(),
		BySymbol:          aggregateView(report.BySymbol),
		BySession:         aggregateView(report.BySession),
		Insights: insightsJSON{
			BestSymbol:      rankedJSON(report.Insights.BestSymbol),
			WorstSymbol:     rankedJSON(report.Insights.WorstSymbol),
			BestSession:     rankedJSON(report.Insights.BestSession),
			WorstSession:    rankedJSON(report.Insights.WorstSession),
			OutOfSessionPnL: report.Insights.OutOfSessionPnL,
			AvoidedLoss:     report.Insights.AvoidedLoss,
		},
		EquityCurve:       report.EquityCurve,
		SmoothedAvailable: report.SmoothedCurve != nil,
	}

	payload, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}

	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(payload)
	return err
}

func aggregateView(agg *analytics.Aggregate) []keySum {
	out := make([]keySum, 0, agg.Len())
	for _, key := range agg.Keys() {
		sum, _ := agg.Sum(key)
		out = append(out, keySum{Key: key, Profit: sum})
	}
	return out
}
