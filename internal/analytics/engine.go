package analytics

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	apperrors "github.com/tradeperf/analyzer/internal/errors"
	"github.com/tradeperf/analyzer/pkg/types"
)

// Engine derives the full performance report from a classified ledger.
// It holds only run parameters; every Compute call is independent and
// deterministic, so computing the same ledger twice yields an
// identical report.
type Engine struct {
	initialBalance float64
	smoothSamples  int
}

// NewEngine creates an engine for the given starting account balance.
func NewEngine(initialBalance float64) *Engine {
	return &Engine{
		initialBalance: initialBalance,
		smoothSamples:  DefaultSmoothSamples,
	}
}

// NewEngineWithSamples overrides the smoothed-curve resolution.
func NewEngineWithSamples(initialBalance float64, smoothSamples int) *Engine {
	e := NewEngine(initialBalance)
	e.smoothSamples = smoothSamples
	return e
}

// Compute runs the single forward pass over the ledger and assembles
// the report. The ledger must be non-empty, sorted ascending by close
// time, and already session-classified; violations are fatal and no
// partial report is returned.
func (e *Engine) Compute(ledger []types.Trade) (*Report, error) {
	if err := validateLedger(ledger); err != nil {
		return nil, err
	}

	r := &Report{
		InitialBalance: e.initialBalance,
		TotalTrades:    len(ledger),
		BySymbol:       NewAggregate(),
		BySession:      NewAggregate(),
	}

	// Cumulative balance in ledger order; the intermediate values feed
	// the drawdown path, so the order is load-bearing.
	r.EquityCurve = make([]types.EquityPoint, len(ledger))
	cumulative := 0.0
	minBalance := e.initialBalance
	var wins, losses []float64
	durations := make([]float64, len(ledger))
	symbols := make([]string, len(ledger))
	weekdays := make([]time.Weekday, len(ledger))

	for i, t := range ledger {
		cumulative += t.Profit
		balance := e.initialBalance + cumulative
		r.EquityCurve[i] = types.EquityPoint{CumulativeProfit: cumulative, Balance: balance}
		if balance < minBalance {
			minBalance = balance
		}

		r.BySymbol.Add(t.Symbol, t.Profit)
		r.BySession.Add(string(t.Session), t.Profit)

		switch {
		case t.Profit > 0:
			wins = append(wins, t.Profit)
		case t.Profit < 0:
			losses = append(losses, t.Profit)
		}

		durations[i] = t.DurationMin
		symbols[i] = t.Symbol
		weekdays[i] = t.CloseTime.Weekday()
	}

	r.TotalPnL = cumulative
	r.FinalBalance = e.initialBalance + cumulative
	r.GrowthPercent = (r.FinalBalance - e.initialBalance) / e.initialBalance * 100
	r.MaxDrawdown = math.Min(0, minBalance-e.initialBalance)

	r.WinRate = float64(len(wins)) / float64(len(ledger)) * 100
	r.AverageWin = meanStat(wins)
	r.AverageLoss = meanStat(losses)
	r.RiskReward = riskReward(r.AverageWin, r.AverageLoss)

	r.AvgDurationMin = stat.Mean(durations, nil)
	r.MostTradedSymbol = modeValue(symbols)
	r.MostCommonWeekday = modeValue(weekdays)

	balances := make([]float64, len(r.EquityCurve))
	for i, p := range r.EquityCurve {
		balances[i] = p.Balance
	}
	if curve, err := SmoothBalances(balances, e.smoothSamples); err == nil {
		r.SmoothedCurve = curve
	}
	// a short ledger leaves SmoothedCurve nil; the report stays valid

	r.Insights = BuildInsights(r.BySymbol, r.BySession)
	return r, nil
}

// validateLedger checks the invariants the loader contract promises.
// The engine rejects rather than repairs: re-sorting here would change
// the drawdown path silently.
func validateLedger(ledger []types.Trade) error {
	if len(ledger) == 0 {
		return apperrors.New(apperrors.ErrorCategoryIngestion,
			"analytics", "validate ledger", "ledger is empty")
	}
	for i, t := range ledger {
		if t.Symbol == "" {
			return apperrors.Wrap(fmt.Errorf("trade %d has no symbol", i),
				apperrors.ErrorCategoryValidation, "analytics", "validate ledger")
		}
		if t.CloseTime.Before(t.OpenTime) {
			return apperrors.Wrap(fmt.Errorf("trade %d closes before it opens", i),
				apperrors.ErrorCategoryValidation, "analytics", "validate ledger")
		}
		if t.Session == "" {
			return apperrors.Wrap(fmt.Errorf("trade %d has no session label", i),
				apperrors.ErrorCategoryValidation, "analytics", "validate ledger")
		}
		if i > 0 && t.CloseTime.Before(ledger[i-1].CloseTime) {
			return apperrors.Wrap(fmt.Errorf("trade %d out of close-time order", i),
				apperrors.ErrorCategoryValidation, "analytics", "validate ledger")
		}
	}
	return nil
}

// meanStat is the mean over a possibly empty subset; the empty subset
// is reported unavailable instead of zero.
func meanStat(values []float64) types.Stat {
	if len(values) == 0 {
		return types.Unavailable
	}
	return types.StatOf(stat.Mean(values, nil))
}

// riskReward is abs(avgWin / avgLoss), undefined when either side is
// unavailable or the average loss is zero.
func riskReward(avgWin, avgLoss types.Stat) types.Stat {
	if !avgWin.Valid || !avgLoss.Valid || avgLoss.Value == 0 {
		return types.Unavailable
	}
	return types.StatOf(math.Abs(avgWin.Value / avgLoss.Value))
}

// modeValue is the most frequent value; ties resolve to the value
// whose running count reaches the winning count first in input order.
func modeValue[T comparable](values []T) T {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	running := make(map[T]int, len(counts))
	for _, v := range values {
		running[v]++
		if running[v] == max {
			return v
		}
	}
	var zero T
	return zero
}
