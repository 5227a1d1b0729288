package analytics

import (
	"time"

	"github.com/tradeperf/analyzer/pkg/types"
)

// CurvePoint is one sample of the smoothed balance curve. X is a
// fractional position on the trade-index axis.
type CurvePoint struct {
	X       float64
	Balance float64
}

// Ranked pairs a categorical key with its aggregate profit.
type Ranked struct {
	Key    string
	Profit float64
}

// Insights are the narrative conclusions drawn from the aggregates.
type Insights struct {
	BestSymbol   Ranked
	WorstSymbol  Ranked
	BestSession  Ranked
	WorstSession Ranked

	// OutOfSessionPnL is the raw profit sum over OutOfSession trades.
	// AvoidedLoss is the positive amount that skipping those trades
	// would have saved; it is only valid when OutOfSessionPnL is
	// negative, otherwise no avoided-loss claim can be made.
	OutOfSessionPnL float64
	AvoidedLoss     types.Stat
}

// Report is the full set of derived performance metrics for one ledger.
// It is computed fresh from a ledger and an initial balance on every
// run and is never mutated afterwards.
type Report struct {
	InitialBalance float64
	FinalBalance   float64
	TotalTrades    int
	TotalPnL       float64
	GrowthPercent  float64

	WinRate     float64
	AverageWin  types.Stat
	AverageLoss types.Stat
	RiskReward  types.Stat

	// MaxDrawdown is min(balance) relative to the initial balance,
	// clamped to zero when the balance never dips below it.
	MaxDrawdown float64

	AvgDurationMin    float64
	MostTradedSymbol  string
	MostCommonWeekday time.Weekday

	EquityCurve []types.EquityPoint

	// SmoothedCurve is the display-only resampled balance curve. It is
	// nil when the ledger has too few points to fit a cubic spline;
	// numerical results never depend on it.
	SmoothedCurve []CurvePoint

	BySymbol  *Aggregate
	BySession *Aggregate

	Insights Insights
}
