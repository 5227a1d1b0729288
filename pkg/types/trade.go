package types

import "time"

// Session is the market-hours bucket a trade's close time falls into.
type Session string

const (
	SessionNewYork      Session = "NewYork"
	SessionLondon       Session = "London"
	SessionOutOfSession Session = "OutOfSession"
)

// Trade is one closed position from the account ledger.
type Trade struct {
	Symbol      string
	OpenTime    time.Time
	CloseTime   time.Time
	Profit      float64
	DurationMin float64
	Session     Session
}

// EquityPoint is the account state after applying one trade's profit.
type EquityPoint struct {
	CumulativeProfit float64 `json:"cumulative_profit"`
	Balance          float64 `json:"balance"`
}

// Stat is a numeric statistic that may be undefined for a given ledger
// (no winners, no losers, too few points). Consumers must check Valid
// before using Value; an invalid Stat carries no number at all.
type Stat struct {
	Value float64
	Valid bool
}

// StatOf wraps a defined value.
func StatOf(v float64) Stat {
	return Stat{Value: v, Valid: true}
}

// Unavailable is the undefined statistic.
var Unavailable = Stat{}
