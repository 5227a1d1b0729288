package analytics

import "github.com/tradeperf/analyzer/pkg/types"

// BuildInsights ranks the two aggregates into narrative conclusions.
// Pure reduction over already-computed sums; the aggregates are not
// modified.
func BuildInsights(bySymbol, bySession *Aggregate) Insights {
	var ins Insights

	if key, sum, ok := bySymbol.Max(); ok {
		ins.BestSymbol = Ranked{Key: key, Profit: sum}
	}
	if key, sum, ok := bySymbol.Min(); ok {
		ins.WorstSymbol = Ranked{Key: key, Profit: sum}
	}
	if key, sum, ok := bySession.Max(); ok {
		ins.BestSession = Ranked{Key: key, Profit: sum}
	}
	if key, sum, ok := bySession.Min(); ok {
		ins.WorstSession = Ranked{Key: key, Profit: sum}
	}

	// The avoided-loss claim only holds when off-session trading
	// actually lost money; a non-negative sum makes no such claim.
	oos, _ := bySession.Sum(string(types.SessionOutOfSession))
	ins.OutOfSessionPnL = oos
	if oos < 0 {
		ins.AvoidedLoss = types.StatOf(-oos)
	} else {
		ins.AvoidedLoss = types.Unavailable
	}

	return ins
}
