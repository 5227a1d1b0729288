package data

import (
	"fmt"
	"time"

	"github.com/tradeperf/analyzer/pkg/types"
)

// DefaultTradeFilter implements TradeFilter for common windowing
// operations.
type DefaultTradeFilter struct{}

// NewDefaultTradeFilter creates a new default trade filter
func NewDefaultTradeFilter() *DefaultTradeFilter {
	return &DefaultTradeFilter{}
}

// FilterByDateRange keeps trades whose close time falls in [start, end],
// bounds inclusive. Zero bounds are open-ended on that side.
func (f *DefaultTradeFilter) FilterByDateRange(ledger []types.Trade, start, end time.Time) []types.Trade {
	if len(ledger) == 0 {
		return ledger
	}

	var filtered []types.Trade
	for _, t := range ledger {
		if !start.IsZero() && t.CloseTime.Before(start) {
			continue
		}
		if !end.IsZero() && t.CloseTime.After(end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// ValidateTimeSequence ensures the ledger is in close-time order
func (f *DefaultTradeFilter) ValidateTimeSequence(ledger []types.Trade) error {
	for i := 1; i < len(ledger); i++ {
		if ledger[i].CloseTime.Before(ledger[i-1].CloseTime) {
			return fmt.Errorf("invalid close-time sequence at index %d: ledger must be in chronological order", i)
		}
	}
	return nil
}
