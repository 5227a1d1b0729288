package data

import (
	"time"

	"github.com/tradeperf/analyzer/pkg/types"
)

// TradeProvider loads a closed-position ledger from some source. The
// returned ledger is sorted ascending by close time and validated; the
// analytics core relies on that contract and does not re-sort.
type TradeProvider interface {
	// LoadLedger loads and sorts the ledger from the specified source
	LoadLedger(source string) ([]types.Trade, error)

	// ValidateLedger validates the integrity of a loaded ledger
	ValidateLedger(ledger []types.Trade) error

	// GetName returns the name of the provider
	GetName() string
}

// TradeFilter narrows a ledger to an analysis window.
type TradeFilter interface {
	// FilterByDateRange keeps trades whose close time falls in [start, end]
	FilterByDateRange(ledger []types.Trade, start, end time.Time) []types.Trade

	// ValidateTimeSequence ensures the ledger is in close-time order
	ValidateTimeSequence(ledger []types.Trade) error
}
