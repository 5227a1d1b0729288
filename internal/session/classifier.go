package session

import (
	"time"

	"github.com/tradeperf/analyzer/pkg/types"
)

// Session open hours, local to the ledger's timezone. Half-open
// intervals: the closing hour itself is already out of session.
const (
	newYorkOpen  = 12
	newYorkClose = 17
	londonOpen   = 7
	londonClose  = 10
)

// Classify maps a close timestamp to its trading session from the hour
// component alone. Total over all 24 hours; anything outside the New
// York and London windows is OutOfSession.
func Classify(closeTime time.Time) types.Session {
	return ClassifyHour(closeTime.Hour())
}

// ClassifyHour is the hour-level classification rule.
func ClassifyHour(hour int) types.Session {
	switch {
	case hour >= newYorkOpen && hour < newYorkClose:
		return types.SessionNewYork
	case hour >= londonOpen && hour < londonClose:
		return types.SessionLondon
	default:
		return types.SessionOutOfSession
	}
}

// Apply returns a copy of the ledger with every trade's Session set
// from its close time. The input slice is not modified.
func Apply(ledger []types.Trade) []types.Trade {
	out := make([]types.Trade, len(ledger))
	for i, t := range ledger {
		t.Session = Classify(t.CloseTime)
		out[i] = t
	}
	return out
}
