package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeperf/analyzer/pkg/types"
)

func closedAt(day int) types.Trade {
	closeAt := time.Date(2023, 9, day, 14, 0, 0, 0, time.UTC)
	return types.Trade{
		Symbol:    "EURUSD",
		OpenTime:  closeAt.Add(-time.Hour),
		CloseTime: closeAt,
	}
}

// TestFilterByDateRange_InclusiveBounds checks both window edges are kept
func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	ledger := []types.Trade{closedAt(1), closedAt(5), closedAt(10), closedAt(15)}
	filter := NewDefaultTradeFilter()

	start := time.Date(2023, 9, 5, 14, 0, 0, 0, time.UTC)
	end := time.Date(2023, 9, 10, 14, 0, 0, 0, time.UTC)
	got := filter.FilterByDateRange(ledger, start, end)

	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].CloseTime.Day())
	assert.Equal(t, 10, got[1].CloseTime.Day())
}

// TestFilterByDateRange_OpenEnded checks zero bounds leave that side unbounded
func TestFilterByDateRange_OpenEnded(t *testing.T) {
	ledger := []types.Trade{closedAt(1), closedAt(5), closedAt(10)}
	filter := NewDefaultTradeFilter()

	got := filter.FilterByDateRange(ledger, time.Time{}, time.Date(2023, 9, 5, 23, 0, 0, 0, time.UTC))
	assert.Len(t, got, 2)

	got = filter.FilterByDateRange(ledger, time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC), time.Time{})
	assert.Len(t, got, 2)

	got = filter.FilterByDateRange(ledger, time.Time{}, time.Time{})
	assert.Len(t, got, 3)
}

// TestValidateTimeSequence checks chronological order enforcement
func TestValidateTimeSequence(t *testing.T) {
	filter := NewDefaultTradeFilter()

	assert.NoError(t, filter.ValidateTimeSequence([]types.Trade{closedAt(1), closedAt(2)}))
	assert.NoError(t, filter.ValidateTimeSequence(nil))
	assert.Error(t, filter.ValidateTimeSequence([]types.Trade{closedAt(2), closedAt(1)}))
}
