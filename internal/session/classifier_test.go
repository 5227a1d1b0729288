package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradeperf/analyzer/pkg/types"
)

// TestClassifyHour_FullDay checks the mapping for every hour of the day
func TestClassifyHour_FullDay(t *testing.T) {
	expected := map[int]types.Session{}
	for h := 0; h < 24; h++ {
		expected[h] = types.SessionOutOfSession
	}
	for h := 12; h < 17; h++ {
		expected[h] = types.SessionNewYork
	}
	for h := 7; h < 10; h++ {
		expected[h] = types.SessionLondon
	}

	for h := 0; h < 24; h++ {
		assert.Equal(t, expected[h], ClassifyHour(h), "hour %d", h)
	}
}

// TestClassifyHour_Boundaries checks the session window edges
func TestClassifyHour_Boundaries(t *testing.T) {
	assert.Equal(t, types.SessionLondon, ClassifyHour(7))
	assert.Equal(t, types.SessionOutOfSession, ClassifyHour(10))
	assert.Equal(t, types.SessionNewYork, ClassifyHour(12))
	assert.Equal(t, types.SessionOutOfSession, ClassifyHour(17))
}

// TestClassify_UsesCloseHour verifies classification reads the hour of the timestamp
func TestClassify_UsesCloseHour(t *testing.T) {
	closeAt := time.Date(2023, 10, 3, 14, 59, 0, 0, time.UTC)
	assert.Equal(t, types.SessionNewYork, Classify(closeAt))

	closeAt = time.Date(2023, 10, 3, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, types.SessionLondon, Classify(closeAt))

	closeAt = time.Date(2023, 10, 3, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, types.SessionOutOfSession, Classify(closeAt))
}

// TestApply_SetsSessionWithoutMutatingInput verifies Apply returns a new ledger
func TestApply_SetsSessionWithoutMutatingInput(t *testing.T) {
	ledger := []types.Trade{
		{Symbol: "GBPUSD", CloseTime: time.Date(2023, 9, 1, 8, 0, 0, 0, time.UTC)},
		{Symbol: "XAUUSD", CloseTime: time.Date(2023, 9, 1, 14, 0, 0, 0, time.UTC)},
		{Symbol: "EURUSD", CloseTime: time.Date(2023, 9, 1, 20, 0, 0, 0, time.UTC)},
	}

	classified := Apply(ledger)

	assert.Equal(t, types.SessionLondon, classified[0].Session)
	assert.Equal(t, types.SessionNewYork, classified[1].Session)
	assert.Equal(t, types.SessionOutOfSession, classified[2].Session)

	for _, tr := range ledger {
		assert.Equal(t, types.Session(""), tr.Session, "input ledger must stay untouched")
	}
}
