package data

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	apperrors "github.com/tradeperf/analyzer/internal/errors"
	"github.com/tradeperf/analyzer/pkg/types"
)

// DefaultTimeLayout matches the broker's account export format.
const DefaultTimeLayout = "02/01/2006 15:04"

// CSVProvider implements TradeProvider for broker CSV exports.
type CSVProvider struct {
	timeLayout string
}

// NewCSVProvider creates a CSV trade provider with the default
// timestamp layout.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{timeLayout: DefaultTimeLayout}
}

// NewCSVProviderWithLayout creates a CSV trade provider with a custom
// timestamp layout.
func NewCSVProviderWithLayout(layout string) *CSVProvider {
	return &CSVProvider{timeLayout: layout}
}

// GetName returns the name of the provider
func (p *CSVProvider) GetName() string {
	return "CSV Trade Provider"
}

// tradeRecord is the raw CSV row shape. Timestamps stay textual here
// because the export layout is provider configuration; durations come
// as seconds and are converted to minutes on load.
type tradeRecord struct {
	Symbol      string  `csv:"Symbol"`
	Open        string  `csv:"Open"`
	Close       string  `csv:"Close"`
	Profit      float64 `csv:"Profit"`
	DurationSec float64 `csv:"Trade duration in seconds"`
}

// LoadLedger reads the CSV export, converts rows into trades, sorts
// them ascending by close time and validates the result. Malformed
// rows are fatal: a silently skipped trade would shift every
// cumulative metric downstream.
func (p *CSVProvider) LoadLedger(source string) ([]types.Trade, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorCategoryIngestion, "data", "open ledger")
	}
	defer file.Close()

	var records []*tradeRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorCategoryIngestion, "data", "parse ledger csv")
	}

	ledger := make([]types.Trade, len(records))
	for i, rec := range records {
		openTime, err := time.Parse(p.timeLayout, rec.Open)
		if err != nil {
			return nil, apperrors.Wrap(fmt.Errorf("row %d: open time %q: %w", i, rec.Open, err),
				apperrors.ErrorCategoryIngestion, "data", "parse ledger csv")
		}
		closeTime, err := time.Parse(p.timeLayout, rec.Close)
		if err != nil {
			return nil, apperrors.Wrap(fmt.Errorf("row %d: close time %q: %w", i, rec.Close, err),
				apperrors.ErrorCategoryIngestion, "data", "parse ledger csv")
		}

		durationMin := rec.DurationSec / 60
		if rec.DurationSec == 0 {
			durationMin = closeTime.Sub(openTime).Minutes()
		}

		ledger[i] = types.Trade{
			Symbol:      rec.Symbol,
			OpenTime:    openTime,
			CloseTime:   closeTime,
			Profit:      rec.Profit,
			DurationMin: durationMin,
		}
	}

	// Cumulative sums and the drawdown path are defined over close-time
	// order, so the loader establishes it once here.
	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].CloseTime.Before(ledger[j].CloseTime)
	})

	if err := p.ValidateLedger(ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// ValidateLedger validates the integrity of a loaded ledger
func (p *CSVProvider) ValidateLedger(ledger []types.Trade) error {
	if len(ledger) == 0 {
		return apperrors.New(apperrors.ErrorCategoryIngestion, "data", "validate ledger", "ledger is empty")
	}
	for i, t := range ledger {
		if t.Symbol == "" {
			return apperrors.Wrap(fmt.Errorf("row %d: missing symbol", i),
				apperrors.ErrorCategoryIngestion, "data", "validate ledger")
		}
		if t.OpenTime.IsZero() || t.CloseTime.IsZero() {
			return apperrors.Wrap(fmt.Errorf("row %d: missing open or close time", i),
				apperrors.ErrorCategoryIngestion, "data", "validate ledger")
		}
		if t.CloseTime.Before(t.OpenTime) {
			return apperrors.Wrap(fmt.Errorf("row %d: closes before it opens", i),
				apperrors.ErrorCategoryIngestion, "data", "validate ledger")
		}
		if t.DurationMin < 0 {
			return apperrors.Wrap(fmt.Errorf("row %d: negative duration", i),
				apperrors.ErrorCategoryIngestion, "data", "validate ledger")
		}
	}
	return nil
}
