package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/pkg/types"
)

// TradeRows is the classified ledger handed to file reporters that
// list individual trades; the Report itself only carries derived data.
type TradeRows = []types.Trade

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteEquityCSV writes the raw equity curve, one row per trade.
func (r *DefaultCSVReporter) WriteEquityCSV(report *analytics.Report, path string) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Trade", "Cumulative_Profit", "Balance"}); err != nil {
		return err
	}
	for i, p := range report.EquityCurve {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(p.CumulativeProfit, 'f', 2, 64),
			strconv.FormatFloat(p.Balance, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteTradesCSV writes the classified trade list.
func (r *DefaultCSVReporter) WriteTradesCSV(report *analytics.Report, trades TradeRows, path string) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Symbol", "Open", "Close", "Session", "Profit", "Duration_Min", "Win_Loss"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, t := range trades {
		outcome := "LOSS"
		if t.Profit > 0 {
			outcome = "WIN"
		} else if t.Profit == 0 {
			outcome = "FLAT"
		}
		row := []string{
			t.Symbol,
			t.OpenTime.Format("2006-01-02 15:04"),
			t.CloseTime.Format("2006-01-02 15:04"),
			string(t.Session),
			strconv.FormatFloat(t.Profit, 'f', 2, 64),
			strconv.FormatFloat(t.DurationMin, 'f', 2, 64),
			outcome,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func createWithDir(path string) (*os.File, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}
