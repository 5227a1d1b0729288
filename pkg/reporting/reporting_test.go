package reporting

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/internal/session"
	"github.com/tradeperf/analyzer/pkg/types"
)

func sampleRun(t *testing.T) (*analytics.Report, TradeRows) {
	t.Helper()
	ledger := []types.Trade{
		{Symbol: "GBPUSD", OpenTime: time.Date(2023, 9, 1, 7, 0, 0, 0, time.UTC), CloseTime: time.Date(2023, 9, 1, 8, 0, 0, 0, time.UTC), Profit: 100, DurationMin: 60},
		{Symbol: "XAUUSD", OpenTime: time.Date(2023, 9, 1, 13, 0, 0, 0, time.UTC), CloseTime: time.Date(2023, 9, 1, 14, 0, 0, 0, time.UTC), Profit: -50, DurationMin: 60},
		{Symbol: "EURUSD", OpenTime: time.Date(2023, 9, 1, 19, 0, 0, 0, time.UTC), CloseTime: time.Date(2023, 9, 1, 20, 0, 0, 0, time.UTC), Profit: 20, DurationMin: 60},
	}
	classified := session.Apply(ledger)

	report, err := analytics.NewEngine(25000).Compute(classified)
	require.NoError(t, err)
	return report, classified
}

// TestWriteEquityCSV checks the equity curve artifact row for row
func TestWriteEquityCSV(t *testing.T) {
	report, _ := sampleRun(t)
	path := filepath.Join(t.TempDir(), "equity.csv")

	require.NoError(t, NewDefaultCSVReporter().WriteEquityCSV(report, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Trade", "Cumulative_Profit", "Balance"}, rows[0])
	assert.Equal(t, []string{"1", "100.00", "25100.00"}, rows[1])
	assert.Equal(t, []string{"3", "70.00", "25070.00"}, rows[3])
}

// TestWriteTradesCSV checks the classified trade listing
func TestWriteTradesCSV(t *testing.T) {
	report, trades := sampleRun(t)
	path := filepath.Join(t.TempDir(), "trades.csv")

	require.NoError(t, NewDefaultCSVReporter().WriteTradesCSV(report, trades, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "London", rows[1][3])
	assert.Equal(t, "WIN", rows[1][6])
	assert.Equal(t, "LOSS", rows[2][6])
}

// TestWriteReportJSON checks availability markers serialize as null
func TestWriteReportJSON(t *testing.T) {
	report, _ := sampleRun(t)
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, NewDefaultJSONReporter().WriteReportJSON(report, path))

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.InDelta(t, 70.0, decoded["total_pnl"].(float64), 1e-9)
	assert.InDelta(t, 25070.0, decoded["final_balance"].(float64), 1e-9)

	// off-session trading was profitable, so no avoided-loss claim
	insights := decoded["insights"].(map[string]interface{})
	assert.Nil(t, insights["avoided_loss"])

	// per-session breakdown keeps ledger order
	bySession := decoded["by_session"].([]interface{})
	first := bySession[0].(map[string]interface{})
	assert.Equal(t, "London", first["key"])
}

// TestWriteReportXLSX checks the workbook sheets exist and carry the summary
func TestWriteReportXLSX(t *testing.T) {
	report, trades := sampleRun(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, NewDefaultExcelReporter().WriteReportXLSX(report, trades, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.ElementsMatch(t, []string{"Summary", "Trades", "Symbols", "Sessions"}, fx.GetSheetList())

	label, err := fx.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Initial Balance", label)

	symbol, err := fx.GetCellValue("Trades", "A2")
	require.NoError(t, err)
	assert.Equal(t, "GBPUSD", symbol)
}

// TestGetDefaultOutputDir checks the ledger-derived output path
func TestGetDefaultOutputDir(t *testing.T) {
	pm := NewDefaultPathManager()
	assert.Equal(t, filepath.Join("results", "FTMO"), pm.GetDefaultOutputDir("exports/FTMO.csv"))
	assert.Equal(t, filepath.Join("results", "report"), pm.GetDefaultOutputDir(""))
}

// TestFormatStat checks unavailable statistics render as n/a
func TestFormatStat(t *testing.T) {
	assert.Equal(t, "n/a", formatStat(types.Unavailable, "%.2f"))
	assert.Equal(t, "1.50", formatStat(types.StatOf(1.5), "%.2f"))
}
