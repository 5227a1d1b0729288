package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tradeperf/analyzer/internal/analytics"
	"github.com/tradeperf/analyzer/pkg/types"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// ExcelStyles holds the workbook's formatting styles
type ExcelStyles struct {
	HeaderStyle   int
	CurrencyStyle int
	PercentStyle  int
	BaseStyle     int
}

// WriteReportXLSX writes the performance workbook: a Summary sheet with
// every scalar metric and insight, a Trades sheet with the classified
// ledger, and per-symbol / per-session breakdown sheets.
func (r *DefaultExcelReporter) WriteReportXLSX(report *analytics.Report, trades TradeRows, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const tradesSheet = "Trades"
	const symbolsSheet = "Symbols"
	const sessionsSheet = "Sessions"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(tradesSheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(symbolsSheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(sessionsSheet); err != nil {
		return err
	}

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, report, styles); err != nil {
		return err
	}
	if err := r.writeTradesSheet(fx, tradesSheet, trades, styles); err != nil {
		return err
	}
	if err := r.writeAggregateSheet(fx, symbolsSheet, "Symbol", report.BySymbol, styles); err != nil {
		return err
	}
	if err := r.writeAggregateSheet(fx, sessionsSheet, "Session", report.BySession, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 2, // 0.00
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Family: "Calibri"},
	})
	return styles, err
}

func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, report *analytics.Report, styles ExcelStyles) error {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Initial Balance", report.InitialBalance},
		{"Final Balance", report.FinalBalance},
		{"Total P&L", report.TotalPnL},
		{"Account Growth %", report.GrowthPercent},
		{"Total Trades", report.TotalTrades},
		{"Win Rate %", report.WinRate},
		{"Average Win", statCell(report.AverageWin)},
		{"Average Loss", statCell(report.AverageLoss)},
		{"Risk-Reward Ratio", statCell(report.RiskReward)},
		{"Max Drawdown", report.MaxDrawdown},
		{"Avg Trade Duration (min)", report.AvgDurationMin},
		{"Most Traded Symbol", report.MostTradedSymbol},
		{"Most Common Close Day", report.MostCommonWeekday.String()},
		{"Best Symbol", fmt.Sprintf("%s (%+.2f)", report.Insights.BestSymbol.Key, report.Insights.BestSymbol.Profit)},
		{"Worst Symbol", fmt.Sprintf("%s (%+.2f)", report.Insights.WorstSymbol.Key, report.Insights.WorstSymbol.Profit)},
		{"Best Session", fmt.Sprintf("%s (%+.2f)", report.Insights.BestSession.Key, report.Insights.BestSession.Profit)},
		{"Worst Session", fmt.Sprintf("%s (%+.2f)", report.Insights.WorstSession.Key, report.Insights.WorstSession.Profit)},
		{"Out-of-Session P&L", report.Insights.OutOfSessionPnL},
		{"Avoidable Loss", statCell(report.Insights.AvoidedLoss)},
	}

	if err := fx.SetCellValue(sheet, "A1", "Metric"); err != nil {
		return err
	}
	if err := fx.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cellA := fmt.Sprintf("A%d", i+2)
		cellB := fmt.Sprintf("B%d", i+2)
		if err := fx.SetCellValue(sheet, cellA, row.label); err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cellB, row.value); err != nil {
			return err
		}
	}

	if err := fx.SetColWidth(sheet, "A", "A", 26); err != nil {
		return err
	}
	return fx.SetColWidth(sheet, "B", "B", 22)
}

func (r *DefaultExcelReporter) writeTradesSheet(fx *excelize.File, sheet string, trades TradeRows, styles ExcelStyles) error {
	headers := []string{"Symbol", "Open", "Close", "Session", "Profit", "Duration (min)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle); err != nil {
			return err
		}
	}

	for i, t := range trades {
		row := i + 2
		values := []interface{}{
			t.Symbol,
			t.OpenTime.Format("2006-01-02 15:04"),
			t.CloseTime.Format("2006-01-02 15:04"),
			string(t.Session),
			t.Profit,
			t.DurationMin,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		profitCell := fmt.Sprintf("E%d", row)
		if err := fx.SetCellStyle(sheet, profitCell, profitCell, styles.CurrencyStyle); err != nil {
			return err
		}
	}

	return fx.SetColWidth(sheet, "A", "F", 18)
}

func (r *DefaultExcelReporter) writeAggregateSheet(fx *excelize.File, sheet, keyHeader string, agg *analytics.Aggregate, styles ExcelStyles) error {
	if err := fx.SetCellValue(sheet, "A1", keyHeader); err != nil {
		return err
	}
	if err := fx.SetCellValue(sheet, "B1", "Net Profit"); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle); err != nil {
		return err
	}

	for i, key := range agg.Keys() {
		sum, _ := agg.Sum(key)
		row := i + 2
		if err := fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), key); err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), sum); err != nil {
			return err
		}
		cell := fmt.Sprintf("B%d", row)
		if err := fx.SetCellStyle(sheet, cell, cell, styles.CurrencyStyle); err != nil {
			return err
		}
	}

	return fx.SetColWidth(sheet, "A", "B", 18)
}

// statCell renders an unavailable statistic as a marker string; Excel
// consumers get "n/a", never a fabricated zero.
func statCell(s types.Stat) interface{} {
	if s.Valid {
		return s.Value
	}
	return "n/a"
}
