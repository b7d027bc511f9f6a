// Package export renders a ledger snapshot as a spreadsheet. It only reads what it is given.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finpro-ledger/internal/locale"
	"github.com/carson-networks/finpro-ledger/internal/service"
)

const sheetName = "Transactions"

// ContentType is the MIME type of the workbook WriteWorkbook produces.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{"Date", "Description", "Category", "Type", "Amount"}

// WriteWorkbook writes txs, newest first, followed by the summary totals.
func WriteWorkbook(w io.Writer, txs []service.Transaction, summary service.Summary, currency string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return err
	}

	widths := map[string]float64{"A": 14, "B": 36, "C": 14, "D": 8, "E": 18}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, tx := range txs {
		values := []interface{}{
			tx.DisplayDate,
			tx.Description,
			string(tx.Category),
			string(tx.Direction()),
			locale.FormatCurrency(tx.Amount, currency),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle); err != nil {
			return err
		}
		row++
	}

	row++
	totals := [][2]string{
		{"Income", locale.FormatCurrency(summary.TotalIncome, currency)},
		{"Expense", locale.FormatCurrency(summary.TotalExpense, currency)},
		{"Balance", locale.FormatCurrency(summary.Balance, currency)},
		{"Goal progress", summary.GoalProgressPercent.StringFixed(1) + "%"},
	}
	for _, total := range totals {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), total[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), total[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), summaryStyle); err != nil {
			return err
		}
		row++
	}

	return f.Write(w)
}
