package export

import (
	"bytes"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

func TestWriteWorkbook(t *testing.T) {
	txs := []service.Transaction{
		{ID: "2", Description: "Pay", Amount: decimal.NewFromInt(3000), Category: service.CategorySalary, DisplayDate: "02 de jul."},
		{ID: "1", Description: "Lunch", Amount: decimal.NewFromInt(-50), Category: service.CategoryFood, DisplayDate: "01 de jul."},
	}
	summary := service.Summarize(txs, decimal.NewFromInt(2000))

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, txs, summary, "USD"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 8)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"02 de jul.", "Pay", "Salary", "in", money.New(300000, money.USD).Display()}, rows[1])
	assert.Equal(t, []string{"01 de jul.", "Lunch", "Food", "out", money.New(-5000, money.USD).Display()}, rows[2])

	balance, err := f.GetCellValue(sheetName, "E7")
	require.NoError(t, err)
	assert.Equal(t, money.New(295000, money.USD).Display(), balance)

	progress, err := f.GetCellValue(sheetName, "E8")
	require.NoError(t, err)
	assert.Equal(t, "2.5%", progress)
}

func TestWriteWorkbook_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteWorkbook(&buf, nil, service.Summarize(nil, decimal.Zero), "BRL"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Equal(t, headers, rows[0])
}
