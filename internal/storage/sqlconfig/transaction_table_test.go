package sqlconfig

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aarondl/opt/omit"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

func newMockTable(t *testing.T) (TransactionsTable, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewTransactionsTable(db), mock
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows(transactionColumns)
}

func TestTransactionsTable_LoadAll_OrdersNewestFirst(t *testing.T) {
	table, mock := newMockTable(t)
	newer := time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM .?transactions.? ORDER BY .?created_at.? DESC`).
		WillReturnRows(transactionRows().
			AddRow(int64(2), "Pay", "3000.00", "Salary", "02 de jul.", "in", nil, newer).
			AddRow(int64(1), "Lunch", "-50.00", "Food", "01 de jul.", "out", nil, older))

	rows, err := table.ForPrincipal("").LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0].ID)
	assert.Equal(t, "Pay", rows[0].Description)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("3000")))
	assert.Equal(t, "", rows[0].UserID)
	assert.Equal(t, "1", rows[1].ID)
	assert.True(t, rows[1].Amount.Equal(decimal.RequireFromString("-50")))
	assert.Equal(t, older, rows[1].CreatedAt)
}

func TestTransactionsTable_LoadAll_ScopedToPrincipal(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectQuery(`SELECT .+ FROM .?transactions.? WHERE .+user_id`).
		WithArgs("user-1").
		WillReturnRows(transactionRows())

	rows, err := table.ForPrincipal("user-1").LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTransactionsTable_LoadAll_ConnectionError(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection refused"))

	rows, err := table.ForPrincipal("").LoadAll(context.Background())

	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, rows)
}

func TestTransactionsTable_Insert_ReturnsServerIdentity(t *testing.T) {
	table, mock := newMockTable(t)
	createdAt := time.Date(2025, 7, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO .?transactions.? .+ RETURNING`).
		WithArgs("Lunch", sqlmock.AnyArg(), "Food", "03 de jul.", "out", "user-1").
		WillReturnRows(transactionRows().
			AddRow(int64(17), "Lunch", "-50", "Food", "03 de jul.", "out", "user-1", createdAt))

	row, err := table.ForPrincipal("user-1").Insert(context.Background(), &transaction.TransactionCreate{
		Description: "Lunch",
		Amount:      decimal.RequireFromString("-50"),
		Category:    "Food",
		DisplayDate: "03 de jul.",
		Type:        transaction.TypeOut,
	})

	require.NoError(t, err)
	assert.Equal(t, "17", row.ID)
	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, createdAt, row.CreatedAt)
}

func TestTransactionsTable_Insert_OwnershipRejected(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectQuery(`INSERT INTO`).
		WillReturnError(&pq.Error{Code: "42501", Message: "new row violates row-level security policy"})

	row, err := table.ForPrincipal("user-1").Insert(context.Background(), &transaction.TransactionCreate{
		Description: "Lunch",
		Amount:      decimal.RequireFromString("-50"),
		Category:    "Food",
		Type:        transaction.TypeOut,
	})

	assert.ErrorIs(t, err, transaction.ErrOwnership)
	assert.Nil(t, row)
}

func TestTransactionsTable_UpdateByID_Success(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectExec(`UPDATE .?transactions.? SET .+ WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := table.ForPrincipal("").UpdateByID(context.Background(), "17", &transaction.TransactionUpdate{
		Description: omit.From("Dinner"),
		Amount:      omit.From(decimal.RequireFromString("-80")),
		Category:    omit.From("Leisure"),
		Type:        omit.From(transaction.TypeOut),
	})

	assert.NoError(t, err)
}

func TestTransactionsTable_UpdateByID_ZeroRowsIsNotFound(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectExec(`UPDATE`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := table.ForPrincipal("user-2").UpdateByID(context.Background(), "17", &transaction.TransactionUpdate{
		Description: omit.From("Dinner"),
	})

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestTransactionsTable_UpdateByID_NonNumericID(t *testing.T) {
	table, _ := newMockTable(t)

	err := table.ForPrincipal("").UpdateByID(context.Background(), "abc", &transaction.TransactionUpdate{
		Description: omit.From("Dinner"),
	})

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestTransactionsTable_DeleteByID(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectExec(`DELETE FROM .?transactions.? WHERE`).
		WithArgs(int64(17), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := table.ForPrincipal("user-1").DeleteByID(context.Background(), "17")

	assert.NoError(t, err)
}

func TestTransactionsTable_DeleteByID_ZeroRowsIsNotFound(t *testing.T) {
	table, mock := newMockTable(t)

	mock.ExpectExec(`DELETE FROM`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := table.ForPrincipal("").DeleteByID(context.Background(), "17")

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
