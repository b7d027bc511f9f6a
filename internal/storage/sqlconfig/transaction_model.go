package sqlconfig

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id", "description", "value", "category", "date_display", "type", "user_id", "created_at",
}

// transactionRow mirrors one row of the transactions table.
type transactionRow struct {
	ID          int64           `db:"id"`
	Description string          `db:"description"`
	Value       decimal.Decimal `db:"value"`
	Category    string          `db:"category"`
	DateDisplay string          `db:"date_display"`
	Type        string          `db:"type"`
	UserID      sql.NullString  `db:"user_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

func rowToTransaction(row transactionRow) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          strconv.FormatInt(row.ID, 10),
		Description: row.Description,
		Amount:      row.Value,
		Category:    row.Category,
		DisplayDate: row.DateDisplay,
		Type:        row.Type,
		UserID:      row.UserID.String,
		CreatedAt:   row.CreatedAt,
	}
}
