package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a mutation targets an id the backend does not hold
	// (or, for principal-scoped tables, one the principal cannot see).
	ErrNotFound = errors.New("transaction: no matching row")

	// ErrOwnership is returned when the backend rejects a write for the current principal.
	ErrOwnership = errors.New("transaction: ownership rejected")
)

// Direction values stored in the type column.
const (
	TypeIn  = "in"
	TypeOut = "out"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	DisplayDate string
	Type        string
	UserID      string
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	DisplayDate string
	Type        string
}

// TransactionUpdate carries the fields to overwrite. Unset fields are left alone;
// id and display date are never part of an update.
type TransactionUpdate struct {
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[string]
	Type        omit.Val[string]
}

// Apply copies the set fields of u onto row.
func (u *TransactionUpdate) Apply(row *Transaction) {
	if v, ok := u.Description.Get(); ok {
		row.Description = v
	}
	if v, ok := u.Amount.Get(); ok {
		row.Amount = v
	}
	if v, ok := u.Category.Get(); ok {
		row.Category = v
	}
	if v, ok := u.Type.Get(); ok {
		row.Type = v
	}
}

// ITransactionTable defines the interface for transaction storage operations.
// Both the local document and the remote table implement it; LoadAll returns rows newest first.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	LoadAll(ctx context.Context) ([]*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	UpdateByID(ctx context.Context, id string, update *TransactionUpdate) error
	DeleteByID(ctx context.Context, id string) error
}
