package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// Category is one of the fixed transaction labels.
type Category string

const (
	CategorySalary    Category = "Salary"
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryHealth    Category = "Health"
	CategoryLeisure   Category = "Leisure"
	CategoryOther     Category = "Other"
)

// Categories returns every label in display order.
func Categories() []Category {
	return []Category{
		CategorySalary,
		CategoryFood,
		CategoryTransport,
		CategoryHealth,
		CategoryLeisure,
		CategoryOther,
	}
}

// Portuguese labels written by earlier versions of the app.
var categoryAliases = map[string]Category{
	"salário":     CategorySalary,
	"salario":     CategorySalary,
	"alimentação": CategoryFood,
	"alimentacao": CategoryFood,
	"transporte":  CategoryTransport,
	"saúde":       CategoryHealth,
	"saude":       CategoryHealth,
	"lazer":       CategoryLeisure,
	"outros":      CategoryOther,
}

// ParseCategory maps a stored or submitted label onto the fixed set. Anything unknown is Other.
func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	for _, c := range Categories() {
		if strings.EqualFold(label, string(c)) {
			return c
		}
	}
	if c, ok := categoryAliases[strings.ToLower(label)]; ok {
		return c
	}
	return CategoryOther
}

// Direction is the form-only money direction. Once saved it lives in the amount's sign.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    Category
	DisplayDate string
	CreatedAt   time.Time
}

// Direction derives the direction from the amount's sign.
func (t Transaction) Direction() Direction {
	if t.Amount.IsNegative() {
		return DirectionOut
	}
	return DirectionIn
}

// Draft is a submitted, not yet validated set of fields for create or update.
type Draft struct {
	Description string
	Amount      string
	Direction   Direction
	Category    string
}

// DraftFrom fills a draft from an existing record, as an edit form would.
func DraftFrom(t Transaction) Draft {
	return Draft{
		Description: t.Description,
		Amount:      t.Amount.Abs().String(),
		Direction:   t.Direction(),
		Category:    string(t.Category),
	}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Category:    ParseCategory(row.Category),
		DisplayDate: row.DisplayDate,
		CreatedAt:   row.CreatedAt,
	}
}
