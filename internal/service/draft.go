package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// AmountScale is the number of decimal places a stored amount keeps.
const AmountScale = 2

// maxAmount bounds the magnitude of a stored amount to twelve integer digits.
var maxAmount = decimal.New(1, 12)

// validDraft is a draft that passed validation, with the sign already applied to the amount.
type validDraft struct {
	description string
	amount      decimal.Decimal
	category    Category
	direction   Direction
}

// ParseAmount accepts either "." or "," as the decimal separator.
func ParseAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(normalized)
}

func validateDraft(d Draft) (*validDraft, error) {
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Reason: "must be a number"}
	}
	amount = amount.Round(AmountScale)
	if amount.IsZero() {
		return nil, &ValidationError{Field: "amount", Reason: "must not be zero"}
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return nil, &ValidationError{Field: "amount", Reason: "must have at most 12 integer digits"}
	}

	direction := d.Direction
	switch direction {
	case "":
		direction = DirectionOut
	case DirectionIn, DirectionOut:
	default:
		return nil, &ValidationError{Field: "direction", Reason: `must be "in" or "out"`}
	}

	magnitude := amount.Abs()
	if direction == DirectionOut {
		magnitude = magnitude.Neg()
	}

	return &validDraft{
		description: description,
		amount:      magnitude,
		category:    ParseCategory(d.Category),
		direction:   direction,
	}, nil
}

func (v *validDraft) toCreate(displayDate string) *transaction.TransactionCreate {
	return &transaction.TransactionCreate{
		Description: v.description,
		Amount:      v.amount,
		Category:    string(v.category),
		DisplayDate: displayDate,
		Type:        string(v.direction),
	}
}

func (v *validDraft) toUpdate() *transaction.TransactionUpdate {
	update := &transaction.TransactionUpdate{}
	update.Description.Set(v.description)
	update.Amount.Set(v.amount)
	update.Category.Set(string(v.category))
	update.Type.Set(string(v.direction))
	return update
}
