package service

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryAmount is one slice of the spending breakdown.
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
}

// Summary holds the figures derived from a snapshot. Expense and breakdown amounts are
// positive magnitudes.
type Summary struct {
	TotalIncome         decimal.Decimal
	TotalExpense        decimal.Decimal
	Balance             decimal.Decimal
	GoalProgressPercent decimal.Decimal
	// CategoryBreakdown lists outflow categories in order of first appearance in the snapshot.
	CategoryBreakdown []CategoryAmount
}

// BreakdownMap returns the breakdown keyed by category.
func (s Summary) BreakdownMap() map[Category]decimal.Decimal {
	out := make(map[Category]decimal.Decimal, len(s.CategoryBreakdown))
	for _, c := range s.CategoryBreakdown {
		out[c.Category] = c.Amount
	}
	return out
}

// Summarize computes totals, balance, goal progress and the outflow breakdown.
// Progress is TotalExpense over monthlyGoal as a percentage clamped to [0, 100], and 0 when
// the goal is not positive.
func Summarize(snapshot []Transaction, monthlyGoal decimal.Decimal) Summary {
	summary := Summary{
		TotalIncome:         decimal.Zero,
		TotalExpense:        decimal.Zero,
		GoalProgressPercent: decimal.Zero,
		CategoryBreakdown:   []CategoryAmount{},
	}
	position := map[Category]int{}

	for _, t := range snapshot {
		if t.Amount.IsPositive() {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			continue
		}
		if !t.Amount.IsNegative() {
			continue
		}

		magnitude := t.Amount.Abs()
		summary.TotalExpense = summary.TotalExpense.Add(magnitude)

		i, seen := position[t.Category]
		if !seen {
			position[t.Category] = len(summary.CategoryBreakdown)
			summary.CategoryBreakdown = append(summary.CategoryBreakdown, CategoryAmount{Category: t.Category, Amount: magnitude})
			continue
		}
		summary.CategoryBreakdown[i].Amount = summary.CategoryBreakdown[i].Amount.Add(magnitude)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	if monthlyGoal.IsPositive() {
		progress := summary.TotalExpense.Div(monthlyGoal).Mul(hundred)
		if progress.GreaterThan(hundred) {
			progress = hundred
		}
		summary.GoalProgressPercent = progress
	}

	return summary
}
