// Package locale formats values for display. Nothing here is used for arithmetic: amounts stay
// raw decimals until they reach a response or an export.
package locale

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var portugueseMonths = [...]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// ShortDate renders the day and abbreviated month the way the locale writes them,
// e.g. "16 de out." for pt-BR and "Oct 16" for en-US. Unknown locales use English.
func ShortDate(t time.Time, locale string) string {
	base, _ := language.Make(locale).Base()
	switch base.String() {
	case "pt":
		return fmt.Sprintf("%02d de %s", t.Day(), portugueseMonths[t.Month()-1])
	case "es":
		return fmt.Sprintf("%02d %s", t.Day(), spanishMonths[t.Month()-1])
	default:
		return t.Format("Jan 02")
	}
}

// DateFormatter binds ShortDate to a locale.
func DateFormatter(locale string) func(time.Time) string {
	return func(t time.Time) string {
		return ShortDate(t, locale)
	}
}

// FormatCurrency renders amount in the currency's conventions, e.g. "R$2.950,00".
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return amount.StringFixed(2) + " " + currencyCode
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

var folder = cases.Fold()

// Fold returns s case-folded for comparisons that ignore case.
func Fold(s string) string {
	return folder.String(s)
}
