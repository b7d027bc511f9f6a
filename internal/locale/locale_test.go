package locale

import (
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShortDate(t *testing.T) {
	day := time.Date(2026, 10, 6, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		locale   string
		expected string
	}{
		{"pt-BR", "06 de out."},
		{"pt", "06 de out."},
		{"es-ES", "06 oct"},
		{"en-US", "Oct 06"},
		{"", "Oct 06"},
		{"not a locale", "Oct 06"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortDate(day, tt.locale))
		})
	}
}

func TestDateFormatter(t *testing.T) {
	format := DateFormatter("pt-BR")
	assert.Equal(t, "31 de dez.", format(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFormatCurrency(t *testing.T) {
	amount := decimal.RequireFromString("2950.5")

	assert.Equal(t, money.New(295050, money.BRL).Display(), FormatCurrency(amount, "BRL"))
	assert.Equal(t, money.New(-5000, money.USD).Display(), FormatCurrency(decimal.NewFromInt(-50), "USD"))
	assert.Equal(t, "12.30 XYZ", FormatCurrency(decimal.RequireFromString("12.3"), "XYZ"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("ALMOÇO"), Fold("almoço"))
	assert.NotEqual(t, Fold("lunch"), Fold("launch"))
}
