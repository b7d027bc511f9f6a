package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finpro-ledger/internal/auth"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/finpro-ledger/internal/locale"
	"github.com/carson-networks/finpro-ledger/internal/logging"
	"github.com/carson-networks/finpro-ledger/internal/service"
)

// CategoryAmount is one entry of the spending breakdown.
type CategoryAmount struct {
	Category string `json:"category" doc:"Category label"`
	Amount   string `json:"amount" doc:"Positive sum of outflows in the category"`
}

// Formatted holds the money figures rendered in the configured currency.
type Formatted struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Balance      string `json:"balance"`
	MonthlyGoal  string `json:"monthlyGoal"`
}

// SummaryBody is the response body for the ledger summary.
type SummaryBody struct {
	TotalIncome         string           `json:"totalIncome" doc:"Sum of inflows"`
	TotalExpense        string           `json:"totalExpense" doc:"Sum of outflow magnitudes"`
	Balance             string           `json:"balance" doc:"Signed sum of every amount"`
	MonthlyGoal         string           `json:"monthlyGoal" doc:"Spending goal from the profile"`
	GoalProgressPercent string           `json:"goalProgressPercent" doc:"Expense over goal, clamped to 0-100"`
	CategoryBreakdown   []CategoryAmount `json:"categoryBreakdown" doc:"Outflow categories in order of first appearance"`
	Formatted           Formatted        `json:"formatted" doc:"Money figures in the display currency"`
}

// SummaryOutput is the Huma output for the ledger summary.
type SummaryOutput struct {
	Body SummaryBody
}

type summaryReader interface {
	Summary(ctx context.Context, principalID string, monthlyGoal decimal.Decimal) (service.Summary, error)
}

type profileReader interface {
	Get() service.Profile
}

// Handler handles GET /v1/summary.
type Handler struct {
	Sessions summaryReader
	Profile  profileReader
	Currency string
}

func NewHandler(sessions summaryReader, profile profileReader, currency string) *Handler {
	return &Handler{Sessions: sessions, Profile: profile, Currency: currency}
}

// Register registers the summary endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Ledger summary",
		Description: "Totals, balance, goal progress and spending by category, derived from the current ledger.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	goal := h.Profile.Get().MonthlyGoal

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.Sessions.Summary(ctx, auth.PrincipalFrom(ctx).ID, goal)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to summarize ledger")
	}

	body := SummaryBody{
		TotalIncome:         summary.TotalIncome.String(),
		TotalExpense:        summary.TotalExpense.String(),
		Balance:             summary.Balance.String(),
		MonthlyGoal:         goal.String(),
		GoalProgressPercent: summary.GoalProgressPercent.StringFixed(2),
		CategoryBreakdown:   make([]CategoryAmount, len(summary.CategoryBreakdown)),
		Formatted: Formatted{
			TotalIncome:  locale.FormatCurrency(summary.TotalIncome, h.Currency),
			TotalExpense: locale.FormatCurrency(summary.TotalExpense, h.Currency),
			Balance:      locale.FormatCurrency(summary.Balance, h.Currency),
			MonthlyGoal:  locale.FormatCurrency(goal, h.Currency),
		},
	}
	for i, c := range summary.CategoryBreakdown {
		body.CategoryBreakdown[i] = CategoryAmount{Category: string(c.Category), Amount: c.Amount.String()}
	}

	return &SummaryOutput{Body: body}, nil
}
