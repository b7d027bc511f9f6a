package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finpro-ledger/internal/auth"
	xlsxexport "github.com/carson-networks/finpro-ledger/internal/export"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/finpro-ledger/internal/logging"
	"github.com/carson-networks/finpro-ledger/internal/service"
)

// ExportOutput is the Huma output carrying the workbook.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type ledgerReader interface {
	List(ctx context.Context, principalID, search string) ([]service.Transaction, error)
	Summary(ctx context.Context, principalID string, monthlyGoal decimal.Decimal) (service.Summary, error)
}

type profileReader interface {
	Get() service.Profile
}

// Handler handles GET /v1/export.
type Handler struct {
	Sessions ledgerReader
	Profile  profileReader
	Currency string
	Now      func() time.Time
}

func NewHandler(sessions ledgerReader, profile profileReader, currency string) *Handler {
	return &Handler{Sessions: sessions, Profile: profile, Currency: currency, Now: time.Now}
}

// Register registers the export endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/export",
		Summary:     "Export transactions",
		Description: "Downloads the ledger and its totals as an xlsx workbook.",
		Tags:        []string{"Export"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Workbook",
				Content: map[string]*huma.MediaType{
					xlsxexport.ContentType: {},
				},
			},
		},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*ExportOutput, error) {
	logData := logging.GetLogData(ctx)
	principalID := auth.PrincipalFrom(ctx).ID

	txs, err := h.Sessions.List(ctx, principalID, "")
	if err != nil {
		return nil, apierror.FromService(err, "failed to export transactions")
	}
	summary, err := h.Sessions.Summary(ctx, principalID, h.Profile.Get().MonthlyGoal)
	if err != nil {
		return nil, apierror.FromService(err, "failed to export transactions")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("exportMs")
	}
	var buf bytes.Buffer
	err = xlsxexport.WriteWorkbook(&buf, txs, summary, h.Currency)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build workbook", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(txs))
	}

	filename := fmt.Sprintf("finpro-%s.xlsx", h.Now().Format("2006-01-02"))
	return &ExportOutput{
		ContentType:        xlsxexport.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Body:               buf.Bytes(),
	}, nil
}
