package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finpro-ledger/internal/auth"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/finpro-ledger/internal/logging"
	"github.com/carson-networks/finpro-ledger/internal/operator/actions"
)

// RefreshTransactionsHandler handles POST /v1/transaction/refresh.
type RefreshTransactionsHandler struct {
	Operator actionProcessor
}

// NewRefreshTransactionsHandler creates a new RefreshTransactionsHandler.
func NewRefreshTransactionsHandler(op actionProcessor) *RefreshTransactionsHandler {
	return &RefreshTransactionsHandler{Operator: op}
}

// Register registers the refresh endpoint with the Huma API.
func (h *RefreshTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/refresh",
		Summary:     "Refresh transactions",
		Description: "Reloads the ledger from the backend and returns it. The previous ledger is kept if the reload fails.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *RefreshTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.RefreshLedger{}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("refreshTransactionsMs")
	}
	err := h.Operator.Process(ctx, auth.PrincipalFrom(ctx).ID, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to refresh transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(action.Result))
	}

	return &ListTransactionsOutput{
		Body: ListTransactionsResponseBody{Transactions: fromServiceList(action.Result)},
	}, nil
}
