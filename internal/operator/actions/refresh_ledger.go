package actions

import (
	"context"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

// RefreshLedger reloads the snapshot from the backend.
type RefreshLedger struct {
	Result []service.Transaction
	IAction
}

func (r *RefreshLedger) Perform(ctx context.Context, ledger *service.LedgerStore) error {
	if err := ledger.Refresh(ctx); err != nil {
		return err
	}

	r.Result = ledger.List()
	return nil
}
