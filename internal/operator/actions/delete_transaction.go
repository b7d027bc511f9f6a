package actions

import (
	"context"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

type DeleteTransaction struct {
	ID string
	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, ledger *service.LedgerStore) error {
	return ledger.Delete(ctx, d.ID)
}
