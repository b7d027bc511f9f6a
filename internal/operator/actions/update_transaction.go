package actions

import (
	"context"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

type UpdateTransaction struct {
	ID    string
	Draft service.Draft

	Result *service.Transaction
	IAction
}

func (u *UpdateTransaction) Perform(ctx context.Context, ledger *service.LedgerStore) error {
	updated, err := ledger.Update(ctx, u.ID, u.Draft)
	if err != nil {
		return err
	}

	u.Result = updated
	return nil
}
