package actions

import (
	"context"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

type CreateTransaction struct {
	Draft service.Draft

	Result *service.Transaction
	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, ledger *service.LedgerStore) error {
	created, err := ledger.Create(ctx, c.Draft)
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
