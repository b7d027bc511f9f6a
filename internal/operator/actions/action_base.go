package actions

import (
	"context"

	"github.com/carson-networks/finpro-ledger/internal/service"
)

type IAction interface {
	Perform(ctx context.Context, ledger *service.LedgerStore) error
}
