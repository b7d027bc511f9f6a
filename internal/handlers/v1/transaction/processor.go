package transaction

import (
	"context"

	"github.com/carson-networks/finpro-ledger/internal/operator/actions"
)

// actionProcessor runs a ledger mutation for a principal; implemented by the operator.
type actionProcessor interface {
	Process(ctx context.Context, principalID string, action actions.IAction) error
}
