package operator

import (
	"context"
	"sync/atomic"

	"github.com/carson-networks/finpro-ledger/internal/operator/actions"
	"github.com/carson-networks/finpro-ledger/internal/service"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	sessions *service.Sessions
	queue    chan ActionItem
}

func NewOperator(s *service.Sessions, queue chan ActionItem) *Operator {
	return &Operator{
		sessions: s,
		queue:    queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

// processItem skips items whose caller already gave up. Once an action starts it runs to
// completion even if the caller's context is cancelled.
func (o *Operator) processItem(item ActionItem) {
	if item.ctx.Err() != nil || !item.state.CompareAndSwap(itemPending, itemRunning) {
		item.response <- ActionItemResponse{err: context.Cause(item.ctx)}
		return
	}
	ctx := context.WithoutCancel(item.ctx)

	ledger, err := o.sessions.Ledger(ctx, item.principalID)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(ctx, ledger)
	item.response <- ActionItemResponse{err: err}
}

const (
	itemPending int32 = iota
	itemRunning
	itemAbandoned
)

type ActionItem struct {
	ctx         context.Context
	principalID string
	action      actions.IAction
	response    chan ActionItemResponse
	state       *atomic.Int32
}

type ActionItemResponse struct {
	err error
}
