package operator

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/carson-networks/finpro-ledger/internal/operator/actions"
	"github.com/carson-networks/finpro-ledger/internal/service"
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With one worker every ledger mutation runs to completion before the next one starts.
type OperatorDelegator struct {
	sessions   *service.Sessions
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(s *service.Sessions, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		sessions:   s,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.sessions, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process queues action against principalID's ledger and waits for it to finish. A cancelled
// ctx only aborts the action if no worker has picked it up yet; otherwise Process waits for
// the real outcome.
func (d *OperatorDelegator) Process(ctx context.Context, principalID string, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:         ctx,
		principalID: principalID,
		action:      action,
		response:    respCh,
		state:       new(atomic.Int32),
	}

	select {
	case d.queue <- item:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		if item.state.CompareAndSwap(itemPending, itemAbandoned) {
			return ctx.Err()
		}
		return (<-respCh).err
	}
}
