package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// Sessions keeps one LedgerStore per principal. The empty principal is the shared user of
// deployments without authentication.
type Sessions struct {
	tables func(principalID string) transaction.ITransactionTable
	opts   LedgerOptions

	mu      sync.Mutex
	ledgers map[string]*LedgerStore
}

// NewSessions creates a registry that builds ledgers over the table tables returns.
func NewSessions(tables func(principalID string) transaction.ITransactionTable, opts LedgerOptions) *Sessions {
	return &Sessions{
		tables:  tables,
		opts:    opts,
		ledgers: map[string]*LedgerStore{},
	}
}

// Ledger returns the principal's store, loading it from the backend on first use. A store
// whose first load fails is not kept, so the next call tries again.
func (s *Sessions) Ledger(ctx context.Context, principalID string) (*LedgerStore, error) {
	s.mu.Lock()
	ledger, ok := s.ledgers[principalID]
	s.mu.Unlock()
	if ok {
		return ledger, nil
	}

	ledger = NewLedgerStore(s.tables(principalID), s.opts)
	if err := ledger.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.ledgers[principalID]; ok {
		return existing, nil
	}
	s.ledgers[principalID] = ledger
	logrus.WithField("principal", principalID).Debug("Sessions.Ledger.loaded")
	return ledger, nil
}

// List returns the principal's snapshot filtered by search.
func (s *Sessions) List(ctx context.Context, principalID, search string) ([]Transaction, error) {
	ledger, err := s.Ledger(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return ledger.Search(search), nil
}

// Summary aggregates the principal's snapshot against monthlyGoal.
func (s *Sessions) Summary(ctx context.Context, principalID string, monthlyGoal decimal.Decimal) (Summary, error) {
	ledger, err := s.Ledger(ctx, principalID)
	if err != nil {
		return Summary{}, err
	}
	return ledger.Summary(monthlyGoal), nil
}
