package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finpro-ledger/internal/locale"
	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// MutationState tracks where a ledger mutation currently is.
type MutationState int

const (
	StateIdle MutationState = iota
	StateValidating
	StatePersisting
	StateReconciling
)

func (s MutationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StatePersisting:
		return "persisting"
	case StateReconciling:
		return "reconciling"
	default:
		return "unknown"
	}
}

// LedgerOptions configures a LedgerStore.
type LedgerOptions struct {
	// RefetchAfterMutation reloads the whole ledger after every successful write instead of
	// merging the change into the in-memory snapshot.
	RefetchAfterMutation bool
	Now                  func() time.Time
	FormatDate           func(time.Time) string
	Logger               *logrus.Logger
}

// LedgerStore owns the in-memory snapshot of one user's transactions, newest first.
// Reads may run concurrently; callers serialize mutations.
type LedgerStore struct {
	table      transaction.ITransactionTable
	refetch    bool
	now        func() time.Time
	formatDate func(time.Time) string
	log        *logrus.Entry

	mu       sync.RWMutex
	snapshot []Transaction
	state    MutationState
}

// NewLedgerStore creates an empty store over table. Call Refresh to load it.
func NewLedgerStore(table transaction.ITransactionTable, opts LedgerOptions) *LedgerStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FormatDate == nil {
		opts.FormatDate = locale.DateFormatter("pt-BR")
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &LedgerStore{
		table:      table,
		refetch:    opts.RefetchAfterMutation,
		now:        opts.Now,
		formatDate: opts.FormatDate,
		log:        opts.Logger.WithField("component", "LedgerStore"),
	}
}

// State reports the current mutation state.
func (s *LedgerStore) State() MutationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *LedgerStore) transition(op string, to MutationState) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{
		"op":   op,
		"from": from.String(),
		"to":   to.String(),
	}).Debug("LedgerStore.transition")
}

// List returns a copy of the snapshot, newest first.
func (s *LedgerStore) List() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snapshot)
}

// Search returns the snapshot entries whose description contains term, ignoring case.
// An empty term returns everything.
func (s *LedgerStore) Search(term string) []Transaction {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.List()
	}
	needle := locale.Fold(term)

	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]Transaction, 0, len(s.snapshot))
	for _, t := range s.snapshot {
		if strings.Contains(locale.Fold(t.Description), needle) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Find looks up a transaction in the snapshot.
func (s *LedgerStore) Find(id string) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.snapshot[i], true
	}
	return Transaction{}, false
}

// Summary aggregates the current snapshot against monthlyGoal.
func (s *LedgerStore) Summary(monthlyGoal decimal.Decimal) Summary {
	return Summarize(s.List(), monthlyGoal)
}

// Refresh replaces the snapshot with the backend's full contents. On failure the previous
// snapshot is kept.
func (s *LedgerStore) Refresh(ctx context.Context) error {
	s.transition("refresh", StateReconciling)
	defer s.transition("refresh", StateIdle)

	if err := s.reload(ctx); err != nil {
		return &BackendUnavailableError{Op: "refresh", Err: err}
	}
	return nil
}

func (s *LedgerStore) reload(ctx context.Context) error {
	rows, err := s.table.LoadAll(ctx)
	if err != nil {
		s.log.WithError(err).Warn("LedgerStore.reload.failed")
		return err
	}

	next := make([]Transaction, len(rows))
	for i, row := range rows {
		next[i] = transactionFromStorage(row)
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()
	return nil
}

// Create validates draft, persists it and places the new record at the head of the snapshot.
func (s *LedgerStore) Create(ctx context.Context, draft Draft) (*Transaction, error) {
	defer s.transition("create", StateIdle)

	s.transition("create", StateValidating)
	valid, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	s.transition("create", StatePersisting)
	row, err := s.table.Insert(ctx, valid.toCreate(s.formatDate(s.now())))
	if err != nil {
		return nil, s.persistFailure(ctx, "create", "", err)
	}
	created := transactionFromStorage(row)

	s.transition("create", StateReconciling)
	if s.refetch {
		if err := s.reload(ctx); err == nil {
			if fresh, ok := s.Find(created.ID); ok {
				return &fresh, nil
			}
			return &created, nil
		}
		s.log.WithField("id", created.ID).Warn("LedgerStore.Create.mergingAfterFailedRefetch")
	}

	s.mu.Lock()
	s.snapshot = slices.Insert(s.snapshot, 0, created)
	s.mu.Unlock()
	return &created, nil
}

// Update overwrites the editable fields of id. Identity, display date and position are kept.
func (s *LedgerStore) Update(ctx context.Context, id string, draft Draft) (*Transaction, error) {
	defer s.transition("update", StateIdle)

	s.transition("update", StateValidating)
	valid, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	s.transition("update", StatePersisting)
	if err := s.table.UpdateByID(ctx, id, valid.toUpdate()); err != nil {
		return nil, s.persistFailure(ctx, "update", id, err)
	}

	s.transition("update", StateReconciling)
	if s.refetch {
		if err := s.reload(ctx); err == nil {
			if fresh, ok := s.Find(id); ok {
				return &fresh, nil
			}
			return nil, &NotFoundError{ID: id}
		}
		s.log.WithField("id", id).Warn("LedgerStore.Update.mergingAfterFailedRefetch")
	}

	if updated, ok := s.merge(id, valid); ok {
		return updated, nil
	}

	// The backend holds a record the snapshot never saw.
	s.log.WithField("id", id).Info("LedgerStore.Update.reloadingUnknownRecord")
	if err := s.reload(ctx); err != nil {
		return nil, &BackendUnavailableError{Op: "update", Err: err}
	}
	if fresh, ok := s.Find(id); ok {
		return &fresh, nil
	}
	return nil, &NotFoundError{ID: id}
}

func (s *LedgerStore) merge(id string, valid *validDraft) (*Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	s.snapshot[i].Description = valid.description
	s.snapshot[i].Amount = valid.amount
	s.snapshot[i].Category = valid.category
	updated := s.snapshot[i]
	return &updated, true
}

// Delete removes id from the snapshot before the backend confirms. If the backend refuses,
// the record goes back where it was.
func (s *LedgerStore) Delete(ctx context.Context, id string) error {
	defer s.transition("delete", StateIdle)
	s.transition("delete", StatePersisting)

	s.mu.Lock()
	index := s.indexOf(id)
	var removed Transaction
	if index >= 0 {
		removed = s.snapshot[index]
		s.snapshot = slices.Delete(s.snapshot, index, index+1)
	}
	s.mu.Unlock()

	if err := s.table.DeleteByID(ctx, id); err != nil {
		if index >= 0 {
			s.mu.Lock()
			s.snapshot = slices.Insert(s.snapshot, min(index, len(s.snapshot)), removed)
			s.mu.Unlock()
		}
		return s.persistFailure(ctx, "delete", id, err)
	}

	s.transition("delete", StateReconciling)
	if s.refetch {
		if err := s.reload(ctx); err != nil {
			s.log.WithField("id", id).Warn("LedgerStore.Delete.keepingOptimisticSnapshot")
		}
	}
	return nil
}

// persistFailure maps a backend error onto the service taxonomy. A stale id triggers a reload
// so the snapshot matches what the backend actually holds.
func (s *LedgerStore) persistFailure(ctx context.Context, op, id string, err error) error {
	entry := s.log.WithError(err).WithFields(logrus.Fields{"op": op, "id": id})
	if errors.Is(err, transaction.ErrNotFound) {
		entry.Info("LedgerStore.persist.notFound")
		_ = s.reload(ctx)
		return &NotFoundError{ID: id}
	}
	if errors.Is(err, transaction.ErrOwnership) {
		entry.Warn("LedgerStore.persist.forbidden")
		return &ForbiddenError{Op: op, ID: id, Err: err}
	}
	entry.Warn("LedgerStore.persist.failed")
	return &BackendUnavailableError{Op: op, Err: err}
}

// indexOf must be called with mu held.
func (s *LedgerStore) indexOf(id string) int {
	return slices.IndexFunc(s.snapshot, func(t Transaction) bool {
		return t.ID == id
	})
}
