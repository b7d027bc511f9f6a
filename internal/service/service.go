package service

import (
	"github.com/carson-networks/finpro-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Sessions *Sessions
	Profile  *ProfileService
}

// NewService creates a new Service over the given storage. opts.RefetchAfterMutation is
// taken from the backend.
func NewService(store *storage.Storage, opts LedgerOptions) (*Service, error) {
	profiles, err := NewProfileService(store.Profiles)
	if err != nil {
		return nil, err
	}

	opts.RefetchAfterMutation = store.RefetchAfterMutation()
	return &Service{
		Sessions: NewSessions(store.Transactions, opts),
		Profile:  profiles,
	}, nil
}
