package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finpro-ledger/internal/config"
	"github.com/carson-networks/finpro-ledger/internal/storage/document"
	"github.com/carson-networks/finpro-ledger/internal/storage/kv"
	"github.com/carson-networks/finpro-ledger/internal/storage/profile"
	"github.com/carson-networks/finpro-ledger/internal/storage/sqlconfig"
	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// Storage holds the persistence backends selected at configuration time.
type Storage struct {
	DB       *sql.DB
	Backend  config.Backend
	Profiles profile.IProfileStore

	transactions func(principalID string) transaction.ITransactionTable
}

// NewStorage opens the backend named by env. The profile always stays in the local data
// directory, so theme and goal survive when transactions live remotely.
func NewStorage(env *config.Config) (*Storage, error) {
	store, err := kv.NewOsStore(env.DataDir)
	if err != nil {
		return nil, err
	}

	switch env.Backend {
	case config.BackendLocal:
		doc, err := document.Open(store, time.Now)
		if err != nil {
			return nil, err
		}
		return NewLocalStorage(doc), nil

	case config.BackendRemote:
		db, err := sql.Open("postgres", env.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		result, err := RunMigrations(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreVersion,
			"postMigrationVersion": result.PostVersion,
		}).Info("Storage.NewStorage.migrated")
		return NewRemoteStorage(db, profile.NewKVStore(store)), nil

	default:
		return nil, fmt.Errorf("unsupported ledger backend: %s", env.Backend)
	}
}

// NewLocalStorage serves ledger and profile from one local document.
func NewLocalStorage(doc *document.Document) *Storage {
	return &Storage{
		Backend:  config.BackendLocal,
		Profiles: doc,
		transactions: func(string) transaction.ITransactionTable {
			return doc
		},
	}
}

// NewRemoteStorage serves transactions from the remote table, scoped per principal.
func NewRemoteStorage(db *sql.DB, profiles profile.IProfileStore) *Storage {
	table := sqlconfig.NewTransactionsTable(db)
	return &Storage{
		DB:       db,
		Backend:  config.BackendRemote,
		Profiles: profiles,
		transactions: func(principalID string) transaction.ITransactionTable {
			return table.ForPrincipal(principalID)
		},
	}
}

// NewStorageWith wires arbitrary backends; used by tests.
func NewStorageWith(backend config.Backend, table transaction.ITransactionTable, profiles profile.IProfileStore) *Storage {
	return &Storage{
		Backend:  backend,
		Profiles: profiles,
		transactions: func(string) transaction.ITransactionTable {
			return table
		},
	}
}

// Transactions returns the transaction table visible to principalID. The local backend has a
// single owner and ignores it.
func (s *Storage) Transactions(principalID string) transaction.ITransactionTable {
	return s.transactions(principalID)
}

// RefetchAfterMutation reports whether the ledger must reload from the backend after each
// write rather than merging locally.
func (s *Storage) RefetchAfterMutation() bool {
	return s.Backend == config.BackendRemote
}

func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
