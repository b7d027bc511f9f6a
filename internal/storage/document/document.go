// Package document is the local persistence backend: the whole ledger and the profile live in
// one JSON document under a single key. The document is read once when opened and rewritten
// wholesale on every mutation.
package document

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finpro-ledger/internal/storage/kv"
	"github.com/carson-networks/finpro-ledger/internal/storage/profile"
	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

var (
	_ transaction.ITransactionTable = (*Document)(nil)
	_ profile.IProfileStore         = (*Document)(nil)
)

type ledgerDocument struct {
	Transactions []documentRow   `json:"transactions"`
	Profile      *profile.Profile `json:"user,omitempty"`
}

type documentRow struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Category    string          `json:"category"`
	DateDisplay string          `json:"date_display"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Document implements both storage ports over the ledger document key.
type Document struct {
	mu     sync.Mutex
	kv     *kv.Store
	now    func() time.Time
	doc    ledgerDocument
	lastID int64
}

// Open reads the document once. A missing key starts an empty ledger.
func Open(store *kv.Store, now func() time.Time) (*Document, error) {
	if now == nil {
		now = time.Now
	}
	d := &Document{kv: store, now: now}

	data, ok, err := store.Get(kv.KeyLedgerDocument)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(data, &d.doc); err != nil {
			return nil, fmt.Errorf("document: decode: %w", err)
		}
	}
	for _, row := range d.doc.Transactions {
		if n, err := strconv.ParseInt(row.ID, 10, 64); err == nil && n > d.lastID {
			d.lastID = n
		}
	}
	return d, nil
}

// LoadAll returns the ledger newest first. Order is maintained by prepending on insert.
func (d *Document) LoadAll(_ context.Context) ([]*transaction.Transaction, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := make([]*transaction.Transaction, len(d.doc.Transactions))
	for i, row := range d.doc.Transactions {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// Insert mints a millisecond timestamp id and prepends the record.
func (d *Document) Insert(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	id := now.UnixMilli()
	if id <= d.lastID {
		id = d.lastID + 1
	}

	row := documentRow{
		ID:          strconv.FormatInt(id, 10),
		Description: create.Description,
		Value:       create.Amount,
		Category:    create.Category,
		DateDisplay: create.DisplayDate,
		Type:        create.Type,
		CreatedAt:   now,
	}

	next := d.doc
	next.Transactions = append([]documentRow{row}, d.doc.Transactions...)
	if err := d.commit(next); err != nil {
		return nil, err
	}
	d.lastID = id
	return rowToTransaction(row), nil
}

func (d *Document) UpdateByID(_ context.Context, id string, update *transaction.TransactionUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return transaction.ErrNotFound
	}

	current := rowToTransaction(d.doc.Transactions[idx])
	update.Apply(current)

	next := d.doc
	next.Transactions = slices.Clone(d.doc.Transactions)
	next.Transactions[idx] = transactionToRow(current)
	return d.commit(next)
}

func (d *Document) DeleteByID(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return transaction.ErrNotFound
	}

	next := d.doc
	next.Transactions = slices.Delete(slices.Clone(d.doc.Transactions), idx, idx+1)
	return d.commit(next)
}

// Load returns the profile stored alongside the ledger.
func (d *Document) Load() (*profile.Profile, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.doc.Profile == nil {
		return nil, false, nil
	}
	p := *d.doc.Profile
	return &p, true, nil
}

func (d *Document) Save(p *profile.Profile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	saved := *p
	next := d.doc
	next.Profile = &saved
	return d.commit(next)
}

// commit writes next wholesale and only adopts it once the write succeeded.
func (d *Document) commit(next ledgerDocument) error {
	if next.Transactions == nil {
		next.Transactions = []documentRow{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	if err := d.kv.Put(kv.KeyLedgerDocument, data); err != nil {
		return err
	}
	d.doc = next
	return nil
}

func (d *Document) indexOf(id string) int {
	return slices.IndexFunc(d.doc.Transactions, func(row documentRow) bool {
		return row.ID == id
	})
}

func rowToTransaction(row documentRow) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Value,
		Category:    row.Category,
		DisplayDate: row.DateDisplay,
		Type:        row.Type,
		CreatedAt:   row.CreatedAt,
	}
}

func transactionToRow(t *transaction.Transaction) documentRow {
	return documentRow{
		ID:          t.ID,
		Description: t.Description,
		Value:       t.Amount,
		Category:    t.Category,
		DateDisplay: t.DisplayDate,
		Type:        t.Type,
		CreatedAt:   t.CreatedAt,
	}
}
