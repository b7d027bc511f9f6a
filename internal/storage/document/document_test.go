package document

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finpro-ledger/internal/storage/kv"
	"github.com/carson-networks/finpro-ledger/internal/storage/profile"
	"github.com/carson-networks/finpro-ledger/internal/storage/transaction"
)

// switchableFs fails every file open once fail is set.
type switchableFs struct {
	afero.Fs
	fail bool
}

func (f *switchableFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.fail {
		return nil, errors.New("disk full")
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func openTestDocument(t *testing.T, fsys afero.Fs, now func() time.Time) *Document {
	t.Helper()
	store, err := kv.NewStore(fsys, "/data")
	require.NoError(t, err)
	doc, err := Open(store, now)
	require.NoError(t, err)
	return doc
}

func lunch() *transaction.TransactionCreate {
	return &transaction.TransactionCreate{
		Description: "Lunch",
		Amount:      decimal.RequireFromString("-50"),
		Category:    "Food",
		DisplayDate: "16 de out.",
		Type:        transaction.TypeOut,
	}
}

func TestDocument_InsertPrependsAndMintsTimestampIDs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	doc := openTestDocument(t, afero.NewMemMapFs(), frozenClock(now))

	first, err := doc.Insert(ctx, lunch())
	require.NoError(t, err)
	second, err := doc.Insert(ctx, &transaction.TransactionCreate{
		Description: "Pay",
		Amount:      decimal.RequireFromString("3000"),
		Category:    "Salary",
		DisplayDate: "16 de out.",
		Type:        transaction.TypeIn,
	})
	require.NoError(t, err)

	assert.Equal(t, "1792152000000", first.ID)
	assert.Equal(t, "1792152000001", second.ID, "ids stay unique when the clock does not advance")

	rows, err := doc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pay", rows[0].Description, "newest first")
	assert.Equal(t, "Lunch", rows[1].Description)
}

func TestDocument_ReopenReadsPersistedState(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	doc := openTestDocument(t, fsys, frozenClock(time.UnixMilli(1000)))

	inserted, err := doc.Insert(ctx, lunch())
	require.NoError(t, err)

	reopened := openTestDocument(t, fsys, frozenClock(time.UnixMilli(500)))
	rows, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inserted.ID, rows[0].ID)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("-50")))

	next, err := reopened.Insert(ctx, lunch())
	require.NoError(t, err)
	assert.Equal(t, "1001", next.ID, "minting continues after the largest stored id")
}

func TestDocument_UpdateKeepsIDAndDisplayDate(t *testing.T) {
	ctx := context.Background()
	doc := openTestDocument(t, afero.NewMemMapFs(), nil)

	inserted, err := doc.Insert(ctx, lunch())
	require.NoError(t, err)

	err = doc.UpdateByID(ctx, inserted.ID, &transaction.TransactionUpdate{
		Description: omit.From("Dinner"),
		Amount:      omit.From(decimal.RequireFromString("-80")),
		Category:    omit.From("Leisure"),
		Type:        omit.From(transaction.TypeOut),
	})
	require.NoError(t, err)

	rows, err := doc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inserted.ID, rows[0].ID)
	assert.Equal(t, "16 de out.", rows[0].DisplayDate)
	assert.Equal(t, "Dinner", rows[0].Description)
	assert.Equal(t, "Leisure", rows[0].Category)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("-80")))
}

func TestDocument_MissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	doc := openTestDocument(t, afero.NewMemMapFs(), nil)

	err := doc.UpdateByID(ctx, "42", &transaction.TransactionUpdate{Description: omit.From("x")})
	assert.ErrorIs(t, err, transaction.ErrNotFound)

	err = doc.DeleteByID(ctx, "42")
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestDocument_Delete(t *testing.T) {
	ctx := context.Background()
	doc := openTestDocument(t, afero.NewMemMapFs(), nil)

	inserted, err := doc.Insert(ctx, lunch())
	require.NoError(t, err)
	require.NoError(t, doc.DeleteByID(ctx, inserted.ID))

	rows, err := doc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDocument_FailedWriteLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	fsys := &switchableFs{Fs: afero.NewMemMapFs()}
	doc := openTestDocument(t, fsys, nil)

	inserted, err := doc.Insert(ctx, lunch())
	require.NoError(t, err)

	fsys.fail = true
	_, err = doc.Insert(ctx, lunch())
	assert.Error(t, err)
	assert.Error(t, doc.DeleteByID(ctx, inserted.ID))

	rows, err := doc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inserted.ID, rows[0].ID)
}

func TestDocument_ProfileSharesTheDocument(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	doc := openTestDocument(t, fsys, nil)

	_, ok, err := doc.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = doc.Insert(ctx, lunch())
	require.NoError(t, err)
	require.NoError(t, doc.Save(&profile.Profile{DisplayName: "Ana", MonthlyGoal: decimal.NewFromInt(900)}))

	reopened := openTestDocument(t, fsys, nil)
	p, ok, err := reopened.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana", p.DisplayName)
	rows, err := reopened.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "saving the profile rewrites the ledger with it")
}
