package kv

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	store, err := NewStore(fsys, "/data")
	require.NoError(t, err)
	return store, fsys
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	data, ok, err := store.Get(KeyProfile)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestStore_PutReplacesWholeValue(t *testing.T) {
	store, fsys := newTestStore(t)

	require.NoError(t, store.Put(KeyProfile, []byte(`{"name":"first","goal":"2000"}`)))
	require.NoError(t, store.Put(KeyProfile, []byte(`{"name":"x"}`)))

	data, ok, err := store.Get(KeyProfile)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"x"}`, string(data))

	exists, err := afero.Exists(fsys, "/data/"+KeyProfile+".json.tmp")
	assert.NoError(t, err)
	assert.False(t, exists, "temporary file is renamed away")
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Put(KeyProfile, []byte("profile")))
	require.NoError(t, store.Put(KeyLedgerDocument, []byte("ledger")))

	profile, _, _ := store.Get(KeyProfile)
	ledger, _, _ := store.Get(KeyLedgerDocument)
	assert.Equal(t, "profile", string(profile))
	assert.Equal(t, "ledger", string(ledger))
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Put(KeyProfile, []byte("profile")))
	require.NoError(t, store.Delete(KeyProfile))
	require.NoError(t, store.Delete(KeyProfile))

	_, ok, err := store.Get(KeyProfile)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_InvalidKey(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Error(t, store.Put("../escape", []byte("x")))
	_, _, err := store.Get("")
	assert.Error(t, err)
}

func TestStore_ReadOnlyFsSurfacesWriteError(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/data", 0o755))
	store := &Store{fs: afero.NewReadOnlyFs(base), dir: "/data"}

	err := store.Put(KeyProfile, []byte("x"))
	assert.Error(t, err)
}
