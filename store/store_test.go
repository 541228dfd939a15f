package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// contract runs the shared KV behavior against a backend.
func contract(t *testing.T, kv KV) {
	t.Helper()

	var got payload
	require.ErrorIs(t, kv.Get("missing", &got), ErrNotFound)

	want := payload{Name: "cart_guest", Count: 3}
	require.NoError(t, kv.Put("k", want))
	require.NoError(t, kv.Get("k", &got))
	require.Equal(t, want, got)

	// Put replaces wholesale.
	want.Count = 9
	require.NoError(t, kv.Put("k", want))
	require.NoError(t, kv.Get("k", &got))
	require.Equal(t, 9, got.Count)

	require.NoError(t, kv.Delete("k"))
	require.ErrorIs(t, kv.Get("k", &got), ErrNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, kv.Delete("k"))
}

func TestMemoryContract(t *testing.T) {
	contract(t, NewMemory())
}

func TestSQLiteContract(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	defer kv.Close()
	contract(t, kv)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put("auth_user", payload{Name: "asha"}))
	require.NoError(t, kv.Close())

	kv, err = OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	var got payload
	require.NoError(t, kv.Get("auth_user", &got))
	require.Equal(t, "asha", got.Name)
}
