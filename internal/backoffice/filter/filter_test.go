package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(filepath.Join(t.TempDir(), "bureau", "filters.json"))
}

func TestStore_RoundTrip(t *testing.T) {
	store := newStore(t)

	saved := State{Filter: "no_action", Search: "ayesha", Page: 3}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStore_LoadMissingFileIsZeroState(t *testing.T) {
	store := newStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, loaded.IsZero())
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(State{Filter: "pinned"}))
	require.NoError(t, store.Save(State{Search: "bilal"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, State{Search: "bilal"}, loaded)
}

func TestStore_Clear(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(State{Filter: "online"}))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, loaded.IsZero())

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}
