package tests

import (
	"context"
	"path/filepath"
	"testing"

	"tiffin-finder/storefront/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotDoc struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tiffin.db")
	store, err := localstore.Open(path)
	require.NoError(t, err)

	var doc snapshotDoc
	found, err := store.Load(ctx, "missing", &doc)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "order-storage", snapshotDoc{Name: "first", Items: []string{"dal"}}))
	require.NoError(t, store.Save(ctx, "order-storage", snapshotDoc{Name: "second", Items: []string{"roti", "sabzi"}}))
	require.NoError(t, store.Save(ctx, "auth-storage", snapshotDoc{Name: "other"}))
	require.NoError(t, store.Close())

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	found, err = reopened.Load(ctx, "order-storage", &doc)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, snapshotDoc{Name: "second", Items: []string{"roti", "sabzi"}}, doc)

	require.NoError(t, reopened.Delete(ctx, "order-storage"))
	found, err = reopened.Load(ctx, "order-storage", &snapshotDoc{})
	require.NoError(t, err)
	assert.False(t, found)

	var other snapshotDoc
	found, err = reopened.Load(ctx, "auth-storage", &other)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "other", other.Name)
}

func TestSQLite_InMemory(t *testing.T) {
	ctx := context.Background()
	store, err := localstore.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, "ns", map[string]int{"count": 3}))
	var got map[string]int
	found, err := store.Load(ctx, "ns", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got["count"])
}
