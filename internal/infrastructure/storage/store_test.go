package storage_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

func storesUnderTest(t *testing.T) map[string]storage.Store {
	t.Helper()
	fileStore, err := storage.NewFileStore(filepath.Join(t.TempDir(), "nested", "state.json"))
	require.NoError(t, err)
	return map[string]storage.Store{
		"memory": storage.NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, storage.KeyToken)
			assert.ErrorIs(t, err, domain.ErrNotFound)

			require.NoError(t, s.Set(ctx, storage.KeyToken, json.RawMessage(`"abc"`)))
			got, err := s.Get(ctx, storage.KeyToken)
			require.NoError(t, err)
			assert.JSONEq(t, `"abc"`, string(got))

			require.NoError(t, s.Delete(ctx, storage.KeyToken))
			_, err = s.Get(ctx, storage.KeyToken)
			assert.ErrorIs(t, err, domain.ErrNotFound)

			// Borrar una clave inexistente no es error.
			assert.NoError(t, s.Delete(ctx, "nope"))
		})
	}
}

func TestGetSetJSON(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	var out []string
	found, err := storage.GetJSON(ctx, s, storage.KeyNotifications, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.SetJSON(ctx, s, storage.KeyNotifications, []string{"a", "b"}))
	found, err = storage.GetJSON(ctx, s, storage.KeyNotifications, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, s.Set(ctx, storage.KeyNotifications, json.RawMessage(`{"no":"lista"}`)))
	found, err = storage.GetJSON(ctx, s, storage.KeyNotifications, &out)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestFileStore_PersisteEntreInstancias(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	a, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, storage.SetJSON(ctx, a, storage.KeyToken, "tok-1"))
	require.NoError(t, storage.SetJSON(ctx, a, storage.KeyNotifications, []int{1}))

	b, err := storage.NewFileStore(path)
	require.NoError(t, err)
	var tok string
	found, err := storage.GetJSON(ctx, b, storage.KeyToken, &tok)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok-1", tok)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no deben quedar temporales")
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	s, err := storage.NewFileStore(path)
	require.NoError(t, err)
	_, err = s.Get(context.Background(), storage.KeyToken)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
