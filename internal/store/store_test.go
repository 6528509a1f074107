package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	return map[string]Store{
		"file":   fileStore,
		"memory": NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			in := record{Name: "schedule", Count: 14}
			require.NoError(t, st.Set("sample", in))

			var out record
			require.NoError(t, st.Get("sample", &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestStoreMissingKey(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			var out record
			err := st.Get("absent", &out)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			require.NoError(t, st.Set("sample", record{Name: "x"}))
			require.NoError(t, st.Delete("sample"))

			var out record
			assert.ErrorIs(t, st.Get("sample", &out), ErrNotFound)

			// Deleting an absent key is fine
			assert.NoError(t, st.Delete("sample"))
		})
	}
}

func TestStoreKeys(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			require.NoError(t, st.Set("books", []record{}))
			require.NoError(t, st.Set("volunteers", []record{}))

			keys, err := st.Keys()
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"books", "volunteers"}, keys)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			require.NoError(t, st.Set("sample", record{Count: 1}))
			require.NoError(t, st.Set("sample", record{Count: 2}))

			var out record
			require.NoError(t, st.Get("sample", &out))
			assert.Equal(t, 2, out.Count)
		})
	}
}

func TestFileStoreMalformedValueTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "schedule.json"), []byte("{not json"), 0o644))

	var out []record
	assert.ErrorIs(t, st.Get("schedule", &out), ErrNotFound)

	// The next write replaces the corrupt document
	require.NoError(t, st.Set("schedule", []record{{Name: "ok"}}))
	require.NoError(t, st.Get("schedule", &out))
	assert.Len(t, out, 1)
}

func TestFileStoreKeySanitization(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, st.Set("../escape", record{Name: "x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")
}
