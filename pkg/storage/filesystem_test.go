package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveOpenDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save("transcript/job-1.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "transcript/job-1.csv", rel)

	file, err := store.Open(rel)
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))

	require.NoError(t, store.Delete(rel))
	_, err = store.Open(rel)
	assert.Error(t, err)

	// Deleting a missing file is not an error.
	assert.NoError(t, store.Delete(rel))
}

func TestLocalStorageCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	old, err := store.Save("old.csv", []byte("old"))
	require.NoError(t, err)
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, old), stale, stale))

	fresh, err := store.Save("fresh.csv", []byte("fresh"))
	require.NoError(t, err)

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"old.csv"}, deleted)

	file, err := store.Open(fresh)
	require.NoError(t, err)
	file.Close()
}
