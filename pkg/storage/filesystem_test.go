package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResolvesUnderBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "exports")
	store := NewLocalStorage(base)

	path, err := store.Save("reports/careers.csv", []byte("ID,Name\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "reports", "careers.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name\n", string(raw))
}

func TestSaveKeepsAbsolutePaths(t *testing.T) {
	store := NewLocalStorage(t.TempDir())
	target := filepath.Join(t.TempDir(), "groups.pdf")

	path, err := store.Save(target, []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, target, path)
}

func TestSaveRequiresName(t *testing.T) {
	_, err := NewLocalStorage(t.TempDir()).Save("", nil)
	assert.Error(t, err)
}

func TestDefaultBaseDir(t *testing.T) {
	assert.Equal(t, filepath.Join("exports", "a.csv"), NewLocalStorage("").Path("a.csv"))
}
