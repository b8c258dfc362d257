package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsu/internal/adapters/fs"
)

func TestHasher_HashFile_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	hasher := fs.NewHasher()
	h1, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, h1, 64) // hex SHA-256

	h2, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHasher_HashFile_ChangesWithContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.txt")
	hasher := fs.NewHasher()

	require.NoError(t, os.WriteFile(path, []byte("one"), 0o600))
	h1, err := hasher.HashFile(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o600))
	h2, err := hasher.HashFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHasher_HashFile_MissingFile(t *testing.T) {
	hasher := fs.NewHasher()
	_, err := hasher.HashFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
