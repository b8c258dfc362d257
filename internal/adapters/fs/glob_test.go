package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsu/internal/adapters/fs"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o750))
	}
}

func TestGlobExpander_ExpandDirs_PositiveOnly(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "packages/a", "packages/b", "apps/web")

	g := fs.NewGlobExpander()
	dirs, err := g.ExpandDirs([]string{"packages/*"}, root)
	require.NoError(t, err)

	assert.Len(t, dirs, 2)
	for _, d := range dirs {
		assert.Contains(t, d, "packages")
	}
}

func TestGlobExpander_ExpandDirs_NegationSubtracts(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "packages/a", "packages/b", "packages/legacy")

	g := fs.NewGlobExpander()
	dirs, err := g.ExpandDirs([]string{"packages/*", "!packages/legacy"}, root)
	require.NoError(t, err)

	for _, d := range dirs {
		assert.NotContains(t, d, "legacy")
	}
	assert.Len(t, dirs, 2)
}

func TestGlobExpander_ExpandDirs_IgnoresFileMatches(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "packages/a")
	require.NoError(t, os.WriteFile(filepath.Join(root, "packages", "README.md"), []byte("x"), 0o600))

	g := fs.NewGlobExpander()
	dirs, err := g.ExpandDirs([]string{"packages/*"}, root)
	require.NoError(t, err)

	assert.Len(t, dirs, 1)
}
