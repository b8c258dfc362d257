package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsu/internal/adapters/cas"
	"go.trai.ch/wsu/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)

	entry := domain.CacheEntry{
		InputHash:        "abc123",
		DependencyHashes: map[string]string{"core": "def456"},
		LastBuild:        time.Now(),
		BuildDuration:    42,
		BuiltBy:          "wsu",
	}
	require.NoError(t, store.Put("app", entry))

	got, ok := store.Get("app")
	require.True(t, ok)
	assert.Equal(t, "abc123", got.InputHash)
	assert.True(t, store.IsValid("app", "abc123"))
	assert.False(t, store.IsValid("app", "other"))

	assert.Contains(t, store.CachedPackages(), "app")
}

func TestStore_Persistence(t *testing.T) {
	root := t.TempDir()
	store1, err := cas.NewStore(root)
	require.NoError(t, err)
	require.NoError(t, store1.Put("app", domain.CacheEntry{InputHash: "xyz"}))

	store2, err := cas.NewStore(root)
	require.NoError(t, err)
	got, ok := store2.Get("app")
	require.True(t, ok)
	assert.Equal(t, "xyz", got.InputHash)
}

func TestStore_InitCreatesGitignoreLine(t *testing.T) {
	root := t.TempDir()
	_, err := cas.NewStore(root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".wsu/")
}

func TestStore_InitIdempotentWithExistingGitignore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("node_modules/\n.wsu/\n"), 0o600))

	_, err := cas.NewStore(root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	count := 0
	for _, line := range splitLines(string(data)) {
		if line == ".wsu/" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func splitLines(s string) []string {
	var lines []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func TestStore_Invalidate(t *testing.T) {
	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)
	require.NoError(t, store.Put("app", domain.CacheEntry{InputHash: "abc"}))

	require.NoError(t, store.Invalidate("app"))
	_, ok := store.Get("app")
	assert.False(t, ok)
	assert.NotContains(t, store.CachedPackages(), "app")
}

func TestStore_InvalidateDependents(t *testing.T) {
	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)

	require.NoError(t, store.Put("core", domain.CacheEntry{InputHash: "a"}))
	require.NoError(t, store.Put("lib", domain.CacheEntry{InputHash: "b"}))
	require.NoError(t, store.Put("app", domain.CacheEntry{InputHash: "c"}))

	graph := domain.NewGraph()
	graph.AddNode("core")
	graph.AddNode("lib")
	graph.AddNode("app")
	graph.AddEdge("lib", "core")
	graph.AddEdge("app", "lib")

	require.NoError(t, store.InvalidateDependents("core", graph))

	_, libOK := store.Get("lib")
	_, appOK := store.Get("app")
	assert.False(t, libOK)
	assert.False(t, appOK)
}

func TestStore_Clear(t *testing.T) {
	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)
	require.NoError(t, store.Put("app", domain.CacheEntry{InputHash: "abc"}))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.CachedPackages())
}
