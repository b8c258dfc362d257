package app_test

import (
	"sort"
	"strings"

	"go.trai.ch/wsu/internal/core/domain"
)

// fakeCache is a minimal in-memory ports.Cache, used where Build's
// batch-by-batch interaction with the cache is the thing under test and a
// gomock expectation sequence would be too rigid to express it.
type fakeCache struct {
	entries map[string]domain.CacheEntry
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]domain.CacheEntry)}
}

func (c *fakeCache) IsValid(pkgName, inputHash string) bool {
	e, ok := c.entries[pkgName]
	return ok && e.InputHash == inputHash
}

func (c *fakeCache) Get(pkgName string) (domain.CacheEntry, bool) {
	e, ok := c.entries[pkgName]
	return e, ok
}

func (c *fakeCache) Put(pkgName string, entry domain.CacheEntry) error {
	c.entries[pkgName] = entry
	return nil
}

func (c *fakeCache) Invalidate(pkgName string) error {
	delete(c.entries, pkgName)
	return nil
}

func (c *fakeCache) InvalidateDependents(pkgName string, graph *domain.Graph) error {
	for _, dep := range graph.Dependents(pkgName) {
		delete(c.entries, dep)
	}
	return nil
}

func (c *fakeCache) Clear() error {
	c.entries = make(map[string]domain.CacheEntry)
	return nil
}

func (c *fakeCache) CachedPackages() []string {
	names := make([]string, 0, len(c.entries))
	for n := range c.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// fakeHasher computes a hash from a package's name, a test-controlled
// "source version" counter, and its dependency-hash snapshot, standing in
// for the real manifest+files+depHashes composition.
type fakeHasher struct {
	sourceVersion map[string]int
}

func newFakeHasher() *fakeHasher {
	return &fakeHasher{sourceVersion: make(map[string]int)}
}

func (h *fakeHasher) Compute(pkg *domain.PackageInfo, _ string, depHashes map[string]string) (string, error) {
	keys := make([]string, 0, len(depHashes))
	for k := range depHashes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(pkg.Name.String())
	b.WriteString(":v")
	b.WriteString(itoa(h.sourceVersion[pkg.Name.String()]))
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(depHashes[k])
	}
	return b.String(), nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}
