package ports

import "go.trai.ch/wsu/internal/core/domain"

// Cache is the build cache port (spec.md §4.E): per-package validity
// checks, reads/writes of CacheEntry records, invalidation, and clearing.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// IsValid reports whether pkg has a cache entry whose stored InputHash
	// equals inputHash.
	IsValid(pkgName, inputHash string) bool

	// Get returns the stored entry for pkgName, if any.
	Get(pkgName string) (domain.CacheEntry, bool)

	// Put stores entry for pkgName and adds pkgName to the manifest if absent.
	Put(pkgName string, entry domain.CacheEntry) error

	// Invalidate removes pkgName's cache entry and manifest listing.
	Invalidate(pkgName string) error

	// InvalidateDependents removes the cache entries of every workspace
	// package that (transitively) depends on pkgName, per graph.
	InvalidateDependents(pkgName string, graph *domain.Graph) error

	// Clear removes every per-package cache entry and empties the manifest.
	Clear() error

	// CachedPackages returns the names currently listed in the manifest.
	CachedPackages() []string
}
