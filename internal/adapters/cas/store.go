// Package cas implements the on-disk build cache under a workspace's .wsu/
// directory: a workspace-wide manifest plus one cache.json/files.json pair
// per package.
package cas

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	cacheDirName      = ".wsu"
	packagesDirName   = "packages"
	manifestFileName  = "manifest.json"
	cacheEntryFile    = "cache.json"
	fileIndexFile     = "files.json"
	gitignoreFileName = ".gitignore"
	gitignoreLine     = ".wsu/"
)

var _ ports.Cache = (*Store)(nil)

// Store implements ports.Cache using the .wsu/ on-disk layout.
type Store struct {
	root string
	dir  string

	mu          sync.RWMutex
	manifest    domain.CacheManifest
	entries     map[string]domain.CacheEntry
	fileIndexes map[string]domain.FileIndex
}

// NewStore initializes (creating if absent) the .wsu/ directory under root,
// ensures root's .gitignore excludes it, and pre-loads every per-package
// entry the manifest references.
func NewStore(root string) (*Store, error) {
	s := &Store{
		root:        root,
		dir:         filepath.Join(root, cacheDirName),
		entries:     make(map[string]domain.CacheEntry),
		fileIndexes: make(map[string]domain.FileIndex),
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", s.dir)
	}
	if err := ensureGitignore(root); err != nil {
		return nil, err
	}

	s.manifest = loadManifest(s.manifestPath())
	for _, name := range s.manifest.Packages {
		entry, ok := loadEntry(s.entryPath(name))
		if !ok {
			continue
		}
		s.entries[name] = entry
		if idx, ok := loadFileIndex(s.fileIndexPath(name)); ok {
			s.fileIndexes[name] = idx
		}
	}

	return s, nil
}

func (s *Store) manifestPath() string          { return filepath.Join(s.dir, manifestFileName) }
func (s *Store) packageDir(name string) string { return filepath.Join(s.dir, packagesDirName, name) }
func (s *Store) entryPath(name string) string  { return filepath.Join(s.packageDir(name), cacheEntryFile) }
func (s *Store) fileIndexPath(name string) string {
	return filepath.Join(s.packageDir(name), fileIndexFile)
}

// IsValid reports whether pkgName has a cache entry whose InputHash matches.
func (s *Store) IsValid(pkgName, inputHash string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[pkgName]
	return ok && entry.InputHash == inputHash
}

// Get returns the stored entry for pkgName, if any.
func (s *Store) Get(pkgName string) (domain.CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[pkgName]
	return entry, ok
}

// Put stores entry for pkgName, persisting cache.json and adding pkgName to
// the manifest if absent.
func (s *Store) Put(pkgName string, entry domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "package", pkgName)
	}
	if err := writeFileAtomic(s.entryPath(pkgName), data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "package", pkgName)
	}

	s.entries[pkgName] = entry
	if !s.manifest.Contains(pkgName) {
		s.manifest.Add(pkgName)
		if err := s.saveManifestLocked(); err != nil {
			return err
		}
	}
	return nil
}

// getFileIndex returns the FileIndex for pkgName, if any (used internally by
// the input-hash composer; not part of ports.Cache since it is purely a
// speedup, not correctness-bearing state).
func (s *Store) getFileIndex(pkgName string) domain.FileIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileIndexes[pkgName]
}

// putFileIndex persists idx for pkgName.
func (s *Store) putFileIndex(pkgName string, idx domain.FileIndex) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "package", pkgName)
	}
	if err := writeFileAtomic(s.fileIndexPath(pkgName), data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "package", pkgName)
	}
	s.fileIndexes[pkgName] = idx
	return nil
}

// Invalidate removes pkgName's cache entry and manifest listing. files.json
// is left on disk as a purely advisory speedup for the next hash.
func (s *Store) Invalidate(pkgName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidateLocked(pkgName)
}

func (s *Store) invalidateLocked(pkgName string) error {
	delete(s.entries, pkgName)
	s.manifest.Remove(pkgName)
	if err := os.Remove(s.entryPath(pkgName)); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "package", pkgName)
	}
	return s.saveManifestLocked()
}

// InvalidateDependents removes the cache entries of every workspace package
// that (transitively) depends on pkgName, per graph's reverse edges.
func (s *Store) InvalidateDependents(pkgName string, graph *domain.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	queue := []string{pkgName}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dependent := range graph.Dependents(cur) {
			if seen[dependent] {
				continue
			}
			seen[dependent] = true
			if err := s.invalidateLocked(dependent); err != nil {
				return err
			}
			queue = append(queue, dependent)
		}
	}
	return nil
}

// Clear removes every per-package cache entry and empties the manifest.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(filepath.Join(s.dir, packagesDirName)); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", s.dir)
	}
	s.entries = make(map[string]domain.CacheEntry)
	s.fileIndexes = make(map[string]domain.FileIndex)
	s.manifest = domain.CacheManifest{Version: domain.CurrentManifestVersion}
	return s.saveManifestLocked()
}

// CachedPackages returns the names currently listed in the manifest, sorted.
func (s *Store) CachedPackages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.manifest.Packages))
	copy(names, s.manifest.Packages)
	sort.Strings(names)
	return names
}

func (s *Store) saveManifestLocked() error {
	s.manifest.Version = domain.CurrentManifestVersion
	data, err := json.MarshalIndent(s.manifest, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", s.manifestPath())
	}
	if err := writeFileAtomic(s.manifestPath(), data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", s.manifestPath())
	}
	return nil
}

// loadManifest reads manifest.json, tolerating absence, corruption, and
// version mismatch by silently returning an empty manifest in those cases.
func loadManifest(path string) domain.CacheManifest {
	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-internal
	if err != nil {
		return domain.CacheManifest{Version: domain.CurrentManifestVersion}
	}

	var m domain.CacheManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.CacheManifest{Version: domain.CurrentManifestVersion}
	}
	if m.Version != domain.CurrentManifestVersion {
		return domain.CacheManifest{Version: domain.CurrentManifestVersion}
	}
	return m
}

func loadEntry(path string) (domain.CacheEntry, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-internal
	if err != nil {
		return domain.CacheEntry{}, false
	}
	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CacheEntry{}, false
	}
	return entry, true
}

func loadFileIndex(path string) (domain.FileIndex, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-internal
	if err != nil {
		return nil, false
	}
	var idx domain.FileIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, false
	}
	return idx, true
}

// ensureGitignore appends the cache directory's ignore line to root's
// .gitignore, creating the file if absent. Idempotent: a no-op if any
// equivalent line is already present.
func ensureGitignore(root string) error {
	path := filepath.Join(root, gitignoreFileName)

	f, err := os.OpenFile(path, os.O_RDONLY, 0) //nolint:gosec // fixed filename under workspace root
	if err == nil {
		defer f.Close() //nolint:errcheck // read-only handle
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == gitignoreLine || line == strings.TrimSuffix(gitignoreLine, "/") {
				return nil
			}
		}
	} else if !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", path)
	}

	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // fixed filename under workspace root
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", path)
	}
	defer out.Close() //nolint:errcheck // best effort close

	if _, err := out.WriteString(gitignoreLine + "\n"); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheIOError, err.Error()), "path", path)
	}
	return nil
}
