package domain

import "time"

// MissingHash is the sentinel recorded for a dependency that has no cache
// entry at the time a CacheEntry's dependency hashes are snapshotted.
const MissingHash = "MISSING"

// CacheEntry is the persisted build-cache record for a single package.
type CacheEntry struct {
	// InputHash is the canonical fingerprint of all inputs at the time of
	// the last successful build.
	InputHash string `json:"input_hash"`

	// DependencyHashes snapshots each declared workspace dependency's
	// InputHash at record time. A name with no entry records MissingHash.
	DependencyHashes map[string]string `json:"dependency_hashes"`

	LastBuild     time.Time `json:"last_build"`
	BuildDuration int64     `json:"build_duration_ms"`
	BuiltBy       string    `json:"built_by"`
}

// FileRecord is one entry of a package's FileIndex.
type FileRecord struct {
	ModTime time.Time `json:"mtime"`
	Size    int64     `json:"size"`
	// Fingerprint is an xxhash digest of (ModTime, Size), the fast-path key
	// compared against a file's current stat before falling back to a full
	// content hash.
	Fingerprint uint64 `json:"fingerprint"`
	Hash        string `json:"hash"`
}

// FileIndex maps a POSIX-normalized path (relative to the package directory)
// to its last-known stat/hash. It is purely a speedup: entries are trusted
// only when the current stat's Fingerprint still matches.
type FileIndex map[string]FileRecord

// CacheManifest is the workspace-wide index of which packages have on-disk
// cache entries. It is the source of truth for manifest bookkeeping;
// inconsistency with disk is tolerated on load.
type CacheManifest struct {
	Version  int      `json:"version"`
	Packages []string `json:"packages"`
}

// CurrentManifestVersion is the manifest schema version this build of wsu writes.
const CurrentManifestVersion = 1

// Contains reports whether name is listed in the manifest.
func (m *CacheManifest) Contains(name string) bool {
	for _, n := range m.Packages {
		if n == name {
			return true
		}
	}
	return false
}

// Add appends name to the manifest if not already present.
func (m *CacheManifest) Add(name string) {
	if !m.Contains(name) {
		m.Packages = append(m.Packages, name)
	}
}

// Remove deletes name from the manifest, if present.
func (m *CacheManifest) Remove(name string) {
	for i, n := range m.Packages {
		if n == name {
			m.Packages = append(m.Packages[:i], m.Packages[i+1:]...)
			return
		}
	}
}
