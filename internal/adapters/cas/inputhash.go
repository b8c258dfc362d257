package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wsu/internal/adapters/fs"
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
)

// InputHasher composes a package's input hash per the three-part recipe:
// manifest bytes, sorted source-file hashes, sorted dependency hashes. It
// owns the FileIndex mtime/size fast path, persisting updates to the Store
// that backs it.
type InputHasher struct {
	store  *Store
	hasher ports.Hasher
	walker *fs.Walker
	vcs    ports.VCSIgnoreChecker
}

// NewInputHasher creates an InputHasher backed by store.
func NewInputHasher(store *Store, hasher ports.Hasher, walker *fs.Walker, vcs ports.VCSIgnoreChecker) *InputHasher {
	return &InputHasher{store: store, hasher: hasher, walker: walker, vcs: vcs}
}

// Compute returns pkg's input hash given the snapshot of dependency hashes
// (one entry per name in pkg.AllDependencyNames(), MissingHash where absent).
func (h *InputHasher) Compute(pkg *domain.PackageInfo, workspaceRoot string, depHashes map[string]string) (string, error) {
	digest := sha256.New()

	manifestHash, err := h.hasher.HashFile(filepath.Join(pkg.Path, "package.json"))
	if err != nil {
		return "", err
	}
	digest.Write([]byte(manifestHash)) //nolint:errcheck // hash.Hash.Write never errors
	digest.Write([]byte{'\n'})         //nolint:errcheck

	fileHashes, err := h.sourceFileHashes(pkg, workspaceRoot)
	if err != nil {
		return "", err
	}
	pairs := make([]string, 0, len(fileHashes))
	for relPath, fileHash := range fileHashes {
		pairs = append(pairs, relPath+":"+fileHash)
	}
	sort.Strings(pairs)
	digest.Write([]byte(strings.Join(pairs, ","))) //nolint:errcheck
	digest.Write([]byte{'\n'})                     //nolint:errcheck

	depPairs := make([]string, 0, len(depHashes))
	for name, hash := range depHashes {
		depPairs = append(depPairs, name+":"+hash)
	}
	sort.Strings(depPairs)
	digest.Write([]byte(strings.Join(depPairs, ","))) //nolint:errcheck

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// sourceFileHashes returns pkg's filtered source set as POSIX-relative-path
// to content-hash, reusing and updating the package's FileIndex.
func (h *InputHasher) sourceFileHashes(pkg *domain.PackageInfo, workspaceRoot string) (map[string]string, error) {
	var candidates []string
	for path := range h.walker.WalkFiles(pkg.Path, nil) {
		rel, err := filepath.Rel(workspaceRoot, path)
		if err != nil {
			continue
		}
		candidates = append(candidates, filepath.ToSlash(rel))
	}

	filtered := h.vcs.FilterIgnored(workspaceRoot, candidates)

	name := pkg.Name.String()
	index := h.store.getFileIndex(name)
	if index == nil {
		index = make(domain.FileIndex)
	}
	updated := make(domain.FileIndex, len(filtered))
	result := make(map[string]string, len(filtered))

	for _, rel := range filtered {
		pkgRel, err := filepath.Rel(pkg.Path, filepath.Join(workspaceRoot, rel))
		if err != nil {
			continue
		}
		pkgRel = filepath.ToSlash(pkgRel)
		absPath := filepath.Join(workspaceRoot, rel)

		info, err := os.Stat(absPath)
		if err != nil {
			continue
		}
		fingerprint := statFingerprint(info.Size(), info.ModTime().UnixNano())

		if existing, ok := index[pkgRel]; ok && existing.Fingerprint == fingerprint {
			updated[pkgRel] = existing
			result[pkgRel] = existing.Hash
			continue
		}

		fileHash, err := h.hasher.HashFile(absPath)
		if err != nil {
			continue
		}
		record := domain.FileRecord{ModTime: info.ModTime(), Size: info.Size(), Fingerprint: fingerprint, Hash: fileHash}
		updated[pkgRel] = record
		result[pkgRel] = fileHash
	}

	if err := h.store.putFileIndex(name, updated); err != nil {
		return nil, err
	}
	return result, nil
}

// statFingerprint is the FileIndex fast-path key: a cheap xxhash digest of a
// file's (size, mtime) pair, compared before falling back to the full
// SHA-256 content hash.
func statFingerprint(size, modTimeNano int64) uint64 {
	return xxhash.Sum64String(strconv.FormatInt(size, 10) + ":" + strconv.FormatInt(modTimeNano, 10))
}

// SnapshotDependencyHashes returns the current dependency-hash map for pkg
// per cache's in-memory entries (MissingHash where a dependency has no
// cache entry). Accepts ports.Cache rather than the concrete Store so
// callers outside this package (the command orchestrators) can reuse it.
func SnapshotDependencyHashes(pkg *domain.PackageInfo, cache ports.Cache) map[string]string {
	names := pkg.AllDependencyNames()
	snapshot := make(map[string]string, len(names))
	for _, name := range names {
		if entry, ok := cache.Get(name); ok {
			snapshot[name] = entry.InputHash
		} else {
			snapshot[name] = domain.MissingHash
		}
	}
	return snapshot
}
