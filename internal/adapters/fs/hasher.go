package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/wsu/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes the SHA-256 hex digest of a file's exact byte contents.
// The cache adapter composes these per-file digests into a package's input
// hash; a non-cryptographic digest (xxhash) is used there only to key the
// FileIndex mtime/size fast path, never for the hash that gates validity.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile returns the hex SHA-256 digest of path's contents.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by the cache adapter
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
