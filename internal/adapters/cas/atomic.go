package cas

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// writeFileAtomic writes data to path by writing to a sibling temp file and
// renaming it into place, so a crash mid-write never leaves a truncated
// cache artifact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "dir", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck // best effort on error path
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		return zerr.With(zerr.Wrap(err, "failed to write temp file"), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		return zerr.With(zerr.Wrap(err, "failed to close temp file"), "path", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		return zerr.With(zerr.Wrap(err, "failed to rename temp file into place"), "path", path)
	}
	return nil
}
