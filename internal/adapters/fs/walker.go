// Package fs provides the file system adapters backing workspace glob
// expansion and the build cache's file hashing.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root, skipping .git, .jj, node_modules,
// .wsu, and any name matching ignores.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skipErr := w.shouldSkipDir(d, ignores); skipErr != nil {
				return skipErr
			}

			if d.IsDir() {
				return nil
			}

			for _, ignore := range ignores {
				if matched, _ := filepath.Match(ignore, d.Name()); matched {
					return nil
				}
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

var alwaysSkippedDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
	".wsu":         true,
}

// shouldSkipDir returns filepath.SkipDir when d is a directory that should be
// pruned entirely, or nil otherwise (files matching ignores are skipped by
// the caller declining to yield them).
func (w *Walker) shouldSkipDir(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	if d.IsDir() && alwaysSkippedDirs[name] {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
	}

	return nil
}
