package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/wsu/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GlobExpander = (*GlobExpander)(nil)

// GlobExpander implements ports.GlobExpander using filepath.Glob, restricted
// to directory matches as required for workspace-membership expansion.
type GlobExpander struct{}

// NewGlobExpander creates a new GlobExpander.
func NewGlobExpander() *GlobExpander {
	return &GlobExpander{}
}

// ExpandDirs expands patterns (each optionally "!"-negated) against root and
// returns the resulting set of directories, sorted.
func (g *GlobExpander) ExpandDirs(patterns []string, root string) ([]string, error) {
	positive := make(map[string]bool)
	negative := make(map[string]bool)

	for _, pattern := range patterns {
		negate := false
		p := pattern
		if strings.HasPrefix(p, "!") {
			negate = true
			p = p[1:]
		}

		matches, err := filepath.Glob(filepath.Join(root, p))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to expand glob"), "pattern", pattern)
		}

		for _, m := range matches {
			if !isDir(m) {
				continue
			}
			if negate {
				negative[m] = true
			} else {
				positive[m] = true
			}
		}
	}

	result := make([]string, 0, len(positive))
	for dir := range positive {
		if negative[dir] {
			continue
		}
		result = append(result, dir)
	}
	sort.Strings(result)
	return result, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
