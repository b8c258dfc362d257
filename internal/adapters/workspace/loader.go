// Package workspace discovers a JS monorepo's root and member packages by
// walking upward through the active package manager's detection rules, then
// expanding its workspace globs into a read PackageInfo set.
package workspace

import (
	"path/filepath"
	"sort"

	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader.
type Loader struct {
	adapters []ports.PackageManagerAdapter
	globs    ports.GlobExpander
}

// NewLoader creates a Loader that probes adapters in the given order and
// expands workspace globs with globs.
func NewLoader(adapters []ports.PackageManagerAdapter, globs ports.GlobExpander) *Loader {
	return &Loader{adapters: adapters, globs: globs}
}

// Load walks upward from cwd to find the workspace root, expands its member
// globs, and reads every member's manifest.
func (l *Loader) Load(cwd string) (*domain.WorkspaceInfo, error) {
	root, winner, err := l.findRoot(cwd)
	if err != nil {
		return nil, err
	}

	globPatterns, err := winner.ParseWorkspaceConfig(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceConfigInvalid, err.Error()), "root", root)
	}

	dirs, err := l.globs.ExpandDirs(globPatterns, root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceConfigInvalid, err.Error()), "root", root)
	}

	packages := make([]*domain.PackageInfo, 0, len(dirs))
	for _, dir := range dirs {
		pkg, err := readManifest(dir)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			continue
		}
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Path < packages[j].Path
	})

	return domain.NewWorkspaceInfo(root, pmKind(winner.Name()), packages)
}

// findRoot walks upward from cwd, returning the first directory whose
// highest-confidence active adapter declares workspace globs there (or fails
// to parse its workspace declaration), together with that adapter. A member
// package's own package.json, which declares no workspaces, does not stop
// the walk.
func (l *Loader) findRoot(cwd string) (string, ports.PackageManagerAdapter, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		if winner, ok := l.bestAdapter(dir); ok {
			if globs, err := winner.ParseWorkspaceConfig(dir); err != nil || len(globs) > 0 {
				return dir, winner, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, zerr.With(domain.ErrWorkspaceNotDetected, "searched_from", cwd)
		}
		dir = parent
	}
}

func (l *Loader) bestAdapter(dir string) (ports.PackageManagerAdapter, bool) {
	var best ports.PackageManagerAdapter
	bestScore := 0
	for _, adapter := range l.adapters {
		active, score := adapter.IsActive(dir)
		if !active {
			continue
		}
		if score > bestScore {
			best = adapter
			bestScore = score
		}
	}
	return best, best != nil
}

func pmKind(name string) domain.PackageManagerKind {
	switch name {
	case "npm":
		return domain.PackageManagerNPM
	case "pnpm":
		return domain.PackageManagerPNPM
	case "bun":
		return domain.PackageManagerBun
	default:
		return domain.PackageManagerKind(name)
	}
}
