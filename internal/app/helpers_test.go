package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
)

// fakeAdapter is a hand-written ports.PackageManagerAdapter stub. A gomock
// mock would need per-call RunCommandFor expectations wired into every test;
// this fake just encodes the one behavior every test needs deterministically.
type fakeAdapter struct {
	name string
}

func (f fakeAdapter) Name() string { return f.name }

func (f fakeAdapter) IsActive(_ string) (bool, int) { return true, 3 }

func (f fakeAdapter) ParseWorkspaceConfig(_ string) ([]string, error) { return nil, nil }

func (f fakeAdapter) RunCommandFor(script string) (string, []string) {
	return f.name, []string{"run", script}
}

func (f fakeAdapter) LockFileName() string { return f.name + "-lock.json" }

var fakeAdapters = []ports.PackageManagerAdapter{fakeAdapter{name: "npm"}, fakeAdapter{name: "pnpm"}, fakeAdapter{name: "bun"}}

// newPackage builds a minimal PackageInfo declaring build, dev, and test
// scripts and depending on deps.
func newPackage(name string, deps ...string) *domain.PackageInfo {
	d := make(map[string]struct{}, len(deps))
	for _, dep := range deps {
		d[dep] = struct{}{}
	}
	return &domain.PackageInfo{
		Name:            domain.NewInternedString(name),
		Path:            "/workspace/" + name,
		Scripts:         map[string]string{"build": "tsc", "dev": "vite", "test": "jest"},
		Dependencies:    d,
		DevDependencies: map[string]struct{}{},
	}
}

func newWorkspace(t *testing.T, pkgs ...*domain.PackageInfo) *domain.WorkspaceInfo {
	t.Helper()
	ws, err := domain.NewWorkspaceInfo("/workspace", domain.PackageManagerNPM, pkgs)
	require.NoError(t, err)
	return ws
}

// fixedCacheFactory wraps an already-constructed cache/hasher pair, standing
// in for the per-root construction ports.CacheFactory normally performs.
func fixedCacheFactory(cache ports.Cache, hasher ports.InputHasher) ports.CacheFactory {
	return func(string) (ports.Cache, ports.InputHasher, error) {
		return cache, hasher, nil
	}
}
