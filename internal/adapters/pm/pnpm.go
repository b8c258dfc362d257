package pm

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PNPM implements ports.PackageManagerAdapter for pnpm workspaces, which
// declare membership globs in a dedicated pnpm-workspace.yaml file.
type PNPM struct{}

// NewPNPM creates a PNPM adapter.
func NewPNPM() *PNPM { return &PNPM{} }

// Name identifies this adapter.
func (PNPM) Name() string { return "pnpm" }

// LockFileName is the lock file this adapter looks for.
func (PNPM) LockFileName() string { return "pnpm-lock.yaml" }

// workspaceFileName is pnpm's dedicated workspace declaration file.
func (PNPM) workspaceFileName() string { return "pnpm-workspace.yaml" }

// IsActive reports whether pnpm is active at root and a confidence score.
func (a PNPM) IsActive(root string) (bool, int) {
	score := 0
	if fileExists(filepath.Join(root, a.LockFileName())) {
		score++
	}
	if fileExists(filepath.Join(root, a.workspaceFileName())) {
		score++
	}
	if globs, err := a.ParseWorkspaceConfig(root); err == nil && len(globs) > 0 {
		score++
	}
	return score > 0, score
}

type pnpmWorkspaceFile struct {
	Packages []string `yaml:"packages"`
}

// ParseWorkspaceConfig reads the "packages" list from pnpm-workspace.yaml.
func (a PNPM) ParseWorkspaceConfig(root string) ([]string, error) {
	path := filepath.Join(root, a.workspaceFileName())
	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-internal
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read workspace file"), "path", path)
	}

	var f pnpmWorkspaceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse workspace file"), "path", path)
	}
	return f.Packages, nil
}

// RunCommandFor returns the program and arguments that invoke script via pnpm.
func (PNPM) RunCommandFor(script string) (string, []string) {
	return "pnpm", []string{"run", script}
}
