package pm

import "path/filepath"

// Bun implements ports.PackageManagerAdapter for Bun workspaces, which reuse
// npm's package.json "workspaces" field for membership declaration.
type Bun struct{}

// NewBun creates a Bun adapter.
func NewBun() *Bun { return &Bun{} }

// Name identifies this adapter.
func (Bun) Name() string { return "bun" }

// LockFileName is the lock file this adapter looks for.
func (Bun) LockFileName() string { return "bun.lock" }

// IsActive reports whether Bun is active at root and a confidence score.
func (a Bun) IsActive(root string) (bool, int) {
	score := 0
	if fileExists(filepath.Join(root, a.LockFileName())) || fileExists(filepath.Join(root, "bun.lockb")) {
		score++
	}
	if fileExists(filepath.Join(root, "package.json")) {
		score++
	}
	if globs, err := a.ParseWorkspaceConfig(root); err == nil && len(globs) > 0 {
		score++
	}
	return score > 0, score
}

// ParseWorkspaceConfig reads the "workspaces" field of package.json.
func (Bun) ParseWorkspaceConfig(root string) ([]string, error) {
	return readNPMStyleWorkspaces(filepath.Join(root, "package.json"))
}

// RunCommandFor returns the program and arguments that invoke script via bun.
func (Bun) RunCommandFor(script string) (string, []string) {
	return "bun", []string{"run", script}
}
