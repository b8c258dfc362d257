package pm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// NPM implements ports.PackageManagerAdapter for npm workspaces. npm declares
// its workspace globs inline in package.json's "workspaces" field rather than
// in a dedicated file, so IsActive's "native config file" point is awarded
// for package.json itself.
type NPM struct{}

// NewNPM creates an NPM adapter.
func NewNPM() *NPM { return &NPM{} }

// Name identifies this adapter.
func (NPM) Name() string { return "npm" }

// LockFileName is the lock file this adapter looks for.
func (NPM) LockFileName() string { return "package-lock.json" }

// IsActive reports whether npm is active at root and a confidence score.
func (a NPM) IsActive(root string) (bool, int) {
	score := 0
	if fileExists(filepath.Join(root, a.LockFileName())) {
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

// ParseWorkspaceConfig reads the "workspaces" field of package.json, which may
// be a bare array of globs or an object with a "packages" array.
func (NPM) ParseWorkspaceConfig(root string) ([]string, error) {
	return readNPMStyleWorkspaces(filepath.Join(root, "package.json"))
}

// RunCommandFor returns the program and arguments that invoke script via npm.
func (NPM) RunCommandFor(script string) (string, []string) {
	return "npm", []string{"run", script}
}

type npmStyleManifest struct {
	Workspaces json.RawMessage `json:"workspaces"`
}

type npmStyleWorkspacesObject struct {
	Packages []string `json:"packages"`
}

// readNPMStyleWorkspaces parses the npm/Bun-compatible "workspaces" manifest
// field, accepting either a bare array or {"packages": [...]}.
func readNPMStyleWorkspaces(manifestPath string) ([]string, error) {
	data, err := os.ReadFile(manifestPath) //nolint:gosec // path is workspace-internal
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", manifestPath)
	}

	var m npmStyleManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", manifestPath)
	}
	if len(m.Workspaces) == 0 {
		return nil, nil
	}

	var globs []string
	if err := json.Unmarshal(m.Workspaces, &globs); err == nil {
		return globs, nil
	}

	var obj npmStyleWorkspacesObject
	if err := json.Unmarshal(m.Workspaces, &obj); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "workspaces field is neither an array nor an object with packages"), "path", manifestPath)
	}
	return obj.Packages, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
