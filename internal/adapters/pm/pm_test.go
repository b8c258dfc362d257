package pm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsu/internal/adapters/pm"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNPM_IsActive_WithArrayWorkspaces(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package-lock.json"), "{}")
	writeFile(t, filepath.Join(root, "package.json"), `{"workspaces": ["packages/*"]}`)

	npm := pm.NewNPM()
	active, score := npm.IsActive(root)
	assert.True(t, active)
	assert.Equal(t, 3, score)

	globs, err := npm.ParseWorkspaceConfig(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/*"}, globs)
}

func TestNPM_ParseWorkspaceConfig_WithObjectWorkspaces(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"workspaces": {"packages": ["apps/*", "!apps/legacy"]}}`)

	npm := pm.NewNPM()
	globs, err := npm.ParseWorkspaceConfig(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"apps/*", "!apps/legacy"}, globs)
}

func TestNPM_IsActive_NoFiles(t *testing.T) {
	root := t.TempDir()
	npm := pm.NewNPM()
	active, score := npm.IsActive(root)
	assert.False(t, active)
	assert.Zero(t, score)
}

func TestNPM_RunCommandFor(t *testing.T) {
	npm := pm.NewNPM()
	program, args := npm.RunCommandFor("build")
	assert.Equal(t, "npm", program)
	assert.Equal(t, []string{"run", "build"}, args)
}

func TestPNPM_IsActive_ParsesWorkspaceFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pnpm-lock.yaml"), "lockfileVersion: '6.0'")
	writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - 'packages/*'\n  - '!packages/excluded'\n")

	pnpm := pm.NewPNPM()
	active, score := pnpm.IsActive(root)
	assert.True(t, active)
	assert.Equal(t, 3, score)

	globs, err := pnpm.ParseWorkspaceConfig(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/*", "!packages/excluded"}, globs)
}

func TestPNPM_ParseWorkspaceConfig_MissingFile(t *testing.T) {
	root := t.TempDir()
	pnpm := pm.NewPNPM()
	_, err := pnpm.ParseWorkspaceConfig(root)
	require.Error(t, err)
}

func TestBun_IsActive_WithLockb(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bun.lockb"), "")
	writeFile(t, filepath.Join(root, "package.json"), `{"workspaces": ["packages/*"]}`)

	bun := pm.NewBun()
	active, score := bun.IsActive(root)
	assert.True(t, active)
	assert.Equal(t, 3, score)
}

func TestDetect_PrefersHigherConfidence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pnpm-lock.yaml"), "lockfileVersion: '6.0'")
	writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - 'packages/*'\n")
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "root"}`)

	adapter, ok := pm.Detect(root)
	require.True(t, ok)
	assert.Equal(t, "pnpm", adapter.Name())
}

func TestDetect_NoneActive(t *testing.T) {
	root := t.TempDir()
	_, ok := pm.Detect(root)
	assert.False(t, ok)
}
