package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsu/internal/adapters/workspace"
	"go.trai.ch/wsu/internal/core/domain"
)

func pkg(name string, scripts map[string]string) *domain.PackageInfo {
	return &domain.PackageInfo{
		Name:    domain.NewInternedString(name),
		Scripts: scripts,
	}
}

func TestFilterByName_GlobMatch(t *testing.T) {
	packages := []*domain.PackageInfo{
		pkg("ui-button", nil),
		pkg("ui-input", nil),
		pkg("core", nil),
	}

	filtered := workspace.FilterByName(packages, "ui-*")
	assert.Len(t, filtered, 2)
}

func TestFilterByName_EmptyPatternMatchesAll(t *testing.T) {
	packages := []*domain.PackageInfo{pkg("a", nil), pkg("b", nil)}
	assert.Len(t, workspace.FilterByName(packages, ""), 2)
}

func TestPartitionByScript(t *testing.T) {
	packages := []*domain.PackageInfo{
		pkg("has-build", map[string]string{"build": "tsc"}),
		pkg("empty-build", map[string]string{"build": ""}),
		pkg("no-build", map[string]string{"test": "vitest"}),
	}

	valid, invalid := workspace.PartitionByScript(packages, "build")
	assert.Len(t, valid, 1)
	assert.Equal(t, "has-build", valid[0].Name.String())
	assert.Len(t, invalid, 2)
}
