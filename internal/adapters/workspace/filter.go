package workspace

import (
	"path/filepath"

	"go.trai.ch/wsu/internal/core/domain"
)

// FilterByName returns the subset of packages whose name matches the
// shell-style glob pattern (*, ?, [...]). An empty pattern matches everything.
func FilterByName(packages []*domain.PackageInfo, pattern string) []*domain.PackageInfo {
	if pattern == "" {
		return packages
	}

	filtered := make([]*domain.PackageInfo, 0, len(packages))
	for _, p := range packages {
		if matched, _ := filepath.Match(pattern, p.Name.String()); matched {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PartitionByScript splits packages into those declaring a non-empty script
// named name (valid) and those that do not (invalid).
func PartitionByScript(packages []*domain.PackageInfo, script string) (valid, invalid []*domain.PackageInfo) {
	for _, p := range packages {
		if p.HasScript(script) {
			valid = append(valid, p)
		} else {
			invalid = append(invalid, p)
		}
	}
	return valid, invalid
}
