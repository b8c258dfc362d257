package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/zerr"
)

const manifestFileName = "package.json"

// rawManifest mirrors the subset of package.json fields the workspace loader
// cares about; everything else is preserved opaquely in domain.PackageInfo.Manifest.
type rawManifest struct {
	Name            string            `json:"name"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readManifest reads and parses dir's package.json into a PackageInfo. It
// returns (nil, nil) if dir has no manifest, signaling the caller to silently
// ignore the directory.
func readManifest(dir string) (*domain.PackageInfo, error) {
	path := filepath.Join(dir, manifestFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-internal
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.With(domain.ErrManifestMalformed, "path", path), "reason", err.Error())
	}

	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrManifestMalformed, "path", path), "reason", err.Error())
	}
	if raw.Name == "" {
		return nil, zerr.With(domain.ErrManifestInvalid, "path", path)
	}

	var preserved map[string]any
	_ = json.Unmarshal(data, &preserved) //nolint:errcheck // best-effort diagnostic copy; already validated above

	return &domain.PackageInfo{
		Name:            domain.NewInternedString(raw.Name),
		Path:            dir,
		Scripts:         raw.Scripts,
		Dependencies:    toSet(raw.Dependencies),
		DevDependencies: toSet(raw.DevDependencies),
		Manifest:        preserved,
	}, nil
}

func toSet(deps map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(deps))
	for name := range deps {
		set[name] = struct{}{}
	}
	return set
}
