package ports

import "go.trai.ch/wsu/internal/core/domain"

// InputHasher composes a package's canonical input hash (spec.md §4.E):
// manifest bytes, sorted filtered source-file hashes, and the supplied
// dependency-hash snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=input_hasher.go -destination=mocks/mock_input_hasher.go -package=mocks
type InputHasher interface {
	Compute(pkg *domain.PackageInfo, workspaceRoot string, depHashes map[string]string) (string, error)
}
