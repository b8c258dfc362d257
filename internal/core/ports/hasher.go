package ports

// Hasher computes the SHA-256-based file and byte digests used to build a
// package's input hash (spec.md §4.E). It does not know about packages,
// dependencies, or the cache — composition of those into an input hash
// lives in the cache adapter, which calls Hasher once per source file.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile returns the hex SHA-256 digest of a file's exact byte contents.
	HashFile(path string) (string, error)
}
