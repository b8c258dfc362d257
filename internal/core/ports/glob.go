package ports

// GlobExpander expands workspace-membership glob patterns (spec.md §4.A/§4.B)
// into concrete directories under root. A "!" prefix negates a pattern,
// subtracting its matches from the positive set after expansion.
//
//go:generate go run go.uber.org/mock/mockgen -source=glob.go -destination=mocks/mock_glob.go -package=mocks
type GlobExpander interface {
	ExpandDirs(patterns []string, root string) ([]string, error)
}
