package ports

// VCSIgnoreChecker filters a candidate file list down to the subset the
// workspace's version control system does not ignore. Implementations
// invoke the external VCS tool in batches (spec.md §4.E: batch size ≈ 50) to
// amortize process-spawn cost.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCSIgnoreChecker interface {
	// FilterIgnored returns the subset of candidates (paths relative to
	// root) that are NOT ignored. If the VCS invocation fails (e.g. root is
	// not a checkout), implementations return candidates unfiltered rather
	// than erroring.
	FilterIgnored(root string, candidates []string) []string
}
