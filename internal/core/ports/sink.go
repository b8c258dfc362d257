package ports

// LogSink is the line-oriented, colored multiplexed output stream that
// child-process stdout/stderr lines are written to, tagged by package
// prefix. Distinct from Logger, which is leveled and used for everything
// else (spec.md §4.D log multiplexing).
//
//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type LogSink interface {
	// WriteLine emits a single line tagged with prefix and colorIndex.
	// isStderr distinguishes stderr lines visually; withTimestamp toggles a
	// per-line timestamp prefix.
	WriteLine(prefix string, colorIndex int, isStderr bool, withTimestamp bool, line string)
}
