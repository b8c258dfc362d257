package domain

import "go.trai.ch/zerr"

// Sentinel errors surfaced to callers, one per error kind in the wsu error model.
var (
	// ErrWorkspaceNotDetected is returned when no workspace root could be identified,
	// or when every package-manager adapter scored zero confidence.
	ErrWorkspaceNotDetected = zerr.New("workspace not detected")

	// ErrManifestMalformed is returned when a member package's manifest fails to parse.
	ErrManifestMalformed = zerr.New("manifest malformed")

	// ErrManifestInvalid is returned when a member package's manifest omits a required field.
	ErrManifestInvalid = zerr.New("manifest invalid")

	// ErrDuplicatePackageName is returned when two workspace members declare the same name.
	ErrDuplicatePackageName = zerr.New("duplicate package name")

	// ErrWorkspaceConfigInvalid is returned when the package manager's workspace
	// declaration is structurally invalid.
	ErrWorkspaceConfigInvalid = zerr.New("workspace config invalid")

	// ErrMissingDependency is returned when a graph edge references a name that
	// doesn't exist as a node.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrDependencyCycle is returned when the graph engine cannot produce a full
	// topological order.
	ErrDependencyCycle = zerr.New("dependency cycle")

	// ErrPackageNotFound is returned when a requested package name is absent from
	// the graph or workspace index.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrNoTarget is returned when filtering and script-presence partitioning
	// reduce the candidate set to empty.
	ErrNoTarget = zerr.New("no target")

	// ErrProcessFailure is returned when a child process exits non-zero or fails to spawn.
	ErrProcessFailure = zerr.New("process failure")

	// ErrCacheIOError is returned when a disk operation on the build cache fails.
	// It is non-fatal: the affected package is treated as uncached.
	ErrCacheIOError = zerr.New("cache io error")
)
