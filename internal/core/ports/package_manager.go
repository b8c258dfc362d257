package ports

// PackageManagerAdapter answers the three questions the workspace loader
// needs of whichever JS package manager is active in a directory: am I
// active here, what are the workspace globs, and what command invokes a
// named script.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManagerAdapter interface {
	// Name identifies the adapter (npm, pnpm, bun) for diagnostics and
	// preference-order tie-breaking.
	Name() string

	// IsActive reports whether this package manager is active in root, and a
	// confidence score: points for a present lock file, a present
	// native workspace config file, and a successfully parsed workspace
	// declaration.
	IsActive(root string) (active bool, confidence int)

	// ParseWorkspaceConfig reads the workspace membership globs declared at
	// root. Glob patterns may carry a "!" negation prefix.
	ParseWorkspaceConfig(root string) ([]string, error)

	// RunCommandFor returns the program and arguments that invoke the named
	// script via this package manager.
	RunCommandFor(script string) (program string, args []string)

	// LockFileName is the lock file this adapter looks for when scoring confidence.
	LockFileName() string
}
