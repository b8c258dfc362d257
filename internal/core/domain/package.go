package domain

// PackageInfo is a record of a single workspace member.
type PackageInfo struct {
	// Name is globally unique within the workspace; two members sharing a
	// name is a load-time error (ErrDuplicatePackageName).
	Name InternedString

	// Path is the absolute filesystem path of the directory containing the
	// member's manifest.
	Path string

	// Scripts maps script name to shell command string. May be empty.
	Scripts map[string]string

	// Dependencies and DevDependencies are the declared upstream package
	// names. They may reference names outside the workspace; those are
	// ignored by the dependency graph.
	Dependencies    map[string]struct{}
	DevDependencies map[string]struct{}

	// Manifest is the opaque preserved parse of the package manifest, kept
	// only for diagnostic use.
	Manifest map[string]any
}

// AllDependencyNames returns the union of Dependencies and DevDependencies.
func (p *PackageInfo) AllDependencyNames() []string {
	names := make([]string, 0, len(p.Dependencies)+len(p.DevDependencies))
	for n := range p.Dependencies {
		names = append(names, n)
	}
	for n := range p.DevDependencies {
		names = append(names, n)
	}
	return names
}

// HasScript reports whether the package declares a non-empty script under name.
func (p *PackageInfo) HasScript(name string) bool {
	cmd, ok := p.Scripts[name]
	return ok && cmd != ""
}

// PackageManagerKind identifies the active package manager for a workspace.
type PackageManagerKind string

const (
	// PackageManagerNPM identifies npm workspaces.
	PackageManagerNPM PackageManagerKind = "npm"
	// PackageManagerPNPM identifies pnpm workspaces.
	PackageManagerPNPM PackageManagerKind = "pnpm"
	// PackageManagerBun identifies Bun workspaces.
	PackageManagerBun PackageManagerKind = "bun"
)

// WorkspaceInfo is the result of workspace discovery: the root, the ordered
// set of members, a name index, and the identity of the active package
// manager.
type WorkspaceInfo struct {
	Root           string
	Packages       []*PackageInfo
	byName         map[string]*PackageInfo
	PackageManager PackageManagerKind
}

// NewWorkspaceInfo builds a WorkspaceInfo from its members, indexing them by
// name. Returns ErrDuplicatePackageName if two members share a name.
func NewWorkspaceInfo(root string, pm PackageManagerKind, packages []*PackageInfo) (*WorkspaceInfo, error) {
	w := &WorkspaceInfo{
		Root:           root,
		PackageManager: pm,
		Packages:       packages,
		byName:         make(map[string]*PackageInfo, len(packages)),
	}
	for _, p := range packages {
		name := p.Name.String()
		if existing, ok := w.byName[name]; ok {
			return nil, withDuplicatePackage(existing.Path, p.Path, name)
		}
		w.byName[name] = p
	}
	return w, nil
}

func withDuplicatePackage(first, duplicate, name string) error {
	err := ErrDuplicatePackageName
	return withMeta(err, map[string]any{
		"package_name":     name,
		"first_occurrence": first,
		"duplicate_at":     duplicate,
	})
}

// Lookup returns the package named name, if present.
func (w *WorkspaceInfo) Lookup(name string) (*PackageInfo, bool) {
	p, ok := w.byName[name]
	return p, ok
}

// Names returns the workspace's package names in discovery order.
func (w *WorkspaceInfo) Names() []string {
	names := make([]string, len(w.Packages))
	for i, p := range w.Packages {
		names[i] = p.Name.String()
	}
	return names
}
