// Package app implements wsu's command orchestrators (spec.md §4.F): the
// verb-level drivers that wire the workspace loader, dependency graph,
// process supervisor, and build cache together for run/build/dev/cache.
package app

import (
	"os"
	"strings"

	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultConcurrency is the parallel/batched driver's bound when the caller
// does not specify one (spec.md §6).
const DefaultConcurrency = 4

// App composes the adapters every verb orchestrator needs.
type App struct {
	loader     ports.WorkspaceLoader
	adapters   []ports.PackageManagerAdapter
	supervisor ports.Supervisor
	cache      ports.CacheFactory
	tracer     ports.Tracer
	logger     ports.Logger
}

// New creates an App from its wired dependencies.
func New(loader ports.WorkspaceLoader, adapters []ports.PackageManagerAdapter, supervisor ports.Supervisor, cache ports.CacheFactory, tracer ports.Tracer, logger ports.Logger) *App {
	return &App{
		loader:     loader,
		adapters:   adapters,
		supervisor: supervisor,
		cache:      cache,
		tracer:     tracer,
		logger:     logger,
	}
}

func (a *App) loadWorkspace(cwd string) (*domain.WorkspaceInfo, error) {
	return a.loader.Load(cwd)
}

func (a *App) adapterFor(kind domain.PackageManagerKind) (ports.PackageManagerAdapter, bool) {
	for _, ad := range a.adapters {
		if ad.Name() == string(kind) {
			return ad, true
		}
	}
	return nil, false
}

// commandFor builds the Command that invokes script in pkg, resolving the
// program/args through ws's active package manager, assigning a
// deterministic log color via colors, and toggling per-line timestamps.
func (a *App) commandFor(ws *domain.WorkspaceInfo, pkg *domain.PackageInfo, script string, colors *domain.ColorAssigner, withTimestamps bool) (domain.Command, error) {
	adapter, ok := a.adapterFor(ws.PackageManager)
	if !ok {
		return domain.Command{}, zerr.With(domain.ErrWorkspaceNotDetected, "package_manager", string(ws.PackageManager))
	}
	program, args := adapter.RunCommandFor(script)
	name := pkg.Name.String()
	return domain.Command{
		PackageName:   name,
		Script:        script,
		Program:       program,
		Args:          args,
		Dir:           pkg.Path,
		Env:           childEnv(),
		LogPrefix:     "[" + name + "]",
		LogColorIndex: colors.IndexFor(name),
		Timestamps:    withTimestamps,
	}, nil
}

// childEnv is the environment every spawned script inherits: the parent's
// environment (propagating NODE_ENV if present, per spec.md §6) with
// FORCE_COLOR forced to "1" so child tooling keeps emitting color codes
// despite writing to a pipe rather than a TTY.
func childEnv() []string {
	parent := os.Environ()
	env := make([]string, 0, len(parent)+1)
	for _, kv := range parent {
		if strings.HasPrefix(kv, "FORCE_COLOR=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "FORCE_COLOR=1")
}

func names(pkgs []*domain.PackageInfo) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Name.String()
	}
	return out
}

func lookupAll(ws *domain.WorkspaceInfo, names []string) []*domain.PackageInfo {
	out := make([]*domain.PackageInfo, 0, len(names))
	for _, n := range names {
		if pkg, ok := ws.Lookup(n); ok {
			out = append(out, pkg)
		}
	}
	return out
}
