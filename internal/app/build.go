package app

import (
	"context"
	"time"

	"go.trai.ch/wsu/internal/adapters/cas"       //nolint:depguard // dependency-hash snapshot helper, wired in app layer
	"go.trai.ch/wsu/internal/adapters/workspace" //nolint:depguard // name-filter/script-partition helpers, wired in app layer
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/wsu/internal/core/ports"
	"go.trai.ch/zerr"
)

const buildScript = "build"

// BuildOptions configures Build (spec.md §4.F build()).
type BuildOptions struct {
	Filter        string
	Concurrency   int
	SkipUnchanged bool
}

// Build loads the workspace, closes the filtered target set under
// dependencies, and drives dependency-ordered batched execution over the
// full candidate graph. Within each batch, every package's cache validity
// is (re-)checked immediately before that batch dispatches, so a dependency
// invalidated by an earlier batch's successful build is seen as changed by
// its dependents in the same run (spec.md §4.E "Dependency invalidation
// policy on build").
func (a *App) Build(ctx context.Context, cwd string, opts BuildOptions) (*domain.Summary, error) {
	start := time.Now()

	ws, err := a.loadWorkspace(cwd)
	if err != nil {
		return nil, err
	}

	cache, hasher, err := a.cache(ws.Root)
	if err != nil {
		return nil, err
	}

	candidates := workspace.FilterByName(ws.Packages, opts.Filter)
	if len(candidates) == 0 {
		return nil, zerr.With(domain.ErrNoTarget, "filter", opts.Filter)
	}

	graph := domain.BuildGraph(ws.Packages)
	closurePkgs := lookupAll(ws, graph.FilterClosure(names(candidates)))

	valid, invalid := workspace.PartitionByScript(closurePkgs, buildScript)
	if len(invalid) > 0 {
		a.logger.Warn("packages missing script", "script", buildScript, "count", len(invalid))
	}
	if len(valid) == 0 {
		return nil, zerr.With(domain.ErrNoTarget, "script", buildScript)
	}

	sub := graph.Subgraph(names(valid))
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	batches := sub.Batches()

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	ctx, span := a.tracer.Start(ctx, "build")
	defer span.End()
	a.tracer.EmitPlan(ctx, names(valid))

	colors := domain.NewColorAssigner()
	var packages []domain.PackageResult
	stop := false

	for _, batchNames := range batches {
		batchPkgs := lookupAll(ws, batchNames)

		if stop {
			for _, pkg := range batchPkgs {
				packages = append(packages, domain.PackageResult{PackageName: pkg.Name.String(), Status: domain.PackageStatusPending})
			}
			continue
		}

		toBuild, depHashByName := a.partitionByCacheValidity(batchPkgs, ws.Root, cache, hasher, opts.SkipUnchanged, &packages)
		if len(toBuild) == 0 {
			continue
		}

		cmds := make([]domain.Command, len(toBuild))
		for i, pkg := range toBuild {
			cmd, cmdErr := a.commandFor(ws, pkg, buildScript, colors, false)
			if cmdErr != nil {
				return nil, cmdErr
			}
			cmds[i] = cmd
		}

		_, batchSpan := a.tracer.Start(ctx, "build.batch")
		results := a.supervisor.RunParallel(ctx, cmds, concurrency)
		batchSpan.End()

		for i, res := range results {
			pkg := toBuild[i]
			if !res.Success {
				packages = append(packages, domain.PackageResult{PackageName: pkg.Name.String(), Status: domain.PackageStatusFailed, Duration: res.Duration})
				stop = true
				continue
			}
			a.recordBuildSuccess(pkg, res, ws.Root, depHashByName[pkg.Name.String()], cache, hasher, graph)
			packages = append(packages, domain.PackageResult{PackageName: pkg.Name.String(), Status: domain.PackageStatusCompleted, Duration: res.Duration})
		}
	}

	summary := &domain.Summary{Packages: packages, Duration: time.Since(start)}
	if summary.Failed() {
		span.RecordError(domain.ErrProcessFailure)
	}
	return summary, nil
}

// partitionByCacheValidity checks each of batchPkgs against cache, appending
// a Cached PackageResult for every still-valid package to packages and
// returning the rest (to be dispatched) along with the dependency-hash
// snapshot computed for each, so a later successful build can reuse it
// without recomputing.
func (a *App) partitionByCacheValidity(batchPkgs []*domain.PackageInfo, root string, cache ports.Cache, hasher ports.InputHasher, skipUnchanged bool, packages *[]domain.PackageResult) ([]*domain.PackageInfo, map[string]map[string]string) {
	var toBuild []*domain.PackageInfo
	depHashByName := make(map[string]map[string]string, len(batchPkgs))

	for _, pkg := range batchPkgs {
		depHashes := cas.SnapshotDependencyHashes(pkg, cache)
		depHashByName[pkg.Name.String()] = depHashes

		hash, hashErr := hasher.Compute(pkg, root, depHashes)
		if hashErr != nil {
			a.logger.Warn("input hash computation failed, treating as changed", "package", pkg.Name.String(), "error", hashErr.Error())
			toBuild = append(toBuild, pkg)
			continue
		}
		if skipUnchanged && cache.IsValid(pkg.Name.String(), hash) {
			*packages = append(*packages, domain.PackageResult{PackageName: pkg.Name.String(), Status: domain.PackageStatusCached})
			continue
		}
		toBuild = append(toBuild, pkg)
	}

	return toBuild, depHashByName
}

// recordBuildSuccess writes pkg's new cache entry and invalidates its
// dependents so they are rebuilt this run if still pending, or on their next
// invocation otherwise.
func (a *App) recordBuildSuccess(pkg *domain.PackageInfo, res domain.CommandResult, root string, depHashes map[string]string, cache ports.Cache, hasher ports.InputHasher, graph *domain.Graph) {
	hash, hashErr := hasher.Compute(pkg, root, depHashes)
	if hashErr != nil {
		a.logger.Warn("post-build hash computation failed", "package", pkg.Name.String(), "error", hashErr.Error())
		return
	}

	entry := domain.CacheEntry{
		InputHash:        hash,
		DependencyHashes: depHashes,
		LastBuild:        time.Now(),
		BuildDuration:    res.Duration.Milliseconds(),
		BuiltBy:          "wsu",
	}
	if putErr := cache.Put(pkg.Name.String(), entry); putErr != nil {
		a.logger.Warn("cache write failed", "package", pkg.Name.String(), "error", putErr.Error())
		return
	}
	if invErr := cache.InvalidateDependents(pkg.Name.String(), graph); invErr != nil {
		a.logger.Warn("cache invalidate-dependents failed", "package", pkg.Name.String(), "error", invErr.Error())
	}
}
