package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/wsu/internal/adapters/workspace" //nolint:depguard // name-filter/script-partition helpers, wired in app layer
	"go.trai.ch/wsu/internal/core/domain"
	"go.trai.ch/zerr"
)

const cleanScript = "clean"

// conventionalBuildDir is removed directly for packages declaring no clean
// script, per spec.md §1's "trivial recursive delete driven by the
// workspace model".
const conventionalBuildDir = "dist"

// CleanOptions configures Clean.
type CleanOptions struct {
	Filter string
}

// Clean runs the clean script for every matching package that declares one,
// and recursively removes each conventional build directory for the rest.
func (a *App) Clean(ctx context.Context, cwd string, opts CleanOptions) (*domain.Summary, error) {
	start := time.Now()

	ws, err := a.loadWorkspace(cwd)
	if err != nil {
		return nil, err
	}

	candidates := workspace.FilterByName(ws.Packages, opts.Filter)
	if len(candidates) == 0 {
		return nil, zerr.With(domain.ErrNoTarget, "filter", opts.Filter)
	}

	withScript, withoutScript := workspace.PartitionByScript(candidates, cleanScript)

	ctx, span := a.tracer.Start(ctx, "clean")
	defer span.End()
	a.tracer.EmitPlan(ctx, names(candidates))

	var packages []domain.PackageResult

	if len(withScript) > 0 {
		colors := domain.NewColorAssigner()
		cmds := make([]domain.Command, len(withScript))
		for i, pkg := range withScript {
			cmd, cmdErr := a.commandFor(ws, pkg, cleanScript, colors, false)
			if cmdErr != nil {
				return nil, cmdErr
			}
			cmds[i] = cmd
		}
		results := a.supervisor.RunParallel(ctx, cmds, DefaultConcurrency)
		for i, res := range results {
			status := domain.PackageStatusCompleted
			if !res.Success {
				status = domain.PackageStatusFailed
			}
			packages = append(packages, domain.PackageResult{PackageName: withScript[i].Name.String(), Status: status, Duration: res.Duration})
		}
	}

	for _, pkg := range withoutScript {
		status := domain.PackageStatusCompleted
		if rmErr := os.RemoveAll(filepath.Join(pkg.Path, conventionalBuildDir)); rmErr != nil {
			a.logger.Warn("failed to remove build directory", "package", pkg.Name.String(), "error", rmErr.Error())
			status = domain.PackageStatusFailed
		}
		packages = append(packages, domain.PackageResult{PackageName: pkg.Name.String(), Status: status})
	}

	summary := &domain.Summary{Packages: packages, Duration: time.Since(start)}
	if summary.Failed() {
		span.RecordError(domain.ErrProcessFailure)
	}
	return summary, nil
}
