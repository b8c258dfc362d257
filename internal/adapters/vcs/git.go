// Package vcs provides the version-control-ignore adapter used to keep
// generated artifacts and lockfile sidecars out of the build cache's input
// hash.
package vcs

import (
	"bytes"
	"os/exec"
	"path/filepath"

	"go.trai.ch/wsu/internal/core/ports"
)

// batchSize amortizes process-spawn cost across git check-ignore invocations.
const batchSize = 50

var _ ports.VCSIgnoreChecker = (*Git)(nil)

// Git implements ports.VCSIgnoreChecker by batching invocations of
// `git check-ignore`.
type Git struct{}

// NewGit creates a new Git ignore checker.
func NewGit() *Git {
	return &Git{}
}

// FilterIgnored returns the subset of candidates not ignored by git at root.
// If any batch invocation fails outright (e.g. root is not a checkout), the
// candidates are returned unfiltered.
func (g *Git) FilterIgnored(root string, candidates []string) []string {
	if len(candidates) == 0 {
		return candidates
	}

	ignored := make(map[string]bool, len(candidates))
	sawInvocationError := false

	for i := 0; i < len(candidates); i += batchSize {
		end := min(i+batchSize, len(candidates))
		batch := candidates[i:end]

		names, err := checkIgnore(root, batch)
		if err != nil {
			sawInvocationError = true
			continue
		}
		for _, n := range names {
			ignored[n] = true
		}
	}

	if sawInvocationError {
		return candidates
	}

	result := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !ignored[c] {
			result = append(result, c)
		}
	}
	return result
}

// checkIgnore runs `git check-ignore` over batch and returns the subset that
// git reports as ignored. git check-ignore exits 1 when none of the paths
// are ignored; that is not an invocation failure, only exit codes >= 2 are.
func checkIgnore(root string, batch []string) ([]string, error) {
	args := append([]string{"check-ignore"}, batch...)
	cmd := exec.Command("git", args...) //nolint:gosec // fixed subcommand, candidate paths only
	cmd.Dir = root

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if ok := asExitError(err, &exitErr); ok {
			if exitErr.ExitCode() == 1 {
				return splitLines(stdout.String()), nil
			}
		}
		return nil, err
	}

	return splitLines(stdout.String()), nil
}

func asExitError(err error, target **exec.ExitError) bool {
	exitErr, ok := err.(*exec.ExitError)
	if ok {
		*target = exitErr
	}
	return ok
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			if i > start {
				lines = append(lines, filepath.ToSlash(s[start:i]))
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, filepath.ToSlash(s[start:]))
	}
	return lines
}
