package commands

import (
	"fmt"
	"io"
	"time"

	"go.trai.ch/wsu/internal/core/domain"
)

// symbolFor returns the glyph for a package's terminal status, switching to
// plain-text forms when ascii is set (spec.md §6 "--ascii").
func symbolFor(status domain.PackageStatus, ascii bool) string {
	switch status {
	case domain.PackageStatusCompleted:
		if ascii {
			return "[OK]"
		}
		return "✓"
	case domain.PackageStatusCached:
		if ascii {
			return "[SKIP]"
		}
		return "○"
	case domain.PackageStatusFailed:
		if ascii {
			return "[FAIL]"
		}
		return "✗"
	default:
		if ascii {
			return "[PENDING]"
		}
		return "·"
	}
}

// printSummary writes one line per package plus a totals line to w.
func printSummary(w io.Writer, summary *domain.Summary, ascii bool) {
	for _, p := range summary.Packages {
		fmt.Fprintf(w, "%s %s\n", symbolFor(p.Status, ascii), p.PackageName)
	}
	completed, cached, failed := summary.Counts()
	fmt.Fprintf(w, "%d completed, %d cached, %d failed in %s\n", completed, cached, failed, summary.Duration.Round(time.Millisecond))
}
