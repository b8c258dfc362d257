// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wsu/internal/core/domain"
)

// Executor runs a single Command: spec.md §4.D's runCommand primitive.
// Implementations inherit stdin, capture stdout/stderr as separate streams,
// and emit each non-empty line to a LogSink tagged with the command's prefix.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	Execute(ctx context.Context, cmd domain.Command) domain.CommandResult
}
