// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wsu/internal/adapters/cas"
	_ "go.trai.ch/wsu/internal/adapters/fs"
	_ "go.trai.ch/wsu/internal/adapters/logger"
	_ "go.trai.ch/wsu/internal/adapters/pm"
	_ "go.trai.ch/wsu/internal/adapters/shell"
	_ "go.trai.ch/wsu/internal/adapters/telemetry"
	_ "go.trai.ch/wsu/internal/adapters/vcs"
	_ "go.trai.ch/wsu/internal/adapters/workspace"
	// Register the command-orchestrator node.
	_ "go.trai.ch/wsu/internal/app"
)
