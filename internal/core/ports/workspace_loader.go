package ports

import "go.trai.ch/wsu/internal/core/domain"

// WorkspaceLoader discovers a workspace's root and member packages.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace_loader.go -destination=mocks/mock_workspace_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load walks upward from cwd to find the workspace root, expands its
	// member globs, and reads every member's manifest.
	Load(cwd string) (*domain.WorkspaceInfo, error)
}
