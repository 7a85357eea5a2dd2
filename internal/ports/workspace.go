package ports

import "github.com/z64/shark-report/internal/domain"

// WorkspaceLocator resolves the workspace root that owns startDir,
// walking up towards the filesystem root.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// WorkspaceInitializer lays out a new workspace (config, exports dir, log dir).
// Existing files survive unless force is set.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
