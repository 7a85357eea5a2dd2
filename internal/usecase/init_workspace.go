package usecase

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
)

// InitWorkspace creates a workspace at an explicit root.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, log *slog.Logger) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, log: orDiscard(log)}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return err
	}

	uc.log.Info("workspace.initialized", "root", root, "force", force)
	return nil
}
