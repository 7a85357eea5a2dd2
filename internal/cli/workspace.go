package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/infra/logger"
	"github.com/z64/shark-report/internal/infra/reportfile"
	"github.com/z64/shark-report/internal/infra/workspacefinder"
	"github.com/z64/shark-report/internal/ports"
	"github.com/z64/shark-report/internal/usecase"
)

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

// workspaceCtx is the resolved workspace. root is empty when the command runs
// outside any workspace; cfg then holds defaults plus environment overrides.
type workspaceCtx struct {
	root string
	cfg  domain.Config
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	if root == "" {
		cfg, err := workspacefinder.LoadDefaults()
		if err != nil {
			return nil, err
		}
		return &workspaceCtx{cfg: cfg}, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{root: root, cfg: cfg}, nil
}

// resolveWorkspaceRoot returns "" with no error when no workspace is found
// and none was requested.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

func newLoadReport() *usecase.LoadReport {
	return usecase.NewLoadReport(reportfile.NewReader(), usecase.NewBuildReport(logger.L()))
}
