package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/z64/shark-report/internal/infra/fsworkspace"
	"github.com/z64/shark-report/internal/infra/logger"
	"github.com/z64/shark-report/internal/infra/workspacefinder"
	"github.com/z64/shark-report/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a shark-report workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			cfg, err := workspacefinder.LoadDefaults()
			if err != nil {
				return err
			}

			initializer := fsworkspace.NewInitializer(fsworkspace.WithExportsDir(cfg.Output.ExportsDir))
			uc := usecase.NewInitWorkspace(initializer, logger.L())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
