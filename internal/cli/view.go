package cli

import (
	"github.com/spf13/cobra"

	"github.com/z64/shark-report/internal/infra/logger"
	"github.com/z64/shark-report/internal/ui/tui"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <input>",
		Short: "Browse a probe report interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoadReport()

			report, err := loader.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Report: report,
				Source: args[0],
				Loader: loader,
				Logger: logger.L(),
			})
		},
	}
}
