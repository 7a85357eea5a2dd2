package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/z64/shark-report/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "shark-report",
		Short:        "shark-report: convert probe reports to JSON, TSV and XLSX",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			// Logs only go to a workspace; outside one the logger discards.
			root := logRoot(c)
			if root == "" {
				return
			}

			cleanup, _ = logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
				cleanup = nil
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .shark-report/logs/shark-report.log")

	cmd.AddCommand(
		convertCmd(),
		summaryCmd(),
		queryCmd(),
		viewCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// logRoot resolves the workspace that receives this run's log, the same way
// the commands resolve theirs: --workspace when the command has it, otherwise
// the workspace around the current directory. "" means there is none.
func logRoot(c *cobra.Command) string {
	flag := ""
	if f := c.Flags().Lookup("workspace"); f != nil {
		flag = f.Value.String()
	}

	root, err := resolveWorkspaceRoot(flag)
	if err != nil {
		return ""
	}
	return root
}
