package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/z64/shark-report/internal/usecase/query"
)

func queryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "query <input> <jsonpath>",
		Short: "Evaluate a JSONPath expression over the JSON export of a report",
		Example: `  shark-report query probe.txt '$.cycles[0].features[*].name'
  shark-report query probe.txt '$.cycles[*].features[?(@.out_tol > 0)]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newLoadReport().Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			v, err := query.Eval(report, args[1])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	return c
}
