package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/usecase/export"
	"github.com/z64/shark-report/internal/usecase/tolerance"
)

func summaryCmd() *cobra.Command {
	var workspace string
	var format string
	var strict bool

	c := &cobra.Command{
		Use:   "summary <input>",
		Short: "Print a tolerance summary of a probe report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			report, err := newLoadReport().Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			s := tolerance.Summarize(report)
			if err := printSummary(os.Stdout, s, format); err != nil {
				return err
			}

			if (strict || ws.cfg.Check.Strict) && !s.Passed() {
				return fmt.Errorf("%d feature(s) out of tolerance", s.OutOfTolerance)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any feature is out of tolerance")
	return c
}

func printSummary(w io.Writer, s domain.ToleranceSummary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaryPayload(s))
	case "pretty", "":
		printPrettySummary(w, s)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

type summaryJSON struct {
	Cycles         int          `json:"cycles"`
	Features       int          `json:"features"`
	OutOfTolerance int          `json:"out_of_tolerance"`
	Passed         bool         `json:"passed"`
	Worst          *resultJSON  `json:"worst,omitempty"`
	Failures       []resultJSON `json:"failures"`
}

type resultJSON struct {
	Cycle   int     `json:"cycle"`
	Name    string  `json:"name"`
	Excess  float64 `json:"excess"`
	Message string  `json:"message"`
}

func summaryPayload(s domain.ToleranceSummary) summaryJSON {
	out := summaryJSON{
		Cycles:         s.Cycles,
		Features:       s.Features,
		OutOfTolerance: s.OutOfTolerance,
		Passed:         s.Passed(),
		Failures:       []resultJSON{},
	}
	if s.Worst != nil {
		w := toResultJSON(*s.Worst)
		out.Worst = &w
	}
	for _, r := range s.Results {
		if !r.Passed {
			out.Failures = append(out.Failures, toResultJSON(r))
		}
	}
	return out
}

func toResultJSON(r domain.ToleranceResult) resultJSON {
	return resultJSON{Cycle: r.Cycle, Name: r.Name, Excess: r.Excess, Message: r.Message}
}

func printPrettySummary(w io.Writer, s domain.ToleranceSummary) {
	fmt.Fprintf(w, "Cycles:           %d\n", s.Cycles)
	fmt.Fprintf(w, "Features:         %d\n", s.Features)
	fmt.Fprintf(w, "Out of tolerance: %d\n", s.OutOfTolerance)
	if s.Worst != nil {
		fmt.Fprintf(w, "Worst:            %s (cycle %d, +%s)\n", s.Worst.Name, s.Worst.Cycle, export.FormatFloat(s.Worst.Excess))
	}

	if s.Passed() {
		return
	}
	fmt.Fprintln(w)
	for _, r := range s.Results {
		if r.Passed {
			continue
		}
		fmt.Fprintf(w, "  ✗ cycle %d %s: %s\n", r.Cycle, r.Name, r.Message)
	}
}
