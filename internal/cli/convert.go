package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/infra/exportstore"
	"github.com/z64/shark-report/internal/infra/logger"
	"github.com/z64/shark-report/internal/infra/reportfile"
	"github.com/z64/shark-report/internal/infra/xlsxexport"
	"github.com/z64/shark-report/internal/ports"
	"github.com/z64/shark-report/internal/usecase"
)

type convertFlags struct {
	workspace string
	jsonPath  string
	tsvPath   string
	xlsxPath  string
	outDir    string
	noIndex   bool
}

func convertCmd() *cobra.Command {
	var f convertFlags

	c := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a probe report to JSON and TSV (and XLSX when enabled)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(f.workspace)
			if err != nil {
				return err
			}

			opts := []usecase.ConvertOption{
				usecase.WithJSONIndent(ws.cfg.Output.JSONIndent),
				usecase.WithLogger(logger.L()),
			}
			if ws.cfg.Output.XLSX || f.xlsxPath != "" {
				opts = append(opts, usecase.WithSpreadsheet(xlsxexport.NewEncoder()))
			}

			uc := usecase.NewConvertReport(reportfile.NewReader(), selectStore(ws, f), opts...)

			report, ref, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printConverted(os.Stdout, report, ref)
			return nil
		},
	}

	c.Flags().StringVarP(&f.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&f.jsonPath, "json", "", "Write JSON to this path instead of the exports dir")
	c.Flags().StringVar(&f.tsvPath, "tsv", "", "Write TSV to this path instead of the exports dir")
	c.Flags().StringVar(&f.xlsxPath, "xlsx", "", "Write an XLSX workbook to this path")
	c.Flags().StringVar(&f.outDir, "out-dir", "", "Directory for report.json / report.tsv when no explicit paths are given")
	c.Flags().BoolVar(&f.noIndex, "no-index", false, "Do not append to the exports index")
	return c
}

// selectStore picks the workspace export store unless explicit output paths
// were requested or there is no workspace, in which case files land at fixed
// paths (report.json / report.tsv by default).
func selectStore(ws *workspaceCtx, f convertFlags) ports.ExportStore {
	explicit := f.jsonPath != "" || f.tsvPath != "" || f.xlsxPath != "" || f.outDir != ""
	if ws.root != "" && !explicit {
		return exportstore.NewDirStore(ws.root, ws.cfg,
			exportstore.WithIndex(ws.cfg.Output.Index && !f.noIndex),
		)
	}

	store := exportstore.FixedStore{
		JSONPath: orDefault(f.jsonPath, filepath.Join(f.outDir, exportstore.DefaultJSONFile)),
		TSVPath:  orDefault(f.tsvPath, filepath.Join(f.outDir, exportstore.DefaultTSVFile)),
		XLSXPath: f.xlsxPath,
	}
	if store.XLSXPath == "" && ws.cfg.Output.XLSX {
		store.XLSXPath = filepath.Join(f.outDir, exportstore.DefaultXLSXFile)
	}
	return store
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func printConverted(w io.Writer, r domain.Report, ref domain.ExportRef) {
	fmt.Fprintf(w, "Cycles:   %d\n", len(r.Cycles))
	fmt.Fprintf(w, "Features: %d\n", r.FeatureCount())
	fmt.Fprintf(w, "JSON:     %s\n", ref.JSONPath)
	fmt.Fprintf(w, "TSV:      %s\n", ref.TSVPath)
	if ref.XLSXPath != "" {
		fmt.Fprintf(w, "XLSX:     %s\n", ref.XLSXPath)
	}
}
