package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
	"github.com/z64/shark-report/internal/usecase/export"
)

// ConvertReport loads a report and persists its JSON, TSV and optional
// spreadsheet exports through a store.
type ConvertReport struct {
	loader *LoadReport
	store  ports.ExportStore
	sheets ports.SpreadsheetEncoder

	indent int
	now    func() time.Time
	log    *slog.Logger
}

type ConvertOption func(*ConvertReport)

// WithSpreadsheet adds an XLSX export produced by enc.
func WithSpreadsheet(enc ports.SpreadsheetEncoder) ConvertOption {
	return func(uc *ConvertReport) { uc.sheets = enc }
}

// WithJSONIndent sets the JSON indentation width (0 = compact).
func WithJSONIndent(n int) ConvertOption {
	return func(uc *ConvertReport) { uc.indent = n }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) ConvertOption {
	return func(uc *ConvertReport) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(log *slog.Logger) ConvertOption {
	return func(uc *ConvertReport) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewConvertReport(rr ports.ReportReader, store ports.ExportStore, opts ...ConvertOption) *ConvertReport {
	uc := &ConvertReport{
		store:  store,
		indent: domain.DefaultConfig().Output.JSONIndent,
		now:    time.Now,
		log:    orDiscard(nil),
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.loader = NewLoadReport(rr, NewBuildReport(uc.log))
	return uc
}

func (uc *ConvertReport) Execute(ctx context.Context, inputPath string) (domain.Report, domain.ExportRef, error) {
	report, err := uc.loader.Execute(ctx, inputPath)
	if err != nil {
		return domain.Report{}, domain.ExportRef{}, err
	}

	js, err := export.JSON(report, uc.indent)
	if err != nil {
		return domain.Report{}, domain.ExportRef{}, &domain.OpError{
			Op:   "convert.json",
			Kind: domain.KindExecution,
			Path: inputPath,
			Err:  err,
		}
	}

	artifact := domain.ExportArtifact{
		SourcePath: inputPath,
		CreatedAt:  uc.now(),
		Cycles:     len(report.Cycles),
		Features:   report.FeatureCount(),
		JSON:       js,
		TSV:        []byte(export.Tabular(report)),
	}

	if uc.sheets != nil {
		xlsx, err := uc.sheets.EncodeReport(report)
		if err != nil {
			return domain.Report{}, domain.ExportRef{}, err
		}
		artifact.XLSX = xlsx
	}

	if err := ctx.Err(); err != nil {
		return domain.Report{}, domain.ExportRef{}, err
	}

	ref, err := uc.store.SaveExport(artifact)
	if err != nil {
		return domain.Report{}, domain.ExportRef{}, err
	}

	uc.log.Info("export.saved",
		"input", inputPath,
		"id", ref.ID,
		"json", ref.JSONPath,
		"tsv", ref.TSVPath,
		"xlsx", ref.XLSXPath,
		"cycles", artifact.Cycles,
		"features", artifact.Features,
	)
	return report, ref, nil
}
