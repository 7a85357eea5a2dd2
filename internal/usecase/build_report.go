package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
	"github.com/z64/shark-report/internal/usecase/extract"
	"github.com/z64/shark-report/internal/usecase/normalize"
)

// BuildReport turns probe report text into a domain.Report.
type BuildReport struct {
	log *slog.Logger
}

func NewBuildReport(log *slog.Logger) *BuildReport {
	return &BuildReport{log: orDiscard(log)}
}

// Execute normalizes raw, extracts every significant line in order and groups
// the features by cycle number (first-seen order).
//
// The first malformed line aborts the build; no partial report is returned.
func (uc *BuildReport) Execute(raw string) (domain.Report, error) {
	lines := normalize.Lines(raw)

	report := domain.Report{
		RawLines: lines,
		Cycles:   []domain.Cycle{},
	}
	for i, line := range lines {
		number, feature, err := extract.Line(line)
		if err != nil {
			uc.log.Debug("report.line_rejected", "index", i, "line", line, "err", err)
			return domain.Report{}, err
		}
		report.AddFeature(number, feature)
	}

	uc.log.Debug("report.built",
		"lines", len(lines),
		"cycles", len(report.Cycles),
		"features", report.FeatureCount(),
	)
	return report, nil
}

// LoadReport reads a report from a source and builds it.
type LoadReport struct {
	reader  ports.ReportReader
	builder *BuildReport
}

func NewLoadReport(rr ports.ReportReader, b *BuildReport) *LoadReport {
	if b == nil {
		b = NewBuildReport(nil)
	}
	return &LoadReport{reader: rr, builder: b}
}

func (uc *LoadReport) Execute(ctx context.Context, path string) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	raw, err := uc.reader.ReadReport(path)
	if err != nil {
		return domain.Report{}, err
	}

	report, err := uc.builder.Execute(raw)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return domain.Report{}, err
	}
	return report, nil
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return log
}
