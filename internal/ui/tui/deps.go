package tui

import (
	"context"
	"log/slog"

	"github.com/z64/shark-report/internal/domain"
)

// ReportLoader re-reads a report from its source.
type ReportLoader interface {
	Execute(ctx context.Context, path string) (domain.Report, error)
}

type Deps struct {
	Report domain.Report
	Source string

	// Loader enables reloading with "r"; optional.
	Loader ReportLoader

	Logger *slog.Logger
	Debug  bool
}
