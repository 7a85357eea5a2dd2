package ports

import "github.com/z64/shark-report/internal/domain"

// ExportStore persists encoded report exports.
type ExportStore interface {
	SaveExport(a domain.ExportArtifact) (domain.ExportRef, error)
}
