package exportstore

import (
	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
)

// Default file names used when no workspace store is available.
const (
	DefaultJSONFile = "report.json"
	DefaultTSVFile  = "report.tsv"
	DefaultXLSXFile = "report.xlsx"
)

// FixedStore writes each export to an explicit path.
// A spreadsheet is written only when both the artifact carries one and XLSXPath is set.
type FixedStore struct {
	JSONPath string
	TSVPath  string
	XLSXPath string
}

var _ ports.ExportStore = FixedStore{}

func (s FixedStore) SaveExport(a domain.ExportArtifact) (domain.ExportRef, error) {
	ref := domain.ExportRef{
		ID:       s.JSONPath,
		JSONPath: s.JSONPath,
		TSVPath:  s.TSVPath,
	}

	if err := writeFile(s.JSONPath, a.JSON); err != nil {
		return domain.ExportRef{}, err
	}
	if err := writeFile(s.TSVPath, a.TSV); err != nil {
		return domain.ExportRef{}, err
	}
	if a.XLSX != nil && s.XLSXPath != "" {
		if err := writeFile(s.XLSXPath, a.XLSX); err != nil {
			return domain.ExportRef{}, err
		}
		ref.XLSXPath = s.XLSXPath
	}
	return ref, nil
}
