package ports

import "github.com/z64/shark-report/internal/domain"

// SpreadsheetEncoder renders a report as a spreadsheet document.
type SpreadsheetEncoder interface {
	EncodeReport(r domain.Report) ([]byte, error)
}
