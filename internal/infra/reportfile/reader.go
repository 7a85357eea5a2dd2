package reportfile

import (
	"fmt"
	"os"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
)

// Reader loads probe reports from the local filesystem in a single read.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

var _ ports.ReportReader = (*Reader)(nil)

func (r *Reader) ReadReport(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportfile.read",
			Kind: domain.KindIO,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrIO, err),
		}
	}
	return string(b), nil
}
