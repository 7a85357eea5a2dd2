// Package xlsxexport renders reports as Excel workbooks.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
	"github.com/z64/shark-report/internal/usecase/export"
)

const DefaultSheet = "Report"

// Encoder writes one row per feature under a header row, using the same column
// order as the tab-separated export. Out-of-tolerance rows are highlighted.
type Encoder struct {
	sheet string
}

type Option func(*Encoder)

func WithSheet(name string) Option {
	return func(e *Encoder) {
		if name != "" {
			e.sheet = name
		}
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{sheet: DefaultSheet}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.SpreadsheetEncoder = (*Encoder)(nil)

func (e *Encoder) EncodeReport(r domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", e.sheet); err != nil {
		return nil, wrap("xlsxexport.sheet", err)
	}

	header := make([]any, 0, len(export.TabularColumns))
	for _, c := range export.TabularColumns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(e.sheet, "A1", &header); err != nil {
		return nil, wrap("xlsxexport.header", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, wrap("xlsxexport.style", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(export.TabularColumns))
	if err != nil {
		return nil, wrap("xlsxexport.style", err)
	}
	if err := f.SetCellStyle(e.sheet, "A1", lastCol+"1", bold); err != nil {
		return nil, wrap("xlsxexport.style", err)
	}

	flagged, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return nil, wrap("xlsxexport.style", err)
	}

	row := 2
	for _, c := range r.Cycles {
		for _, ft := range c.Features {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, wrap("xlsxexport.row", err)
			}
			values := []any{c.Number, ft.Name, ft.Nominal, ft.Tolerance, ft.Actual, ft.Deviation, ft.OutOfTolerance}
			if err := f.SetSheetRow(e.sheet, cell, &values); err != nil {
				return nil, wrap("xlsxexport.row", err)
			}
			if !ft.InTolerance() {
				end := fmt.Sprintf("%s%d", lastCol, row)
				if err := f.SetCellStyle(e.sheet, cell, end, flagged); err != nil {
					return nil, wrap("xlsxexport.style", err)
				}
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, wrap("xlsxexport.write", err)
	}
	return buf.Bytes(), nil
}

func wrap(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  err,
	}
}
