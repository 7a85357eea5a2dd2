package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/z64/shark-report/internal/domain"
)

func TestEncodeReport_RowsAndHeader(t *testing.T) {
	var r domain.Report
	r.AddFeature(1, domain.NewFeature("", "X", 1.0, 0.01, 1.015))
	r.AddFeature(1, domain.NewFeature("", "Y", 2.0, 0.1, 2.0))
	r.AddFeature(2, domain.NewFeature("", "Z", 3.0, 0.1, 3.0))

	b, err := NewEncoder().EncodeReport(r)
	if err != nil {
		t.Fatalf("EncodeReport error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "cycle" || rows[0][6] != "out_tol" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "1" || rows[1][1] != "X" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[3][0] != "2" || rows[3][1] != "Z" {
		t.Fatalf("unexpected last row %v", rows[3])
	}
}

func TestEncodeReport_CustomSheet(t *testing.T) {
	b, err := NewEncoder(WithSheet("Cycles")).EncodeReport(domain.Report{})
	if err != nil {
		t.Fatalf("EncodeReport error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Cycles" {
		t.Fatalf("expected single sheet Cycles, got %v", got)
	}
}
