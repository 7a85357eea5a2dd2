package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/z64/shark-report/internal/domain"
)

// --- fakes ---

type fakeReader struct {
	raw string
	err error
}

func (f fakeReader) ReadReport(_ string) (string, error) {
	return f.raw, f.err
}

type fakeStore struct {
	saved bool
	last  domain.ExportArtifact
	err   error
}

func (s *fakeStore) SaveExport(a domain.ExportArtifact) (domain.ExportRef, error) {
	if s.err != nil {
		return domain.ExportRef{}, s.err
	}
	s.saved = true
	s.last = a
	return domain.ExportRef{ID: "export-123", JSONPath: "report.json", TSVPath: "report.tsv"}, nil
}

type fakeSheets struct {
	called bool
	err    error
}

func (f *fakeSheets) EncodeReport(_ domain.Report) ([]byte, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return []byte("xlsx"), nil
}

// --- tests ---

func TestConvertReport_SavesJSONAndTSV(t *testing.T) {
	store := &fakeStore{}
	now := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	uc := NewConvertReport(fakeReader{raw: sampleReport}, store, WithClock(func() time.Time { return now }))
	report, ref, err := uc.Execute(context.Background(), "probe.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ID != "export-123" {
		t.Fatalf("expected ref from store, got %+v", ref)
	}
	if !store.saved {
		t.Fatalf("expected store to be called")
	}

	a := store.last
	if a.SourcePath != "probe.txt" || !a.CreatedAt.Equal(now) {
		t.Fatalf("unexpected artifact metadata: %+v", a)
	}
	if a.Cycles != 2 || a.Features != 3 {
		t.Fatalf("expected 2 cycles / 3 features, got %d / %d", a.Cycles, a.Features)
	}
	if !strings.Contains(string(a.JSON), `"out_tol"`) {
		t.Fatalf("expected JSON export, got %s", a.JSON)
	}
	if got := strings.Count(string(a.TSV), "\n") + 1; got != report.FeatureCount() {
		t.Fatalf("expected %d TSV lines, got %d", report.FeatureCount(), got)
	}
	if a.XLSX != nil {
		t.Fatalf("expected no spreadsheet without encoder")
	}
}

func TestConvertReport_WithSpreadsheet(t *testing.T) {
	store := &fakeStore{}
	sheets := &fakeSheets{}

	uc := NewConvertReport(fakeReader{raw: sampleReport}, store, WithSpreadsheet(sheets), WithJSONIndent(0))
	if _, _, err := uc.Execute(context.Background(), "probe.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sheets.called {
		t.Fatalf("expected spreadsheet encoder to be called")
	}
	if string(store.last.XLSX) != "xlsx" {
		t.Fatalf("expected spreadsheet bytes in artifact")
	}
	if strings.Contains(string(store.last.JSON), "\n") {
		t.Fatalf("expected compact JSON with indent 0")
	}
}

func TestConvertReport_ReaderErrorPropagates(t *testing.T) {
	readErr := &domain.OpError{Op: "reportfile.read", Kind: domain.KindIO, Err: domain.ErrIO}
	store := &fakeStore{}

	uc := NewConvertReport(fakeReader{err: readErr}, store)
	_, _, err := uc.Execute(context.Background(), "missing.txt")
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if store.saved {
		t.Fatalf("expected nothing saved on read failure")
	}
}

func TestConvertReport_ParseErrorNamesInput(t *testing.T) {
	store := &fakeStore{}

	uc := NewConvertReport(fakeReader{raw: "CYCLE 1 FEATURE A\n"}, store)
	_, _, err := uc.Execute(context.Background(), "bad.txt")
	if !domain.IsKind(err, domain.KindMissingField) {
		t.Fatalf("expected KindMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "path=bad.txt") {
		t.Fatalf("expected input path in error, got %v", err)
	}
	if store.saved {
		t.Fatalf("expected nothing saved on parse failure")
	}
}

func TestConvertReport_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("disk full")
	uc := NewConvertReport(fakeReader{raw: sampleReport}, &fakeStore{err: storeErr})

	report, _, err := uc.Execute(context.Background(), "probe.txt")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(report.Cycles) != 0 || len(report.RawLines) != 0 {
		t.Fatalf("expected zero report on failure, got %+v", report)
	}
}

func TestConvertReport_SpreadsheetErrorReturnsNoReport(t *testing.T) {
	sheetErr := errors.New("encode failed")
	store := &fakeStore{}
	uc := NewConvertReport(fakeReader{raw: sampleReport}, store, WithSpreadsheet(&fakeSheets{err: sheetErr}))

	report, ref, err := uc.Execute(context.Background(), "probe.txt")
	if !errors.Is(err, sheetErr) {
		t.Fatalf("expected spreadsheet error, got %v", err)
	}
	if len(report.Cycles) != 0 || ref.ID != "" {
		t.Fatalf("expected zero report and ref on failure, got %+v / %+v", report, ref)
	}
	if store.saved {
		t.Fatalf("expected nothing saved when encoding fails")
	}
}

func TestConvertReport_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &fakeStore{}
	uc := NewConvertReport(fakeReader{raw: sampleReport}, store)
	report, _, err := uc.Execute(ctx, "probe.txt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(report.Cycles) != 0 {
		t.Fatalf("expected zero report after cancel, got %d cycles", len(report.Cycles))
	}
	if store.saved {
		t.Fatalf("expected nothing saved after cancel")
	}
}
