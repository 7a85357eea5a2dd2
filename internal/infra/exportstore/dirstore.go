package exportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
)

const defaultExportsDir = "exports"

// DirStore writes exports into <root>/<exports_dir> as
// <timestamp>_<slug>.{json,tsv,xlsx}, optionally recording each one in index.jsonl.
type DirStore struct {
	rootDir        string
	exportsDirName string
	writeIndex     bool
	now            func() time.Time
	newID          func() string
}

type Option func(*DirStore)

// WithIndex enables a simple JSONL index: exports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *DirStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *DirStore) { s.now = now }
}

// WithIDs is useful for tests.
func WithIDs(newID func() string) Option {
	return func(s *DirStore) { s.newID = newID }
}

func NewDirStore(root string, cfg domain.Config, opts ...Option) *DirStore {
	exportsDir := cfg.Output.ExportsDir
	if strings.TrimSpace(exportsDir) == "" {
		exportsDir = defaultExportsDir
	}

	s := &DirStore{
		rootDir:        root,
		exportsDirName: exportsDir,
		writeIndex:     false,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ExportStore = (*DirStore)(nil)

func (s *DirStore) SaveExport(a domain.ExportArtifact) (domain.ExportRef, error) {
	dir := filepath.Join(s.rootDir, s.exportsDirName)

	ts := a.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	sourcePart := strings.TrimSuffix(filepath.Base(a.SourcePath), filepath.Ext(a.SourcePath))
	slug := slugify(sourcePart)
	if slug == "" {
		slug = "report"
	}
	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)

	ref := domain.ExportRef{
		ID:       s.newID(),
		JSONPath: filepath.Join(dir, base+".json"),
		TSVPath:  filepath.Join(dir, base+".tsv"),
	}

	if err := writeFile(ref.JSONPath, a.JSON); err != nil {
		return domain.ExportRef{}, err
	}
	if err := writeFile(ref.TSVPath, a.TSV); err != nil {
		return domain.ExportRef{}, err
	}
	if a.XLSX != nil {
		ref.XLSXPath = filepath.Join(dir, base+".xlsx")
		if err := writeFile(ref.XLSXPath, a.XLSX); err != nil {
			return domain.ExportRef{}, err
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, base, ts, ref, a)
	}

	return ref, nil
}

func (s *DirStore) appendIndex(dir, base string, ts time.Time, ref domain.ExportRef, a domain.ExportArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Source    string    `json:"source"`
		Cycles    int       `json:"cycles"`
		Features  int       `json:"features"`
		XLSX      bool      `json:"xlsx"`
		CreatedAt time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        ref.ID,
		Name:      base,
		Source:    a.SourcePath,
		Cycles:    a.Cycles,
		Features:  a.Features,
		XLSX:      ref.XLSXPath != "",
		CreatedAt: ts,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
