package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/z64/shark-report/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Create shark-report.yaml at root
	writeConfig(t, root, "shark_report:\n  output:\n    index: true\n")

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_FromFilePath(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	report := filepath.Join(root, "probe.txt")
	if err := os.WriteFile(report, []byte("CYCLE"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFinder().FindRoot(report)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")

	inner := filepath.Join(root, "sub")
	if err := os.MkdirAll(filepath.Join(inner, ConfigFile), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := NewFinder().FindRoot(inner)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}
