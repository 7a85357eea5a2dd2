package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/z64/shark-report/internal/domain"
)

func sampleReport() domain.Report {
	var r domain.Report
	r.AddFeature(1, domain.NewFeature("CYCLE 1 FEATURE A", "A", 1.0, 0.01, 1.015))
	r.AddFeature(1, domain.NewFeature("CYCLE 1 FEATURE B", "B", 2.0, 0.05, 2.01))
	r.AddFeature(2, domain.NewFeature("CYCLE 2 FEATURE A", "A", 1.0, 0.01, 1.0))
	return r
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func TestModel_EnterOpensCycleAndBackReturns(t *testing.T) {
	m := newModel(Deps{Report: sampleReport(), Source: "probe.txt"})

	if got := len(m.cycles.Items()); got != 2 {
		t.Fatalf("expected 2 cycle items, got %d", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenFeatures {
		t.Fatalf("expected features screen, got %v", m.scr)
	}
	if got := len(m.features.Items()); got != 2 {
		t.Fatalf("expected 2 feature items, got %d", got)
	}
	if m.active != 0 {
		t.Fatalf("expected active cycle 0, got %d", m.active)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenCycles {
		t.Fatalf("expected cycles screen after esc, got %v", m.scr)
	}
}

func TestModel_EnterOnFilteredListOpensSelectedCycle(t *testing.T) {
	m := newModel(Deps{Report: sampleReport()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m.cycles.SetFilterText("2")
	if got := len(m.cycles.VisibleItems()); got != 1 {
		t.Fatalf("expected 1 visible cycle after filtering, got %d", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenFeatures {
		t.Fatalf("expected features screen, got %v", m.scr)
	}
	if m.features.Title != "Cycle 2" || m.active != 1 {
		t.Fatalf("expected cycle 2 opened, got title=%q active=%d", m.features.Title, m.active)
	}
	if got := len(m.features.Items()); got != 1 {
		t.Fatalf("expected 1 feature in cycle 2, got %d", got)
	}
}

func TestModel_QOnFeaturesGoesBackNotQuit(t *testing.T) {
	m := newModel(Deps{Report: sampleReport()})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, keyRune('q'))
	if m.scr != screenCycles {
		t.Fatalf("expected cycles screen, got %v", m.scr)
	}
	if cmd != nil {
		t.Fatalf("expected no command when leaving features")
	}
}

func TestModel_SummaryCountsOutOfTolerance(t *testing.T) {
	m := newModel(Deps{Report: sampleReport()})

	if m.summary.OutOfTolerance != 1 {
		t.Fatalf("expected 1 out of tolerance, got %d", m.summary.OutOfTolerance)
	}
	if !strings.Contains(m.View(), "1 out of tolerance") {
		t.Fatalf("expected summary in view")
	}
}

func TestModel_EmptyReportView(t *testing.T) {
	m := newModel(Deps{Source: "empty.txt"})

	if !strings.Contains(m.View(), "No measurement lines") {
		t.Fatalf("expected empty-state message")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenCycles {
		t.Fatalf("enter on an empty report must stay on cycles")
	}
}

type stubLoader struct {
	r   domain.Report
	err error
}

func (s stubLoader) Execute(context.Context, string) (domain.Report, error) {
	return s.r, s.err
}

func TestModel_ReloadReplacesReport(t *testing.T) {
	var fresh domain.Report
	fresh.AddFeature(7, domain.NewFeature("CYCLE 7 FEATURE Z", "Z", 0, 0.1, 0))

	m := newModel(Deps{Report: sampleReport(), Source: "probe.txt", Loader: stubLoader{r: fresh}})
	m, cmd := update(t, m, keyRune('r'))
	if cmd == nil {
		t.Fatalf("expected reload command")
	}

	m, _ = update(t, m, cmd())
	if got := len(m.cycles.Items()); got != 1 {
		t.Fatalf("expected 1 cycle after reload, got %d", got)
	}
	if m.toast != "Reloaded probe.txt" {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestModel_ReloadErrorKeepsReport(t *testing.T) {
	loadErr := &domain.OpError{Op: "reportfile.read", Kind: domain.KindIO, Path: "/tmp/probe.txt", Err: domain.ErrIO}
	m := newModel(Deps{Report: sampleReport(), Source: "probe.txt", Loader: stubLoader{err: loadErr}})

	m, cmd := update(t, m, keyRune('r'))
	m, _ = update(t, m, cmd())

	if got := len(m.cycles.Items()); got != 2 {
		t.Fatalf("expected report to be kept, got %d cycles", got)
	}
	if m.toast != "Cannot read probe.txt" {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestModel_ReloadWithoutLoader(t *testing.T) {
	m := newModel(Deps{Report: sampleReport()})
	m, cmd := update(t, m, keyRune('r'))
	if cmd != nil {
		t.Fatalf("expected no command without a loader")
	}
	if m.toast != "Reload is not available" {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"missing field", &domain.OpError{Op: "extract.line", Kind: domain.KindMissingField, Err: errors.New("field nominal: missing field")}, "Report line is missing nominal"},
		{"malformed", &domain.OpError{Op: "extract.line", Kind: domain.KindMalformedNumber, Err: errors.New("field cycle: malformed number")}, "Report line has a malformed cycle"},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{"yaml", &domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/w/shark-report.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at shark-report.yaml line 3"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("abcdef", 3); got != "abc…" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("abc", 3); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderFeatureDetails(t *testing.T) {
	f := domain.NewFeature("CYCLE 1 FEATURE A NOMINAL 1.000 TOL 0.010 ACTUAL 1.015", "A", 1.0, 0.01, 1.015)
	out := renderFeatureDetails(DefaultTheme(), f, 80)

	for _, want := range []string{"A [", "FAIL", "Nominal:   1", "Tolerance: ±0.01", "Actual:    1.015", "exceeds ±0.01", "CYCLE 1 FEATURE A"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in details:\n%s", want, out)
		}
	}
}
