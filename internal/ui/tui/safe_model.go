package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps the program alive when Update or View panics: the panic is
// logged and the browser falls back to the cycle list.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) recovered(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"source", s.m.deps.Source,
		"screen", int(s.m.scr),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.recovered("tui.update", r)
			s.m.scr = screenCycles
			s.m.toast = panicToast
			tm, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.recovered("tui.view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}
