package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdReloadReport(deps Deps) tea.Cmd {
	return func() tea.Msg {
		r, err := deps.Loader.Execute(context.Background(), deps.Source)
		return reportLoadedMsg{source: deps.Source, report: r, err: err}
	}
}
