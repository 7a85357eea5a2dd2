package tui

import "github.com/z64/shark-report/internal/domain"

type reportLoadedMsg struct {
	source string
	report domain.Report
	err    error
}
