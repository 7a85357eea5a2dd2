package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/usecase/export"
	"github.com/z64/shark-report/internal/usecase/tolerance"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func featureLine(f domain.Feature) string {
	return fmt.Sprintf("nominal %s • tol ±%s • actual %s • dev %s",
		export.FormatFloat(f.Nominal),
		export.FormatFloat(f.Tolerance),
		export.FormatFloat(f.Actual),
		export.FormatFloat(f.Deviation),
	)
}

func summaryLine(s domain.ToleranceSummary) string {
	line := fmt.Sprintf("%d cycles • %d features • %d out of tolerance", s.Cycles, s.Features, s.OutOfTolerance)
	if s.Worst != nil {
		line += fmt.Sprintf(" • worst %s (cycle %d, +%s)", s.Worst.Name, s.Worst.Cycle, export.FormatFloat(s.Worst.Excess))
	}
	return line
}

func renderFeatureDetails(th Theme, f domain.Feature, width int) string {
	var b strings.Builder

	status := th.Pass.Render("PASS")
	if !f.InTolerance() {
		status = th.Fail.Render("FAIL")
	}

	b.WriteString(f.Name)
	b.WriteString(" [")
	b.WriteString(status)
	b.WriteString("]\n\n")

	b.WriteString(fmt.Sprintf("Nominal:   %s\n", export.FormatFloat(f.Nominal)))
	b.WriteString(fmt.Sprintf("Tolerance: ±%s\n", export.FormatFloat(f.Tolerance)))
	b.WriteString(fmt.Sprintf("Actual:    %s\n", export.FormatFloat(f.Actual)))
	b.WriteString(fmt.Sprintf("Deviation: %s\n", export.FormatFloat(f.Deviation)))
	b.WriteString(fmt.Sprintf("Out tol:   %s\n\n", export.FormatFloat(f.OutOfTolerance)))

	b.WriteString(tolerance.Check(0, f).Message)
	b.WriteString("\n\nSource:\n  ")
	if width < 20 {
		width = 80
	}
	b.WriteString(clampString(f.SourceLine, width))
	b.WriteString("\n")

	return b.String()
}
