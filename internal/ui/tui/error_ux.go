package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/z64/shark-report/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+(\w+)`)
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindMissingField:
			if f := extractField(causeText(oe)); f != "" {
				return "Report line is missing " + f
			}
			return "Report line is missing a field"

		case domain.KindMalformedNumber:
			if f := extractField(causeText(oe)); f != "" {
				return "Report line has a malformed " + f
			}
			return "Report line has a malformed number"

		case domain.KindIO:
			if strings.TrimSpace(oe.Path) != "" {
				return "Cannot read " + filepath.Base(oe.Path)
			}
			return "File error (see logs)"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func causeText(oe *domain.OpError) string {
	if oe.Err == nil {
		return ""
	}
	return oe.Err.Error()
}
