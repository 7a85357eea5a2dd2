// Package normalize turns raw probe report text into canonical data lines.
package normalize

import (
	"regexp"
	"strings"
)

// Marker identifies a significant (measurement) line.
const Marker = "CYCLE"

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reBareDot   = regexp.MustCompile(`(^|\D)\.`)
	reMinusSpan = regexp.MustCompile(`-\s`)
)

// Lines keeps the lines of raw that contain Marker, in order, and rewrites each
// into canonical form:
//   - whitespace runs collapse to a single space
//   - a decimal point not preceded by a digit gains a leading zero (" .5" -> " 0.5", "-.5" -> "-0.5")
//   - a space after a minus sign is removed ("- 5" -> "-5")
//
// Lines are never dropped once selected.
func Lines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, Marker) {
			continue
		}
		out = append(out, Line(line))
	}
	return out
}

// Line applies the canonical rewrites to a single line.
func Line(line string) string {
	line = reSpaces.ReplaceAllString(line, " ")
	line = reBareDot.ReplaceAllString(line, "${1}0.")
	return reMinusSpan.ReplaceAllString(line, "-")
}
