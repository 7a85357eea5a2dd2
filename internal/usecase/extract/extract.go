// Package extract parses normalized probe report lines into features.
package extract

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/z64/shark-report/internal/domain"
)

// Field names as reported in errors.
const (
	FieldCycle     = "CYCLE"
	FieldName      = "FEATURE"
	FieldNominal   = "NOMINAL"
	FieldTolerance = "TOL"
	FieldActual    = "ACTUAL"
)

// Each field is located on its own, so label order within a line does not matter.
var (
	reCycle     = regexp.MustCompile(`CYCLE\s(\d+)`)
	reName      = regexp.MustCompile(`FEATURE\s(\w+)`)
	reNominal   = regexp.MustCompile(`NOMINAL\s(-?\d+\.\d+)`)
	reTolerance = regexp.MustCompile(`TOL\s(\d+\.\d+)`)
	reActual    = regexp.MustCompile(`ACTUAL\s(-?\d+\.\d+)`)
)

// Line parses one normalized line into its cycle number and feature.
//
// Policy:
// - A missing label fails with KindMissingField; nothing defaults to zero.
// - A captured value that does not parse fails with KindMalformedNumber.
func Line(line string) (int, domain.Feature, error) {
	rawCycle, err := find(reCycle, FieldCycle, line)
	if err != nil {
		return 0, domain.Feature{}, err
	}
	cycle, err := strconv.Atoi(rawCycle)
	if err != nil {
		return 0, domain.Feature{}, malformed(FieldCycle, line, err)
	}

	name, err := find(reName, FieldName, line)
	if err != nil {
		return 0, domain.Feature{}, err
	}

	nominal, err := findFloat(reNominal, FieldNominal, line)
	if err != nil {
		return 0, domain.Feature{}, err
	}
	tolerance, err := findFloat(reTolerance, FieldTolerance, line)
	if err != nil {
		return 0, domain.Feature{}, err
	}
	actual, err := findFloat(reActual, FieldActual, line)
	if err != nil {
		return 0, domain.Feature{}, err
	}

	return cycle, domain.NewFeature(line, name, nominal, tolerance, actual), nil
}

func find(re *regexp.Regexp, field, line string) (string, error) {
	m := re.FindStringSubmatch(line)
	if len(m) != 2 {
		return "", &domain.OpError{
			Op:   "extract.line",
			Kind: domain.KindMissingField,
			Line: line,
			Err:  fmt.Errorf("field %s: %w", field, domain.ErrMissingField),
		}
	}
	return m[1], nil
}

func findFloat(re *regexp.Regexp, field, line string) (float64, error) {
	s, err := find(re, field, line)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed(field, line, err)
	}
	return v, nil
}

func malformed(field, line string, cause error) error {
	return &domain.OpError{
		Op:   "extract.line",
		Kind: domain.KindMalformedNumber,
		Line: line,
		Err:  fmt.Errorf("field %s: %w: %v", field, domain.ErrMalformedNumber, cause),
	}
}
