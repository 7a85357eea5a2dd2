// Package export renders a domain.Report as a structured tree, JSON, or
// tab-separated text.
//
// Numbers are written in their shortest round-trip decimal form without an
// exponent (strconv 'f', -1), so identical reports always produce identical bytes.
package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/z64/shark-report/internal/domain"
)

// StructuredReport is the serialized form of a report.
type StructuredReport struct {
	Cycles []StructuredCycle `json:"cycles"`
}

type StructuredCycle struct {
	Cycle    int                 `json:"cycle"`
	Features []StructuredFeature `json:"features"`
}

type StructuredFeature struct {
	Name           string  `json:"name"`
	Nominal        float64 `json:"nominal"`
	Tolerance      float64 `json:"tolerance"`
	Actual         float64 `json:"actual"`
	Deviation      float64 `json:"deviation"`
	OutOfTolerance float64 `json:"out_tol"`
	Data           string  `json:"data"`
}

// TabularColumns is the fixed column order of Tabular output.
var TabularColumns = []string{"cycle", "name", "nominal", "tolerance", "actual", "deviation", "out_tol"}

// Structured maps r into its export tree, keeping cycle and feature order.
func Structured(r domain.Report) StructuredReport {
	out := StructuredReport{Cycles: make([]StructuredCycle, 0, len(r.Cycles))}
	for _, c := range r.Cycles {
		sc := StructuredCycle{
			Cycle:    c.Number,
			Features: make([]StructuredFeature, 0, len(c.Features)),
		}
		for _, f := range c.Features {
			sc.Features = append(sc.Features, StructuredFeature{
				Name:           f.Name,
				Nominal:        f.Nominal,
				Tolerance:      f.Tolerance,
				Actual:         f.Actual,
				Deviation:      f.Deviation,
				OutOfTolerance: f.OutOfTolerance,
				Data:           f.SourceLine,
			})
		}
		out.Cycles = append(out.Cycles, sc)
	}
	return out
}

// JSON encodes the structured tree. indent <= 0 produces compact output.
func JSON(r domain.Report, indent int) ([]byte, error) {
	tree := Structured(r)
	if indent <= 0 {
		return json.Marshal(tree)
	}
	return json.MarshalIndent(tree, "", strings.Repeat(" ", indent))
}

// Tabular renders one tab-separated line per feature, cycles then features in
// stored order. Lines are joined by "\n" with no header and no trailing newline.
func Tabular(r domain.Report) string {
	lines := make([]string, 0, r.FeatureCount())
	for _, c := range r.Cycles {
		for _, f := range c.Features {
			lines = append(lines, strings.Join(Row(c.Number, f), "\t"))
		}
	}
	return strings.Join(lines, "\n")
}

// Row returns the tabular fields of one feature in TabularColumns order.
func Row(cycle int, f domain.Feature) []string {
	return []string{
		strconv.Itoa(cycle),
		f.Name,
		FormatFloat(f.Nominal),
		FormatFloat(f.Tolerance),
		FormatFloat(f.Actual),
		FormatFloat(f.Deviation),
		FormatFloat(f.OutOfTolerance),
	}
}

// FormatFloat is the fixed numeric format used by every text export.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
