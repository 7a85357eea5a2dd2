package domain

import "math"

// Feature is one named measured quantity within a cycle.
// Deviation and OutOfTolerance are derived by NewFeature and never set directly.
type Feature struct {
	// SourceLine is the normalized report line the feature was parsed from.
	SourceLine string
	Name       string

	Nominal   float64
	Tolerance float64 // symmetric band, expected to be non-negative
	Actual    float64

	Deviation      float64
	OutOfTolerance float64
}

// NewFeature builds a Feature and computes its derived values.
func NewFeature(sourceLine, name string, nominal, tolerance, actual float64) Feature {
	dev := actual - nominal
	return Feature{
		SourceLine:     sourceLine,
		Name:           name,
		Nominal:        nominal,
		Tolerance:      tolerance,
		Actual:         actual,
		Deviation:      dev,
		OutOfTolerance: OutOfTolerance(dev, tolerance),
	}
}

// OutOfTolerance returns max(0, |deviation| - tolerance).
func OutOfTolerance(deviation, tolerance float64) float64 {
	over := math.Abs(deviation) - tolerance
	if over > 0 {
		return over
	}
	return 0
}

// InTolerance reports whether the measured value lies within the tolerance band.
func (f Feature) InTolerance() bool {
	return f.OutOfTolerance == 0
}

// Cycle groups the features measured during one probe pass.
type Cycle struct {
	Number   int
	Features []Feature
}

// Report is the parsed form of a whole probe report.
type Report struct {
	// RawLines holds the normalized significant lines in file order.
	RawLines []string

	// Cycles are ordered by the first appearance of their number.
	Cycles []Cycle
}

// AddFeature appends f to the cycle with the given number, creating the cycle
// at the end of r.Cycles the first time the number is seen.
func (r *Report) AddFeature(number int, f Feature) {
	for i := range r.Cycles {
		if r.Cycles[i].Number == number {
			r.Cycles[i].Features = append(r.Cycles[i].Features, f)
			return
		}
	}
	r.Cycles = append(r.Cycles, Cycle{
		Number:   number,
		Features: []Feature{f},
	})
}

// FindCycle returns the cycle with the given number.
func (r Report) FindCycle(number int) (Cycle, bool) {
	for _, c := range r.Cycles {
		if c.Number == number {
			return c, true
		}
	}
	return Cycle{}, false
}

// FeatureCount returns the number of features across all cycles.
func (r Report) FeatureCount() int {
	n := 0
	for _, c := range r.Cycles {
		n += len(c.Features)
	}
	return n
}
