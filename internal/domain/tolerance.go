package domain

// ToleranceResult is the verdict for a single feature.
type ToleranceResult struct {
	Cycle   int
	Name    string
	Passed  bool
	Excess  float64
	Message string
}

// ToleranceSummary aggregates verdicts over a whole report.
type ToleranceSummary struct {
	Cycles         int
	Features       int
	OutOfTolerance int

	// Worst is the feature with the largest excess; nil when every feature passes.
	Worst *ToleranceResult

	Results []ToleranceResult
}

// Passed reports whether every feature is within tolerance.
func (s ToleranceSummary) Passed() bool {
	return s.OutOfTolerance == 0
}
