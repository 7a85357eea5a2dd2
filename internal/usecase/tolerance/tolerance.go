package tolerance

import (
	"fmt"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/usecase/export"
)

// Check returns the verdict for a single feature.
func Check(cycle int, f domain.Feature) domain.ToleranceResult {
	if f.InTolerance() {
		return domain.ToleranceResult{
			Cycle:   cycle,
			Name:    f.Name,
			Passed:  true,
			Message: fmt.Sprintf("deviation %s within ±%s", export.FormatFloat(f.Deviation), export.FormatFloat(f.Tolerance)),
		}
	}

	return domain.ToleranceResult{
		Cycle:   cycle,
		Name:    f.Name,
		Passed:  false,
		Excess:  f.OutOfTolerance,
		Message: fmt.Sprintf("deviation %s exceeds ±%s by %s", export.FormatFloat(f.Deviation), export.FormatFloat(f.Tolerance), export.FormatFloat(f.OutOfTolerance)),
	}
}

// Evaluate checks every feature, cycles then features in stored order.
func Evaluate(r domain.Report) []domain.ToleranceResult {
	out := make([]domain.ToleranceResult, 0, r.FeatureCount())
	for _, c := range r.Cycles {
		for _, f := range c.Features {
			out = append(out, Check(c.Number, f))
		}
	}
	return out
}

// Summarize evaluates r and aggregates the verdicts.
// Ties for the worst feature keep the earliest one.
func Summarize(r domain.Report) domain.ToleranceSummary {
	results := Evaluate(r)
	s := domain.ToleranceSummary{
		Cycles:   len(r.Cycles),
		Features: len(results),
		Results:  results,
	}

	for i := range results {
		if results[i].Passed {
			continue
		}
		s.OutOfTolerance++
		if s.Worst == nil || results[i].Excess > s.Worst.Excess {
			worst := results[i]
			s.Worst = &worst
		}
	}
	return s
}
