// Package query evaluates JSONPath expressions against the structured export
// of a report.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/usecase/export"
)

// Eval runs expr over the export tree of r.
// The tree is round-tripped through JSON so expressions see the exported field
// names (cycles, features, out_tol, ...).
func Eval(r domain.Report, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig),
		}
	}

	doc, err := document(r)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}
	return val, nil
}

func document(r domain.Report) (any, error) {
	b, err := export.JSON(r, 0)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
