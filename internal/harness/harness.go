package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/measura/measura/internal/catalog"
	"github.com/measura/measura/internal/quantity"
)

const defaultTolerance = 1e-9

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Check  Check
	Got    float64
	Err    error
	Pass   bool
	Detail string
}

// Result is the outcome of a full scenario run.
type Result struct {
	Scenario *Scenario
	Checks   []CheckResult
	Pass     bool
}

// Run executes a scenario against a catalog. The catalog argument
// carries the built-in entries; if the scenario names a catalog
// directory its declarations are loaded on top.
func Run(s *Scenario, cat *catalog.Catalog) (*Result, error) {
	if s.Catalog != "" {
		loaded, errs := catalog.LoadDir(s.Catalog, cat, catalog.FailFast)
		if len(errs) > 0 {
			return nil, fmt.Errorf("loading scenario catalog: %w", errs[0])
		}
		cat = loaded.Catalog
	}

	res := &Result{Scenario: s, Pass: true}
	for _, c := range s.Checks {
		cr := runCheck(c, cat)
		if !cr.Pass {
			res.Pass = false
		}
		res.Checks = append(res.Checks, cr)
	}
	return res, nil
}

func runCheck(c Check, cat *catalog.Catalog) CheckResult {
	cr := CheckResult{Check: c}

	got, err := convert(cat, c.Value, c.Unit, c.To, c.Spec)
	cr.Got = got
	cr.Err = err

	tol := c.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}

	switch {
	case c.WantError != "":
		if err == nil {
			cr.Detail = fmt.Sprintf("expected error containing %q, conversion succeeded", c.WantError)
			return cr
		}
		if !strings.Contains(err.Error(), c.WantError) {
			cr.Detail = fmt.Sprintf("expected error containing %q, got: %v", c.WantError, err)
			return cr
		}
		cr.Pass = true
		return cr

	case err != nil:
		cr.Detail = err.Error()
		return cr

	case c.Expect != nil:
		if math.Abs(got-*c.Expect) > tol {
			cr.Detail = fmt.Sprintf("want %v within %v", *c.Expect, tol)
			return cr
		}
		cr.Pass = true
		return cr

	default: // round trip
		back, err := convert(cat, got, c.To, c.Unit, c.Spec)
		if err != nil {
			cr.Detail = fmt.Sprintf("round trip failed: %v", err)
			return cr
		}
		if math.Abs(back-c.Value) > tol {
			cr.Detail = fmt.Sprintf("round trip returned %v, want %v", back, c.Value)
			return cr
		}
		cr.Pass = true
		return cr
	}
}

func convert(cat *catalog.Catalog, value float64, from, to, spec string) (float64, error) {
	ref, err := cat.Reference(spec, from)
	if err != nil {
		return 0, err
	}
	target, err := cat.Unit(to)
	if err != nil {
		return 0, err
	}
	out, err := quantity.New(value, ref).In(target)
	if err != nil {
		return 0, err
	}
	return out.Value(), nil
}
