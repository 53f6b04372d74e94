package harness

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/measura/measura/internal/catalog"
)

// RenderReport renders a result as deterministic text, one line per
// check, suitable for golden comparison.
func RenderReport(res *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", res.Scenario.Name)
	if res.Scenario.Description != "" {
		fmt.Fprintf(&b, "description: %s\n", res.Scenario.Description)
	}
	for _, cr := range res.Checks {
		c := cr.Check
		fmt.Fprintf(&b, "check %s: %s %s -> %s: ", c.Name, formatInput(c.Value), c.Unit, c.To)
		switch {
		case c.WantError != "" && cr.Pass:
			fmt.Fprintf(&b, "error %s [pass]\n", c.WantError)
		case cr.Pass && c.RoundTrip:
			fmt.Fprintf(&b, "got %s, round trip ok [pass]\n", formatValue(cr.Got))
		case cr.Pass:
			fmt.Fprintf(&b, "got %s [pass]\n", formatValue(cr.Got))
		default:
			fmt.Fprintf(&b, "%s [fail]\n", cr.Detail)
		}
	}
	fmt.Fprintf(&b, "status: %s\n", verdict(res.Pass))
	return b.String()
}

// AssertGolden runs a scenario and compares the rendered report against
// the golden file named after the scenario. Run with -update to
// regenerate.
func AssertGolden(t *testing.T, s *Scenario, cat *catalog.Catalog) {
	t.Helper()
	res, err := Run(s, cat)
	if err != nil {
		t.Fatalf("running scenario %s: %v", s.Name, err)
	}
	g := newGoldie(t)
	g.Assert(t, s.Name, []byte(RenderReport(res)))
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}

// formatInput renders a declared input value exactly as the shortest
// round-trippable decimal.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatValue renders a computed value at six significant digits so
// reports stay stable across platforms.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
