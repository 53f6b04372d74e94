package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/catalog"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "si_lengths.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "si_lengths", s.Name)
	assert.Equal(t, "SI length conversions", s.Description)
	require.Len(t, s.Checks, 4)

	first := s.Checks[0]
	assert.Equal(t, "kilometre_to_metre", first.Name)
	assert.Equal(t, 1.5, first.Value)
	assert.Equal(t, "km", first.Unit)
	assert.Equal(t, "m", first.To)
	require.NotNil(t, first.Expect)
	assert.Equal(t, 1500.0, *first.Expect)

	last := s.Checks[3]
	assert.Equal(t, "KIND_MISMATCH", last.WantError)
}

func TestLoadScenarioResolvesCatalogPath(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "site_units.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "site"), s.Catalog)
}

func TestLoadScenarioRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "checks:\n  - {name: a, value: 1, unit: m, to: km, expect: 0.001}\n",
			wantErr: "name is required",
		},
		{
			name:    "no checks",
			yaml:    "name: empty\n",
			wantErr: "at least one check",
		},
		{
			name:    "check without verdict",
			yaml:    "name: s\nchecks:\n  - {name: a, value: 1, unit: m, to: km}\n",
			wantErr: "exactly one of expect, round_trip or want_error",
		},
		{
			name:    "two verdicts",
			yaml:    "name: s\nchecks:\n  - {name: a, value: 1, unit: m, to: km, expect: 0.001, round_trip: true}\n",
			wantErr: "exactly one of expect, round_trip or want_error",
		},
		{
			name:    "missing target unit",
			yaml:    "name: s\nchecks:\n  - {name: a, value: 1, unit: m, expect: 1}\n",
			wantErr: "unit and to are required",
		},
		{
			name:    "unknown field",
			yaml:    "name: s\nchecks:\n  - {name: a, value: 1, unit: m, to: km, expct: 1}\n",
			wantErr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenario.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioDir(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	// Directory order is file-name order.
	assert.Equal(t, "cgs_energy", scenarios[0].Name)
	assert.Equal(t, "si_lengths", scenarios[1].Name)
	assert.Equal(t, "site_units", scenarios[2].Name)
}

func TestScenarioGoldens(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			AssertGolden(t, s, catalog.Builtin())
		})
	}
}

func TestRunReportsFailures(t *testing.T) {
	expect := 2000.0
	s := &Scenario{
		Name: "failing",
		Checks: []Check{
			{Name: "wrong expectation", Value: 1.5, Unit: "km", To: "m", Expect: &expect},
			{Name: "unexpected success", Value: 1, Unit: "m", To: "km", WantError: "KIND_MISMATCH"},
			{Name: "unknown unit", Value: 1, Unit: "parsec", To: "m", Expect: &expect},
		},
	}

	res, err := Run(s, catalog.Builtin())
	require.NoError(t, err)
	assert.False(t, res.Pass)
	require.Len(t, res.Checks, 3)

	assert.False(t, res.Checks[0].Pass)
	assert.Contains(t, res.Checks[0].Detail, "want 2000")

	assert.False(t, res.Checks[1].Pass)
	assert.Contains(t, res.Checks[1].Detail, "conversion succeeded")

	assert.False(t, res.Checks[2].Pass)
	assert.Contains(t, res.Checks[2].Detail, "CATALOG_UNKNOWN_UNIT")

	report := RenderReport(res)
	assert.Contains(t, report, "status: fail")
	assert.Contains(t, report, "[fail]")
}

func TestRunMissingScenarioCatalog(t *testing.T) {
	expect := 1.0
	s := &Scenario{
		Name:    "missing catalog",
		Catalog: filepath.Join("testdata", "nope"),
		Checks: []Check{
			{Name: "a", Value: 1, Unit: "m", To: "m", Expect: &expect},
		},
	}

	_, err := Run(s, catalog.Builtin())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_DIR_NOT_FOUND")
}
