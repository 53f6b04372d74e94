package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a conformance test scenario: a named list of conversion
// checks, optionally against a site catalog.
type Scenario struct {
	// Name uniquely identifies the scenario; it names the golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Catalog optionally points at a CUE catalog directory, relative to
	// the scenario file. Empty means the built-in catalog alone.
	Catalog string `yaml:"catalog,omitempty"`

	// Checks are executed in order.
	Checks []Check `yaml:"checks"`
}

// Check is a single conversion expectation. Exactly one of Expect,
// RoundTrip or WantError gives it a verdict.
type Check struct {
	// Name labels the check in reports.
	Name string `yaml:"name"`

	// Value and Unit describe the source quantity.
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`

	// Spec optionally narrows the source spec; empty takes the unit's
	// own kind.
	Spec string `yaml:"spec,omitempty"`

	// To is the target unit symbol.
	To string `yaml:"to"`

	// Expect is the expected converted value.
	Expect *float64 `yaml:"expect,omitempty"`

	// Tolerance widens the comparison; zero means 1e-9.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// RoundTrip converts back to the source unit and requires the
	// original value.
	RoundTrip bool `yaml:"round_trip,omitempty"`

	// WantError expects the conversion to fail with an error whose text
	// contains this code.
	WantError string `yaml:"want_error,omitempty"`
}

// LoadScenario reads and validates one YAML scenario file. Unknown
// fields are rejected so typos in check keys fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if s.Catalog != "" && !filepath.IsAbs(s.Catalog) {
		s.Catalog = filepath.Join(filepath.Dir(path), s.Catalog)
	}
	return &s, nil
}

// LoadScenarioDir loads every .yaml scenario in a directory, sorted by
// file name for deterministic ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scenario directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("at least one check is required")
	}
	for i, c := range s.Checks {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("check %d: name is required", i)
		}
		if c.Unit == "" || c.To == "" {
			return fmt.Errorf("check %q: unit and to are required", c.Name)
		}
		verdicts := 0
		if c.Expect != nil {
			verdicts++
		}
		if c.RoundTrip {
			verdicts++
		}
		if c.WantError != "" {
			verdicts++
		}
		if verdicts != 1 {
			return fmt.Errorf("check %q: exactly one of expect, round_trip or want_error is required", c.Name)
		}
	}
	return nil
}
