// Package harness runs conversion conformance scenarios.
//
// A scenario is a YAML file listing checks: a value in a source unit, a
// target unit, and either an expected result, a round-trip requirement,
// or an expected error code. Scenarios run against a catalog, so site
// catalogs get the same conformance treatment as the built-in systems.
//
// Reports render deterministically and are compared against golden
// files with goldie; run tests with -update to regenerate them.
package harness
