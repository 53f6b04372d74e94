// Package unit implements the measurement-unit algebra: named units,
// scaled units and derived units composed from unit-power terms.
//
// Every unit carries a magnitude, the exact ratio of its scale to the
// coherent base unit of its kind (kilometre → 1000, gram → 1/1000). A
// derived unit's magnitude is the product of each numerator term's
// magnitude raised to its power, divided by the same product over the
// denominator terms.
//
// Multiplication and division flatten both operands into term lists and
// concatenate them; no cancellation or reordering happens beyond what the
// operation itself constructs. Conversion factors between units are exact
// ratios, materialized to floating point on demand.
//
// Units are immutable singletons declared once per catalog. Declared
// symbols are normalized to Unicode NFC so that µ and ° compare
// deterministically regardless of how a catalog source encoded them.
package unit
