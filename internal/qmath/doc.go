// Package qmath lifts the standard math functions over float64
// quantities. Dimensioned operations keep or transform the reference:
// sqrt halves every exponent, pow multiplies them, rounding keeps the
// unit. Domain violations such as asin outside [-1, 1] return a
// structured error rather than a silent sentinel value.
package qmath
