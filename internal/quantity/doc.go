// Package quantity implements typed numeric values bound to a reference.
//
// REPRESENTATIONS
//
// A quantity is generic over its representation: int64 for exact counts
// and float64 for measurements. The two instantiations are distinct
// types, so a narrowing assignment from Quantity[float64] to
// Quantity[int64] does not exist; only the explicit widening AsFloat64
// crosses between them. Integer unit conversions that would truncate
// return an inexact-conversion error unless forced.
//
// ARITHMETIC
//
// Addition, subtraction and comparison require compatible references and
// express the result in the left operand's unit under the common spec.
// Multiplication and division never require compatibility; they compose
// derived references. Integer arithmetic is overflow-checked and never
// wraps silently.
package quantity
