// Package ratio implements exact rational numbers used as unit scale factors.
//
// Every Ratio is kept in canonical form: the denominator is always positive
// and numerator/denominator share no common factor. Canonical form makes
// equality a plain structural comparison and keeps magnitudes deterministic
// across any evaluation order.
//
// Arithmetic never wraps silently. Any intermediate product or sum that
// would leave the int64 range fails with an OverflowError instead of
// producing a truncated value. Unit catalogs are static data, so these
// failures surface when a catalog or conversion is first constructed, not
// deep inside a computation.
//
// All values are immutable. A Ratio is freely copyable and safe for
// concurrent use without synchronization.
package ratio
