// Package reference pairs a quantity specification with a measurement
// unit. A reference is what a numeric value is interpreted against: the
// spec says WHAT is measured, the unit says HOW it is scaled.
//
// COMPATIBILITY
//
// Two references are compatible when their specs are identical or one is
// implicitly convertible to the other. Compatibility gates addition,
// subtraction and comparison of quantities; multiplication and division
// never require it, they compose new references instead.
package reference
