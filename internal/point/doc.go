// Package point implements affine quantity points: positions on a scale
// anchored to an origin, as opposed to the displacements in package
// quantity.
//
// ORIGINS
//
// An absolute origin is a fixed anchor with no further reference, such
// as absolute zero. A relative origin is displaced from another origin
// by a fixed quantity, such as the ice point at 273.15 K above absolute
// zero. Origins with the same spec but no ancestry between them cannot
// be related and conversions across them fail loudly.
//
// THE AFFINE RULES
//
// Point minus point yields a quantity. Point plus or minus quantity
// yields a point. Point plus point does not exist: there is no API for
// it, so the mistake is unrepresentable.
package point
