// Package qspec models quantity kinds (length, mass, energy, torque, ...)
// and the hierarchy that governs their convertibility.
//
// KIND SAFETY:
//
// Convertibility is deliberately stronger than dimensional analysis. Two
// kinds with identical physical dimension but different meaning (energy vs
// torque, both mass·length²·time⁻²) are declared as unrelated roots, so no
// conversion between them ever succeeds. Conversion follows the declared
// parent chain only:
//
//   - implicit: child → ancestor (width may be used as a length)
//   - explicit: either direction along one lineage
//   - unrelated lineages: never, in either direction
//
// Specs form a forest of named nodes. Multiplying or dividing specs builds
// a Derived spec whose numerator/denominator term lists simply accumulate;
// no cancellation is performed, matching the composition rules the unit
// algebra applies on its side.
//
// All specs are immutable singletons declared once per catalog at package
// init and shared for the process lifetime.
package qspec
