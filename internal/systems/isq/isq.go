// Package isq declares the quantity hierarchy of the International System
// of Quantities: the seven base kinds, their named sub-quantities, and
// the derived quantity expressions built from them.
//
// Specs are package-level singletons; identity comparison is the
// intended equality. Torque is deliberately a root of its own rather
// than a child of energy, so the two never mix even though both resolve
// to the same unit expression.
package isq

import "github.com/measura/measura/internal/qspec"

// Base kinds.
var (
	Length            = qspec.NewRoot("length")
	Mass              = qspec.NewRoot("mass")
	Duration          = qspec.NewRoot("time")
	ElectricCurrent   = qspec.NewRoot("electric current")
	Temperature       = qspec.NewRoot("thermodynamic temperature")
	AmountOfSubstance = qspec.NewRoot("amount of substance")
	LuminousIntensity = qspec.NewRoot("luminous intensity")
)

// Length sub-quantities. Siblings do not interconvert: a width plus a
// height is a kind error even though both are lengths.
var (
	Width     = qspec.NewChild("width", Length)
	Height    = qspec.NewChild("height", Length)
	Thickness = qspec.NewChild("thickness", Width)
	Radius    = qspec.NewChild("radius", Width)
	Distance  = qspec.NewChild("distance", Length)
	Altitude  = qspec.NewChild("altitude", Height)
)

// Named derived kinds. These are roots of their own, not spellings of
// their defining equations; frequency never unifies with 1/time.
var (
	Frequency           = qspec.NewRoot("frequency")
	Force               = qspec.NewRoot("force")
	Pressure            = qspec.NewRoot("pressure")
	Energy              = qspec.NewRoot("energy")
	Power               = qspec.NewRoot("power")
	Torque              = qspec.NewRoot("torque")
	Angle               = qspec.NewRoot("angle")
	SolidAngle          = qspec.NewRoot("solid angle")
	ElectricCharge      = qspec.NewRoot("electric charge")
	MagneticFluxDensity = qspec.NewRoot("magnetic flux density")

	MechanicalEnergy = qspec.NewChild("mechanical energy", Energy)
	KineticEnergy    = qspec.NewChild("kinetic energy", MechanicalEnergy)
	PotentialEnergy  = qspec.NewChild("potential energy", MechanicalEnergy)
	ThermalEnergy    = qspec.NewChild("thermal energy", Energy)
)

// Derived quantity expressions. Term lists accumulate structurally with
// no cancellation.
var (
	Area         = qspec.Pow(Length, 2)
	Volume       = qspec.Pow(Length, 3)
	Speed        = qspec.Div(Length, Duration)
	Acceleration = qspec.Div(Speed, Duration)
	Density      = qspec.Div(Mass, Volume)
	Momentum     = qspec.Mul(Mass, Speed)
)
