// Package si declares the SI unit catalog: base units, prefixed
// variants, named derived units, temperature scales and their origins,
// and a handful of defined constants.
package si

import (
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/unit"
)

// Base units. The kilogram is the coherent mass unit; the gram hangs off
// it at 1/1000.
var (
	Metre    = unit.NewNamed("m", qspec.KindOf(isq.Length))
	Kilogram = unit.NewNamed("kg", qspec.KindOf(isq.Mass))
	Second   = unit.NewNamed("s", qspec.KindOf(isq.Duration))
	Ampere   = unit.NewNamed("A", qspec.KindOf(isq.ElectricCurrent))
	Kelvin   = unit.NewNamed("K", qspec.KindOf(isq.Temperature))
	Mole     = unit.NewNamed("mol", qspec.KindOf(isq.AmountOfSubstance))
	Candela  = unit.NewNamed("cd", qspec.KindOf(isq.LuminousIntensity))

	Gram = unit.NewNamedMag("g", qspec.KindOf(isq.Mass), ratio.Milli)
)

// Prefixed length units.
var (
	Kilometre  = unit.NewPrefixed("km", ratio.Kilo, Metre)
	Centimetre = unit.NewPrefixed("cm", ratio.Centi, Metre)
	Millimetre = unit.NewPrefixed("mm", ratio.Milli, Metre)
	Micrometre = unit.NewPrefixed("µm", ratio.Micro, Metre)
	Nanometre  = unit.NewPrefixed("nm", ratio.Nano, Metre)
)

// Prefixed and scaled time units.
var (
	Millisecond = unit.NewPrefixed("ms", ratio.Milli, Second)
	Microsecond = unit.NewPrefixed("µs", ratio.Micro, Second)
	Nanosecond  = unit.NewPrefixed("ns", ratio.Nano, Second)

	Minute = unit.NewScaled("min", Second, ratio.MustNew(60, 1))
	Hour   = unit.NewScaled("h", Second, ratio.MustNew(3600, 1))
	Day    = unit.NewScaled("d", Second, ratio.MustNew(86400, 1))
)

// Prefixed mass units.
var (
	Milligram = unit.NewPrefixed("mg", ratio.Milli, Gram)
	Tonne     = unit.NewScaled("t", Kilogram, ratio.Kilo)
)

// Named derived units, each bound to its own quantity kind.
var (
	Hertz     = unit.NewNamed("Hz", qspec.KindOf(isq.Frequency))
	Newton    = unit.NewNamed("N", qspec.KindOf(isq.Force))
	Pascal    = unit.NewNamed("Pa", qspec.KindOf(isq.Pressure))
	Joule     = unit.NewNamed("J", qspec.KindOf(isq.Energy))
	Watt      = unit.NewNamed("W", qspec.KindOf(isq.Power))
	Radian    = unit.NewNamed("rad", qspec.KindOf(isq.Angle))
	Steradian = unit.NewNamed("sr", qspec.KindOf(isq.SolidAngle))
	Coulomb   = unit.NewNamed("C", qspec.KindOf(isq.ElectricCharge))
	Tesla     = unit.NewNamed("T", qspec.KindOf(isq.MagneticFluxDensity))

	Kilojoule  = unit.NewPrefixed("kJ", ratio.Kilo, Joule)
	Kilowatt   = unit.NewPrefixed("kW", ratio.Kilo, Watt)
	Kilonewton = unit.NewPrefixed("kN", ratio.Kilo, Newton)
)

// Volume units scale off the cubic metre.
var (
	CubicMetre = unit.Pow(Metre, 3)
	Litre      = unit.NewScaled("l", CubicMetre, ratio.Milli)
	Millilitre = unit.NewPrefixed("ml", ratio.Milli, Litre)
)

// Temperature scale units. Both are kelvin-sized for displacements; the
// scale origins carry the zero-point shifts.
var (
	DegreeCelsius    = unit.NewScaled("°C", Kelvin, ratio.One)
	DegreeFahrenheit = unit.NewScaled("°F", Kelvin, ratio.MustNew(5, 9))
)
