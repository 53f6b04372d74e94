// Package cgs declares the centimetre-gram-second unit catalog. Every
// unit carries its exact magnitude relative to the coherent SI unit of
// its kind, so cgs and SI quantities mix freely.
package cgs

import (
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
	"github.com/measura/measura/internal/unit"
)

// The three base units are shared with the SI catalog.
var (
	Centimetre = si.Centimetre
	Gram       = si.Gram
	Second     = si.Second
)

// Named derived units with exact SI magnitudes.
var (
	// Dyne is g·cm/s², exactly 1e-5 N.
	Dyne = unit.NewNamedMag("dyn", qspec.KindOf(isq.Force), ratio.MustNew(1, 100000))
	// Erg is dyn·cm, exactly 1e-7 J.
	Erg = unit.NewNamedMag("erg", qspec.KindOf(isq.Energy), ratio.MustNew(1, 10000000))
	// Barye is dyn/cm², exactly 0.1 Pa.
	Barye = unit.NewNamedMag("Ba", qspec.KindOf(isq.Pressure), ratio.MustNew(1, 10))
)

// Gal is the cgs acceleration unit, cm/s². It is a scaled spelling of a
// derived unit, so it has no single kind; bind isq.Acceleration in the
// reference.
var Gal = unit.NewScaled("Gal", unit.Div(Centimetre, unit.Pow(Second, 2)), ratio.One)

// Viscosity units, as scaled spellings of their defining expressions.
var (
	// Poise is g/(cm·s), exactly 0.1 Pa·s.
	Poise      = unit.NewScaled("P", unit.Div(Gram, unit.Mul(Centimetre, Second)), ratio.One)
	Centipoise = unit.NewPrefixed("cP", ratio.Centi, Poise)

	// Stokes is cm²/s, exactly 1e-4 m²/s.
	Stokes      = unit.NewScaled("St", unit.Div(unit.Pow(Centimetre, 2), Second), ratio.One)
	Centistokes = unit.NewPrefixed("cSt", ratio.Centi, Stokes)
)

// Gauss is the cgs magnetic flux density unit, exactly 1e-4 T.
var Gauss = unit.NewScaled("G", si.Tesla, ratio.MustNew(1, 10000))
