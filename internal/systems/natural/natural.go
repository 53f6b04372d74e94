// Package natural declares particle-physics units. The electronvolt's
// joule value, 1.602176634e-19, has no exact int64 ratio, so the system
// carries its own quantity kinds: eV energies never silently mix with
// joules, and the bridge to SI is the explicit float conversion pair
// ToJoules and FromJoules.
package natural

import (
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
	"github.com/measura/measura/internal/unit"
)

// ElectronVoltInJoules is the exact 2019 SI definition of the eV.
const ElectronVoltInJoules = 1.602176634e-19

// Quantity kinds of the natural system.
var (
	Energy = qspec.NewRoot("natural energy")
	Mass   = qspec.NewRoot("natural mass")
)

// Energy units.
var (
	ElectronVolt = unit.NewNamed("eV", qspec.KindOf(Energy))

	KiloElectronVolt = unit.NewPrefixed("keV", ratio.Kilo, ElectronVolt)
	MegaElectronVolt = unit.NewPrefixed("MeV", ratio.Mega, ElectronVolt)
	GigaElectronVolt = unit.NewPrefixed("GeV", ratio.Giga, ElectronVolt)
	TeraElectronVolt = unit.NewPrefixed("TeV", ratio.Tera, ElectronVolt)
)

// Mass units, using the natural-units convention m = E/c².
var (
	ElectronVoltPerC2     = unit.NewNamed("eV/c²", qspec.KindOf(Mass))
	MegaElectronVoltPerC2 = unit.NewPrefixed("MeV/c²", ratio.Mega, ElectronVoltPerC2)
	GigaElectronVoltPerC2 = unit.NewPrefixed("GeV/c²", ratio.Giga, ElectronVoltPerC2)
)

// ToJoules converts an energy in any eV-family unit into an SI energy
// quantity in joules.
func ToJoules(q quantity.Quantity[float64]) (quantity.Quantity[float64], error) {
	ev, err := q.In(ElectronVolt)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(ev.Value()*ElectronVoltInJoules,
		reference.New(isq.Energy, si.Joule)), nil
}

// FromJoules converts an SI energy in joules into electronvolts.
func FromJoules(q quantity.Quantity[float64]) (quantity.Quantity[float64], error) {
	j, err := q.In(si.Joule)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(j.Value()/ElectronVoltInJoules,
		reference.New(Energy, ElectronVolt)), nil
}
