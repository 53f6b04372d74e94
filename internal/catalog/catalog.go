package catalog

import (
	"sort"

	"github.com/measura/measura/internal/point"
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/cgs"
	"github.com/measura/measura/internal/systems/imperial"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/natural"
	"github.com/measura/measura/internal/systems/si"
	"github.com/measura/measura/internal/unit"
)

// Catalog is a registry of specs by name, units by symbol and origins by
// name. It is not safe for concurrent mutation; build it up front.
type Catalog struct {
	specs   map[string]qspec.QuantitySpec
	units   map[string]unit.Unit
	origins map[string]point.Origin
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		specs:   make(map[string]qspec.QuantitySpec),
		units:   make(map[string]unit.Unit),
		origins: make(map[string]point.Origin),
	}
}

// RegisterSpec adds a spec under its name.
func (c *Catalog) RegisterSpec(name string, s qspec.QuantitySpec) error {
	if _, ok := c.specs[name]; ok {
		return &Error{Code: ErrCodeDuplicate, Name: name, Message: "spec already declared"}
	}
	c.specs[name] = s
	return nil
}

// RegisterUnit adds a unit under a symbol.
func (c *Catalog) RegisterUnit(symbol string, u unit.Unit) error {
	if _, ok := c.units[symbol]; ok {
		return &Error{Code: ErrCodeDuplicate, Name: symbol, Message: "unit already declared"}
	}
	c.units[symbol] = u
	return nil
}

// RegisterOrigin adds an origin under its name.
func (c *Catalog) RegisterOrigin(name string, o point.Origin) error {
	if _, ok := c.origins[name]; ok {
		return &Error{Code: ErrCodeDuplicate, Name: name, Message: "origin already declared"}
	}
	c.origins[name] = o
	return nil
}

// Spec resolves a declared spec by name.
func (c *Catalog) Spec(name string) (qspec.QuantitySpec, error) {
	s, ok := c.specs[name]
	if !ok {
		return nil, &Error{Code: ErrCodeUnknownSpec, Name: name, Message: "spec not declared"}
	}
	return s, nil
}

// Unit resolves a declared unit by symbol.
func (c *Catalog) Unit(symbol string) (unit.Unit, error) {
	u, ok := c.units[symbol]
	if !ok {
		return nil, &Error{Code: ErrCodeUnknownUnit, Name: symbol, Message: "unit not declared"}
	}
	return u, nil
}

// Origin resolves a declared origin by name.
func (c *Catalog) Origin(name string) (point.Origin, error) {
	o, ok := c.origins[name]
	if !ok {
		return nil, &Error{Code: ErrCodeUnknownOrigin, Name: name, Message: "origin not declared"}
	}
	return o, nil
}

// Reference builds a reference from declared names. An empty spec name
// takes the unit's own kind.
func (c *Catalog) Reference(specName, unitSymbol string) (reference.Reference, error) {
	u, err := c.Unit(unitSymbol)
	if err != nil {
		return reference.Reference{}, err
	}
	if specName == "" {
		return reference.FromUnit(u)
	}
	s, err := c.Spec(specName)
	if err != nil {
		return reference.Reference{}, err
	}
	return reference.New(s, u), nil
}

// Quantity binds a value to a declared unit, under the unit's own kind.
func (c *Catalog) Quantity(value float64, unitSymbol string) (quantity.Quantity[float64], error) {
	ref, err := c.Reference("", unitSymbol)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(value, ref), nil
}

// SpecNames lists declared spec names, sorted.
func (c *Catalog) SpecNames() []string { return sortedKeys(c.specs) }

// UnitSymbols lists declared unit symbols, sorted.
func (c *Catalog) UnitSymbols() []string { return sortedKeys(c.units) }

// OriginNames lists declared origin names, sorted.
func (c *Catalog) OriginNames() []string { return sortedKeys(c.origins) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// clone copies a catalog so compilation can extend a base without
// mutating it.
func (c *Catalog) clone() *Catalog {
	out := New()
	for k, v := range c.specs {
		out.specs[k] = v
	}
	for k, v := range c.units {
		out.units[k] = v
	}
	for k, v := range c.origins {
		out.origins[k] = v
	}
	return out
}

// Builtin returns a catalog preloaded with the ISQ hierarchy and the
// SI, CGS, imperial and natural systems.
func Builtin() *Catalog {
	c := New()

	specs := map[string]qspec.QuantitySpec{
		"length":    isq.Length,
		"width":     isq.Width,
		"height":    isq.Height,
		"thickness": isq.Thickness,
		"radius":    isq.Radius,
		"distance":  isq.Distance,
		"altitude":  isq.Altitude,

		"mass":                      isq.Mass,
		"time":                      isq.Duration,
		"electric current":          isq.ElectricCurrent,
		"thermodynamic temperature": isq.Temperature,
		"amount of substance":       isq.AmountOfSubstance,
		"luminous intensity":        isq.LuminousIntensity,

		"frequency":   isq.Frequency,
		"force":       isq.Force,
		"pressure":    isq.Pressure,
		"energy":      isq.Energy,
		"power":       isq.Power,
		"torque":      isq.Torque,
		"angle":       isq.Angle,
		"solid angle": isq.SolidAngle,

		"kinetic energy":   isq.KineticEnergy,
		"potential energy": isq.PotentialEnergy,

		"electric charge":       isq.ElectricCharge,
		"magnetic flux density": isq.MagneticFluxDensity,

		"area":         isq.Area,
		"volume":       isq.Volume,
		"speed":        isq.Speed,
		"acceleration": isq.Acceleration,
		"density":      isq.Density,
		"momentum":     isq.Momentum,

		"natural energy": natural.Energy,
		"natural mass":   natural.Mass,
	}
	for name, s := range specs {
		c.specs[name] = s
	}

	units := []unit.Unit{
		si.Metre, si.Kilogram, si.Second, si.Ampere, si.Kelvin, si.Mole, si.Candela,
		si.Gram, si.Kilometre, si.Centimetre, si.Millimetre, si.Micrometre, si.Nanometre,
		si.Millisecond, si.Microsecond, si.Nanosecond, si.Minute, si.Hour, si.Day,
		si.Milligram, si.Tonne,
		si.Hertz, si.Newton, si.Pascal, si.Joule, si.Watt, si.Radian, si.Steradian,
		si.Coulomb, si.Tesla,
		si.Kilojoule, si.Kilowatt, si.Kilonewton,
		si.Litre, si.Millilitre,
		si.DegreeCelsius, si.DegreeFahrenheit,
		cgs.Dyne, cgs.Erg, cgs.Barye, cgs.Gal,
		cgs.Poise, cgs.Centipoise, cgs.Stokes, cgs.Centistokes, cgs.Gauss,
		imperial.Inch, imperial.Foot, imperial.Yard, imperial.Mile, imperial.NauticalMile,
		imperial.Pound, imperial.Ounce, imperial.Grain, imperial.Stone, imperial.LongTon,
		imperial.Gallon, imperial.Quart, imperial.Pint, imperial.FluidOunce,
		imperial.MilePerHour, imperial.Knot,
		natural.ElectronVolt, natural.KiloElectronVolt, natural.MegaElectronVolt,
		natural.GigaElectronVolt, natural.TeraElectronVolt,
		natural.ElectronVoltPerC2, natural.MegaElectronVoltPerC2, natural.GigaElectronVoltPerC2,
	}
	for _, u := range units {
		c.units[unit.Symbol(u)] = u
	}

	c.origins["absolute zero"] = si.AbsoluteZero
	c.origins["ice point"] = si.IcePoint
	c.origins["fahrenheit zero"] = si.FahrenheitZero

	return c
}
