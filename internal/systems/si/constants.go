package si

import (
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/unit"
)

// Defined constants of the 2019 SI. The exact ones carry int64 values.
var (
	// SpeedOfLight is exactly 299 792 458 m/s.
	SpeedOfLight = quantity.New[int64](299792458,
		reference.New(isq.Speed, unit.Div(Metre, Second)))

	// StandardGravity is the conventional 9.80665 m/s².
	StandardGravity = quantity.New(9.80665,
		reference.New(isq.Acceleration, unit.Div(Metre, unit.Pow(Second, 2))))

	// PlanckConstant is exactly 6.62607015e-34 J·s.
	PlanckConstant = quantity.New(6.62607015e-34,
		reference.New(qspec.Mul(isq.Energy, isq.Duration), unit.Mul(Joule, Second)))

	// ElementaryCharge is exactly 1.602176634e-19 C.
	ElementaryCharge = quantity.New(1.602176634e-19,
		reference.New(isq.ElectricCharge, Coulomb))

	// BoltzmannConstant is exactly 1.380649e-23 J/K.
	BoltzmannConstant = quantity.New(1.380649e-23,
		reference.New(qspec.Div(isq.Energy, isq.Temperature), unit.Div(Joule, Kelvin)))

	// AvogadroConstant is exactly 6.02214076e23 mol⁻¹.
	AvogadroConstant = quantity.New(6.02214076e23,
		reference.New(qspec.Pow(isq.AmountOfSubstance, -1), unit.Pow(Mole, -1)))
)
