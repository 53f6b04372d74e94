// Package imperial declares the international yard-and-pound unit
// catalog. Magnitudes are the exact definitions of the 1959 agreement,
// expressed relative to the SI base units.
package imperial

import (
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/systems/si"
	"github.com/measura/measura/internal/unit"
)

// Length units. The inch is exactly 25.4 mm; everything else chains off
// it.
var (
	Inch         = unit.NewScaled("in", si.Metre, ratio.MustNew(254, 10000))
	Foot         = unit.NewScaled("ft", Inch, ratio.MustNew(12, 1))
	Yard         = unit.NewScaled("yd", Foot, ratio.MustNew(3, 1))
	Mile         = unit.NewScaled("mi", Yard, ratio.MustNew(1760, 1))
	NauticalMile = unit.NewScaled("nmi", si.Metre, ratio.MustNew(1852, 1))
)

// Mass units. The pound is exactly 0.45359237 kg.
var (
	Pound   = unit.NewScaled("lb", si.Kilogram, ratio.MustNew(45359237, 100000000))
	Ounce   = unit.NewScaled("oz", Pound, ratio.MustNew(1, 16))
	Grain   = unit.NewScaled("gr", Pound, ratio.MustNew(1, 7000))
	Stone   = unit.NewScaled("st", Pound, ratio.MustNew(14, 1))
	LongTon = unit.NewScaled("long tn", Pound, ratio.MustNew(2240, 1))
)

// Volume units. The imperial gallon is exactly 4.54609 litres.
var (
	Gallon     = unit.NewScaled("imp gal", si.Litre, ratio.MustNew(454609, 100000))
	Quart      = unit.NewScaled("imp qt", Gallon, ratio.MustNew(1, 4))
	Pint       = unit.NewScaled("imp pt", Gallon, ratio.MustNew(1, 8))
	FluidOunce = unit.NewScaled("imp fl oz", Pint, ratio.MustNew(1, 20))
)

// Speed units.
var (
	MilePerHour = unit.NewScaled("mph", unit.Div(Mile, si.Hour), ratio.One)
	Knot        = unit.NewScaled("kn", unit.Div(NauticalMile, si.Hour), ratio.One)
)
