package imperial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
	"github.com/measura/measura/internal/unit"
)

func TestMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		unit unit.Unit
		want ratio.Ratio
	}{
		{name: "inch", unit: Inch, want: ratio.MustNew(127, 5000)},
		{name: "foot", unit: Foot, want: ratio.MustNew(381, 1250)},
		{name: "yard", unit: Yard, want: ratio.MustNew(1143, 1250)},
		{name: "mile", unit: Mile, want: ratio.MustNew(201168, 125)},
		{name: "pound", unit: Pound, want: ratio.MustNew(45359237, 100000000)},
		{name: "ounce", unit: Ounce, want: ratio.MustNew(45359237, 1600000000)},
		{name: "stone", unit: Stone, want: ratio.MustNew(317514659, 50000000)},
		{name: "grain", unit: Grain, want: ratio.MustNew(45359237, 700000000000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.unit.Magnitude()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMarathonInMiles(t *testing.T) {
	distance := quantity.New(42195.0, reference.New(isq.Distance, si.Metre))
	mi, err := distance.In(Mile)
	require.NoError(t, err)
	assert.InDelta(t, 26.218757, mi.Value(), 1e-5)
}

func TestExactFeetPerMile(t *testing.T) {
	mile := quantity.New[int64](1, reference.New(isq.Length, Mile))
	ft, err := mile.In(Foot)
	require.NoError(t, err)
	assert.Equal(t, int64(5280), ft.Value())
}

func TestExactMassChains(t *testing.T) {
	ton := quantity.New[int64](1, reference.New(isq.Mass, LongTon))
	lb, err := ton.In(Pound)
	require.NoError(t, err)
	assert.Equal(t, int64(2240), lb.Value())

	grains := quantity.New[int64](7000, reference.New(isq.Mass, Grain))
	lb, err = grains.In(Pound)
	require.NoError(t, err)
	assert.Equal(t, int64(1), lb.Value())
}

func TestVolumeUnits(t *testing.T) {
	gal, err := quantity.New(1.0, reference.New(isq.Volume, Gallon)).In(si.Litre)
	require.NoError(t, err)
	assert.InDelta(t, 4.54609, gal.Value(), 1e-12)

	pints := quantity.New[int64](8, reference.New(isq.Volume, Pint))
	inGallons, err := pints.In(Gallon)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inGallons.Value())

	floz, err := quantity.New(1.0, reference.New(isq.Volume, Pint)).In(FluidOunce)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, floz.Value(), 1e-12)
}

func TestSpeedUnits(t *testing.T) {
	v := quantity.New(60.0, reference.New(isq.Speed, MilePerHour))
	kmh, err := v.In(unit.Div(si.Kilometre, si.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 96.56064, kmh.Value(), 1e-9)
}
