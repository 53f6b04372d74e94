package si

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/point"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/unit"
)

func TestUnitMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		unit unit.Unit
		want ratio.Ratio
	}{
		{name: "metre", unit: Metre, want: ratio.One},
		{name: "kilometre", unit: Kilometre, want: ratio.MustNew(1000, 1)},
		{name: "gram", unit: Gram, want: ratio.MustNew(1, 1000)},
		{name: "milligram", unit: Milligram, want: ratio.MustNew(1, 1000000)},
		{name: "tonne", unit: Tonne, want: ratio.MustNew(1000, 1)},
		{name: "hour", unit: Hour, want: ratio.MustNew(3600, 1)},
		{name: "day", unit: Day, want: ratio.MustNew(86400, 1)},
		{name: "fahrenheit degree", unit: DegreeFahrenheit, want: ratio.MustNew(5, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.unit.Magnitude()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestUnitKinds(t *testing.T) {
	k, ok := unit.KindOf(Kilometre)
	require.True(t, ok)
	assert.Equal(t, isq.Length, k.Spec())

	k, ok = unit.KindOf(Joule)
	require.True(t, ok)
	assert.Equal(t, isq.Energy, k.Spec())
}

func TestTemperatureScales(t *testing.T) {
	tests := []struct {
		name  string
		point point.Point[float64]
		wantK float64
	}{
		{name: "freezing point", point: Celsius(0), wantK: 273.15},
		{name: "boiling point", point: Celsius(100), wantK: 373.15},
		{name: "body heat", point: Celsius(36.6), wantK: 309.75},
		{name: "fahrenheit boiling", point: Fahrenheit(212), wantK: 373.15},
		{name: "fahrenheit freezing", point: Fahrenheit(32), wantK: 273.15},
		{name: "absolute kelvin", point: FromKelvin(4.2), wantK: 4.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InKelvin(tt.point)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantK, got, 1e-9)
		})
	}
}

func TestTemperatureRoundTrips(t *testing.T) {
	c, err := InCelsius(FromKelvin(300))
	require.NoError(t, err)
	assert.InDelta(t, 26.85, c, 1e-9)

	f, err := InFahrenheit(Celsius(100))
	require.NoError(t, err)
	assert.InDelta(t, 212, f, 1e-9)
}

func TestCelsiusFahrenheitAreSiblingOrigins(t *testing.T) {
	_, err := point.Convert(Celsius(20), FahrenheitZero)
	require.Error(t, err)
	assert.True(t, point.IsUnrelatedOrigins(err))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, int64(299792458), SpeedOfLight.Value())
	assert.Equal(t, "m/s", SpeedOfLight.Ref().Symbol())
	assert.Equal(t, "m/s²", StandardGravity.Ref().Symbol())
	assert.Equal(t, 1.602176634e-19, ElementaryCharge.Value())
	assert.Equal(t, "C", ElementaryCharge.Ref().Symbol())
	assert.Equal(t, 1.380649e-23, BoltzmannConstant.Value())
	assert.Equal(t, 6.02214076e23, AvogadroConstant.Value())
}

func TestLitre(t *testing.T) {
	mag, err := Litre.Magnitude()
	require.NoError(t, err)
	assert.True(t, mag.Equal(ratio.MustNew(1, 1000)), "got %s", mag)

	ml, err := quantity.New(1.5, reference.New(isq.Volume, Litre)).In(Millilitre)
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, ml.Value(), 1e-9)
}

func TestEnergyTorqueStaySeparate(t *testing.T) {
	work := quantity.New(10.0, reference.New(isq.Energy, Joule))
	twist := quantity.New(10.0, reference.New(isq.Torque, unit.Mul(Newton, Metre)))

	_, err := quantity.Add(work, twist)
	require.Error(t, err)
}
