package cgs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
)

func TestMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		got  func() (ratio.Ratio, error)
		want ratio.Ratio
	}{
		{name: "dyne", got: Dyne.Magnitude, want: ratio.MustNew(1, 100000)},
		{name: "erg", got: Erg.Magnitude, want: ratio.MustNew(1, 10000000)},
		{name: "barye", got: Barye.Magnitude, want: ratio.MustNew(1, 10)},
		{name: "gal", got: Gal.Magnitude, want: ratio.MustNew(1, 100)},
		{name: "poise", got: Poise.Magnitude, want: ratio.MustNew(1, 10)},
		{name: "centipoise", got: Centipoise.Magnitude, want: ratio.MustNew(1, 1000)},
		{name: "stokes", got: Stokes.Magnitude, want: ratio.MustNew(1, 10000)},
		{name: "centistokes", got: Centistokes.Magnitude, want: ratio.MustNew(1, 1000000)},
		{name: "gauss", got: Gauss.Magnitude, want: ratio.MustNew(1, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMixedSystemArithmetic(t *testing.T) {
	// 1 J + 1e7 erg = 2 J.
	work := quantity.New(1.0, reference.New(isq.Energy, si.Joule))
	burst := quantity.New(1e7, reference.New(isq.Energy, Erg))

	sum, err := quantity.Add(work, burst)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sum.Value(), 1e-9)
	assert.Equal(t, "J", sum.Ref().Symbol())
}

func TestIntegerErgConversion(t *testing.T) {
	burst := quantity.New[int64](30000000, reference.New(isq.Energy, Erg))
	j, err := burst.In(si.Joule)
	require.NoError(t, err)
	assert.Equal(t, int64(3), j.Value())

	_, err = quantity.New[int64](3, reference.New(isq.Energy, si.Joule)).In(Dyne)
	require.Error(t, err, "joule into dyne crosses kinds at the reference layer")
}
