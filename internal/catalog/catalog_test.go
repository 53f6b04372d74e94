package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
)

func TestBuiltinLookups(t *testing.T) {
	c := Builtin()

	u, err := c.Unit("km")
	require.NoError(t, err)
	assert.Equal(t, si.Kilometre, u)

	s, err := c.Spec("length")
	require.NoError(t, err)
	assert.Equal(t, isq.Length, s)

	o, err := c.Origin("ice point")
	require.NoError(t, err)
	assert.Equal(t, si.IcePoint, o)

	_, err = c.Unit("parsec")
	require.Error(t, err)
	assert.True(t, IsUnknownName(err))
}

func TestBuiltinReference(t *testing.T) {
	c := Builtin()

	ref, err := c.Reference("width", "cm")
	require.NoError(t, err)
	assert.Equal(t, isq.Width, ref.Spec())
	assert.Equal(t, "cm", ref.Symbol())

	// Empty spec takes the unit's own kind.
	ref, err = c.Reference("", "kg")
	require.NoError(t, err)
	assert.Equal(t, isq.Mass, ref.Spec())
}

func TestBuiltinQuantity(t *testing.T) {
	c := Builtin()

	q, err := c.Quantity(26.2, "mi")
	require.NoError(t, err)

	km, err := q.In(si.Kilometre)
	require.NoError(t, err)
	assert.InDelta(t, 42.164813, km.Value(), 1e-6)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	c := Builtin()

	err := c.RegisterUnit("m", si.Metre)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestNamesAreSorted(t *testing.T) {
	c := Builtin()

	symbols := c.UnitSymbols()
	require.NotEmpty(t, symbols)
	for i := 1; i < len(symbols); i++ {
		assert.LessOrEqual(t, symbols[i-1], symbols[i])
	}
}

func TestQuantityMixesSystems(t *testing.T) {
	c := Builtin()

	erg, err := c.Quantity(1e7, "erg")
	require.NoError(t, err)
	j, err := c.Quantity(1, "J")
	require.NoError(t, err)

	sum, err := quantity.Add(j, erg)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sum.Value(), 1e-9)
}

func TestBuiltinMagnitudeSpotChecks(t *testing.T) {
	c := Builtin()

	mi, err := c.Unit("mi")
	require.NoError(t, err)
	mag, err := mi.Magnitude()
	require.NoError(t, err)
	assert.True(t, mag.Equal(ratio.MustNew(201168, 125)))
}
