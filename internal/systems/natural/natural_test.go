package natural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
)

func TestPrefixChain(t *testing.T) {
	protonMass := quantity.New(0.938, reference.New(Mass, GigaElectronVoltPerC2))
	mev, err := protonMass.In(MegaElectronVoltPerC2)
	require.NoError(t, err)
	assert.InDelta(t, 938.0, mev.Value(), 1e-9)

	beam := quantity.New[int64](13, reference.New(Energy, TeraElectronVolt))
	gev, err := beam.In(GigaElectronVolt)
	require.NoError(t, err)
	assert.Equal(t, int64(13000), gev.Value())
}

func TestEVDoesNotMixWithJoules(t *testing.T) {
	ev := quantity.New(1.0, reference.New(Energy, ElectronVolt))
	j := quantity.New(1.0, reference.New(isq.Energy, si.Joule))

	_, err := quantity.Add(ev, j)
	require.Error(t, err)
}

func TestJouleBridge(t *testing.T) {
	one, err := ToJoules(quantity.New(1.0, reference.New(Energy, ElectronVolt)))
	require.NoError(t, err)
	assert.InDelta(t, 1.602176634e-19, one.Value(), 1e-30)
	assert.Equal(t, "J", one.Ref().Symbol())

	back, err := FromJoules(one)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, back.Value(), 1e-12)

	gev, err := ToJoules(quantity.New(1.0, reference.New(Energy, GigaElectronVolt)))
	require.NoError(t, err)
	assert.InDelta(t, 1.602176634e-10, gev.Value(), 1e-21)
}
