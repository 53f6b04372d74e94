package qspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A small hierarchy mirroring the shape real catalogs declare:
//
//	length ─ width
//	       └ height
//	energy ─ kinetic energy
//	torque (unrelated root, same dimension as energy)
//	mass
func testHierarchy() (length, width, height, energy, kinetic, torque, mass *Spec) {
	length = NewRoot("length")
	width = NewChild("width", length)
	height = NewChild("height", length)
	energy = NewRoot("energy")
	kinetic = NewChild("kinetic energy", energy)
	torque = NewRoot("torque")
	mass = NewRoot("mass")
	return
}

func TestIsChildOf(t *testing.T) {
	length, width, _, energy, kinetic, _, mass := testHierarchy()

	deep := NewChild("rail gauge", width)

	tests := []struct {
		name   string
		child  QuantitySpec
		parent QuantitySpec
		want   bool
	}{
		{name: "same spec", child: length, parent: length, want: true},
		{name: "direct child", child: width, parent: length, want: true},
		{name: "grandchild", child: deep, parent: length, want: true},
		{name: "parent is not child", child: length, parent: width, want: false},
		{name: "siblings unrelated", child: width, parent: mass, want: false},
		{name: "separate lineage", child: kinetic, parent: length, want: false},
		{name: "child in other lineage", child: kinetic, parent: energy, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsChildOf(tt.child, tt.parent))
		})
	}
}

func TestConvertibility(t *testing.T) {
	length, width, _, energy, _, torque, _ := testHierarchy()

	// Child to ancestor: implicit.
	assert.True(t, ImplicitlyConvertible(width, length))
	// Ancestor to child: explicit only.
	assert.False(t, ImplicitlyConvertible(length, width))
	assert.True(t, ExplicitlyConvertible(length, width))
	assert.True(t, ExplicitlyConvertible(width, length))

	// Torque and energy are dimensionally identical but must never unify.
	assert.False(t, ImplicitlyConvertible(torque, energy))
	assert.False(t, ImplicitlyConvertible(energy, torque))
	assert.False(t, ExplicitlyConvertible(torque, energy))
	assert.False(t, ExplicitlyConvertible(energy, torque))
}

func TestCommon(t *testing.T) {
	length, width, height, energy, kinetic, torque, mass := testHierarchy()

	tests := []struct {
		name    string
		a, b    QuantitySpec
		want    QuantitySpec
		wantErr bool
	}{
		{name: "same spec", a: length, b: length, want: length},
		{name: "child and parent", a: width, b: length, want: length},
		{name: "parent and child", a: length, b: width, want: length},
		{name: "siblings meet at parent", a: width, b: height, want: length},
		{name: "nephew", a: kinetic, b: energy, want: energy},
		{name: "unrelated roots", a: length, b: mass, wantErr: true},
		{name: "energy vs torque", a: energy, b: torque, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Common(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsKindMismatch(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, Equal(got, tt.want))
		})
	}
}

func TestMulDiv(t *testing.T) {
	length, _, _, _, _, _, mass := testHierarchy()
	tm := NewRoot("time")

	speed := Div(length, tm)
	require.Len(t, speed.Numerator(), 1)
	require.Len(t, speed.Denominator(), 1)
	assert.Equal(t, "length/time", speed.Name())
	assert.Equal(t, Scalar, speed.Character())

	// Repeated multiplication accumulates terms, never exponents.
	area := Mul(length, length)
	require.Len(t, area.Numerator(), 2)
	assert.Empty(t, area.Denominator())

	volume := Mul(area, length)
	require.Len(t, volume.Numerator(), 3)

	// Division concatenates the reciprocal's term lists.
	accel := Div(speed, tm)
	require.Len(t, accel.Numerator(), 1)
	require.Len(t, accel.Denominator(), 2)

	force := Mul(mass, accel)
	require.Len(t, force.Numerator(), 2)
	require.Len(t, force.Denominator(), 2)
	assert.Equal(t, "mass·length/(time·time)", force.Name())
}

func TestDerivedEquality(t *testing.T) {
	length := NewRoot("length")
	tm := NewRoot("time")

	assert.True(t, Equal(Div(length, tm), Div(length, tm)))
	assert.False(t, Equal(Div(length, tm), Div(tm, length)))
	assert.False(t, Equal(Mul(length, tm), Div(length, tm)))
	assert.False(t, Equal(Div(length, tm), length))

	// Derived specs never join the named hierarchy.
	assert.False(t, IsChildOf(Div(length, tm), length))
	assert.True(t, IsChildOf(Div(length, tm), Div(length, tm)))
}

func TestKindOf(t *testing.T) {
	length := NewRoot("length")
	k := KindOf(length)
	assert.Same(t, length, k.Spec())
	assert.Equal(t, Scalar, k.Character())
}

func TestCharacterString(t *testing.T) {
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "vector", Vector.String())
	assert.Equal(t, "tensor", Tensor.String())
}
