package point

import (
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
)

// Origin is a sealed interface over the two origin shapes: Absolute and
// Relative. Origins are catalog singletons compared by identity.
type Origin interface {
	// Name returns the origin's diagnostic name.
	Name() string
	// Spec returns the quantity spec of positions anchored here.
	Spec() qspec.QuantitySpec

	origin() // sealed
}

// Absolute is a fixed anchor with no further reference, such as absolute
// zero for thermodynamic temperature.
type Absolute struct {
	name string
	spec qspec.QuantitySpec
}

func (*Absolute) origin() {}

// NewAbsolute declares an absolute origin for a spec.
func NewAbsolute(name string, spec qspec.QuantitySpec) *Absolute {
	return &Absolute{name: name, spec: spec}
}

// Name returns the origin's diagnostic name.
func (a *Absolute) Name() string { return a.name }

// Spec returns the spec of positions anchored here.
func (a *Absolute) Spec() qspec.QuantitySpec { return a.spec }

// Relative is an origin displaced from a base origin by a fixed offset,
// such as the ice point sitting 273.15 K above absolute zero.
type Relative struct {
	name   string
	base   Origin
	offset quantity.Quantity[float64]
}

func (*Relative) origin() {}

// NewRelative declares an origin at a fixed offset from base. The offset
// is the displacement from base to the new origin, measured from base.
func NewRelative(name string, base Origin, offset quantity.Quantity[float64]) *Relative {
	return &Relative{name: name, base: base, offset: offset}
}

// Name returns the origin's diagnostic name.
func (r *Relative) Name() string { return r.name }

// Spec returns the spec of positions anchored here.
func (r *Relative) Spec() qspec.QuantitySpec { return r.offset.Spec() }

// Base returns the origin this one is displaced from.
func (r *Relative) Base() Origin { return r.base }

// Offset returns the displacement from the base origin to this one.
func (r *Relative) Offset() quantity.Quantity[float64] { return r.offset }

// OriginOffset derives the displacement that, added to a measurement
// anchored at from, re-anchors it at to. The result is expressed in ref's
// unit. Converting 0 °C measured from the ice point to absolute zero
// yields +273.15 K.
//
// Only directly related origins can be offset: identical origins, or a
// relative origin against its own base. Anything else, including two
// relative origins over a common base, fails with an unrelated-origins
// error; such conversions must be declared explicitly.
func OriginOffset(from, to Origin, ref reference.Reference) (quantity.Quantity[float64], error) {
	if from == to {
		return quantity.New(0.0, ref), nil
	}
	if r, ok := from.(*Relative); ok && r.base == to {
		return offsetIn(r.offset, ref, false)
	}
	if r, ok := to.(*Relative); ok && r.base == from {
		return offsetIn(r.offset, ref, true)
	}
	return quantity.Quantity[float64]{}, &Error{
		Code:    ErrCodeUnrelatedOrigins,
		From:    from.Name(),
		To:      to.Name(),
		Message: "origins share no direct ancestry",
	}
}

// Related reports whether OriginOffset can succeed for the pair.
func Related(from, to Origin) bool {
	if from == to {
		return true
	}
	if r, ok := from.(*Relative); ok && r.base == to {
		return true
	}
	if r, ok := to.(*Relative); ok && r.base == from {
		return true
	}
	return false
}

func offsetIn(off quantity.Quantity[float64], ref reference.Reference, negate bool) (quantity.Quantity[float64], error) {
	conv, err := quantity.Convert(off, reference.New(off.Spec(), ref.Unit()))
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	if negate {
		return quantity.Neg(conv)
	}
	return conv, nil
}
