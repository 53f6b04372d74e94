package reference

import (
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/unit"
)

// Reference binds a quantity spec to a unit. The zero value is invalid;
// construct through New or FromUnit.
type Reference struct {
	spec qspec.QuantitySpec
	unit unit.Unit
}

// New builds a reference from an explicit spec and unit pair. Use it when
// a particular spec narrower than the unit's kind is wanted, for example
// height measured in metres.
func New(spec qspec.QuantitySpec, u unit.Unit) Reference {
	return Reference{spec: spec, unit: u}
}

// FromUnit builds a reference whose spec is the kind of the unit itself.
// Derived units carry no single kind, so they are rejected.
func FromUnit(u unit.Unit) (Reference, error) {
	kind, ok := unit.KindOf(u)
	if !ok {
		return Reference{}, &unit.Error{
			Code:    unit.ErrCodeNoKind,
			Unit:    unit.Symbol(u),
			Message: "derived unit has no single kind; bind a spec explicitly",
		}
	}
	return Reference{spec: kind.Spec(), unit: u}, nil
}

// Spec returns the quantity specification.
func (r Reference) Spec() qspec.QuantitySpec { return r.spec }

// Unit returns the measurement unit.
func (r Reference) Unit() unit.Unit { return r.unit }

// Symbol returns the reference's unit symbol.
func (r Reference) Symbol() string { return unit.Symbol(r.unit) }

// Mul composes two references component-wise. It always succeeds: the
// resulting spec and unit are derived term lists.
func Mul(a, b Reference) Reference {
	return Reference{
		spec: qspec.Mul(a.spec, b.spec),
		unit: unit.Mul(a.unit, b.unit),
	}
}

// Div composes the quotient of two references component-wise.
func Div(a, b Reference) Reference {
	return Reference{
		spec: qspec.Div(a.spec, b.spec),
		unit: unit.Div(a.unit, b.unit),
	}
}

// Pow raises a reference to an integer power component-wise.
func Pow(r Reference, n int64) Reference {
	return Reference{
		spec: qspec.Pow(r.spec, n),
		unit: unit.Pow(r.unit, n),
	}
}

// Compatible reports whether quantities of the two references may be
// added, subtracted or compared: specs equal or implicitly convertible in
// either direction.
func Compatible(a, b Reference) bool {
	if qspec.Equal(a.spec, b.spec) {
		return true
	}
	return qspec.ImplicitlyConvertible(a.spec, b.spec) ||
		qspec.ImplicitlyConvertible(b.spec, a.spec)
}

// Equal reports whether two references have the same spec and unit.
func Equal(a, b Reference) bool {
	return qspec.Equal(a.spec, b.spec) && unit.Equal(a.unit, b.unit)
}

// ConversionFactor returns the exact factor converting values from a's
// unit into b's unit. The references must be compatible.
func ConversionFactor(a, b Reference) (ratio.Ratio, error) {
	if !Compatible(a, b) {
		return ratio.Ratio{}, &qspec.KindError{
			From:    a.spec.Name(),
			To:      b.spec.Name(),
			Message: "references are not compatible",
		}
	}
	return unit.ConversionFactor(a.unit, b.unit)
}

// ConversionFactorFloat is ConversionFactor on the float64 path, immune
// to overflow for extreme unit magnitude pairs.
func ConversionFactorFloat(a, b Reference) (float64, error) {
	if !Compatible(a, b) {
		return 0, &qspec.KindError{
			From:    a.spec.Name(),
			To:      b.spec.Name(),
			Message: "references are not compatible",
		}
	}
	return unit.ConversionFactorFloat(a.unit, b.unit)
}
