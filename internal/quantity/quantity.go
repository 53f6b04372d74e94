package quantity

import (
	"fmt"
	"math"

	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/unit"
)

// Number is the set of representations a quantity can carry.
type Number interface {
	int64 | float64
}

// Quantity is a numeric value interpreted against a reference. The zero
// value is a dimensionless zero with an invalid reference; construct
// through New.
type Quantity[T Number] struct {
	value T
	ref   reference.Reference
}

// New binds a value to a reference.
func New[T Number](value T, ref reference.Reference) Quantity[T] {
	return Quantity[T]{value: value, ref: ref}
}

// Value returns the raw numeric value in the quantity's own unit.
func (q Quantity[T]) Value() T { return q.value }

// Ref returns the quantity's reference.
func (q Quantity[T]) Ref() reference.Reference { return q.ref }

// Unit returns the quantity's unit.
func (q Quantity[T]) Unit() unit.Unit { return q.ref.Unit() }

// Spec returns the quantity's spec.
func (q Quantity[T]) Spec() qspec.QuantitySpec { return q.ref.Spec() }

// String renders the value followed by the unit symbol.
func (q Quantity[T]) String() string {
	return fmt.Sprintf("%v %s", q.value, q.ref.Symbol())
}

// In re-expresses the quantity in another unit of the same spec. Integer
// quantities refuse conversions that would truncate; use ForceIn to
// round instead.
func (q Quantity[T]) In(u unit.Unit) (Quantity[T], error) {
	if err := checkUnitKind(q.ref.Spec(), u); err != nil {
		return Quantity[T]{}, err
	}
	target := reference.New(q.ref.Spec(), u)
	v, err := convertValue(q.value, q.ref, target, false)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: target}, nil
}

// ForceIn is In with rounding permitted for integer representations.
func (q Quantity[T]) ForceIn(u unit.Unit) (Quantity[T], error) {
	if err := checkUnitKind(q.ref.Spec(), u); err != nil {
		return Quantity[T]{}, err
	}
	target := reference.New(q.ref.Spec(), u)
	v, err := convertValue(q.value, q.ref, target, true)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: target}, nil
}

// Convert re-interprets the quantity under a new reference. The spec must
// be implicitly convertible (same kind, widening only); the value is
// rescaled for the unit change.
func Convert[T Number](q Quantity[T], to reference.Reference) (Quantity[T], error) {
	if !qspec.ImplicitlyConvertible(q.ref.Spec(), to.Spec()) {
		return Quantity[T]{}, &qspec.KindError{
			From:    q.ref.Spec().Name(),
			To:      to.Spec().Name(),
			Message: "not implicitly convertible",
		}
	}
	v, err := convertValue(q.value, q.ref, to, false)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: to}, nil
}

// Cast is Convert for explicit conversions: it additionally permits
// narrowing to a child spec of the same kind.
func Cast[T Number](q Quantity[T], to reference.Reference) (Quantity[T], error) {
	if !qspec.ExplicitlyConvertible(q.ref.Spec(), to.Spec()) {
		return Quantity[T]{}, &qspec.KindError{
			From:    q.ref.Spec().Name(),
			To:      to.Spec().Name(),
			Message: "not explicitly convertible",
		}
	}
	v, err := convertValue(q.value, q.ref, to, false)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: to}, nil
}

// AsFloat64 widens any quantity to the float64 representation. There is
// no inverse; narrowing back to int64 has no API.
func AsFloat64[T Number](q Quantity[T]) Quantity[float64] {
	return Quantity[float64]{value: float64(q.value), ref: q.ref}
}

// checkUnitKind rejects a target unit that measures a different kind
// than the quantity's spec. Derived units carry no single kind and pass
// unchecked; their factors were vetted when the reference was composed.
func checkUnitKind(spec qspec.QuantitySpec, u unit.Unit) error {
	k, ok := unit.KindOf(u)
	if !ok {
		return nil
	}
	ks := qspec.QuantitySpec(k.Spec())
	if qspec.Equal(spec, ks) ||
		qspec.ImplicitlyConvertible(spec, ks) ||
		qspec.ImplicitlyConvertible(ks, spec) {
		return nil
	}
	return &qspec.KindError{
		From:    spec.Name(),
		To:      ks.Name(),
		Message: "unit measures a different kind",
	}
}

// convertValue rescales v from one reference's unit to another's.
// Integer values convert on the exact rational path and fail when the
// result is not integral, unless round is set. Float values convert on
// the float path, which cannot overflow.
func convertValue[T Number](v T, from, to reference.Reference, round bool) (T, error) {
	switch x := any(v).(type) {
	case float64:
		f, err := unit.ConversionFactorFloat(from.Unit(), to.Unit())
		if err != nil {
			return 0, err
		}
		return T(x * f), nil
	case int64:
		factor, err := unit.ConversionFactor(from.Unit(), to.Unit())
		if err != nil {
			return 0, err
		}
		scaled, err := ratio.FromInt(x).Mul(factor)
		if err != nil {
			return 0, &Error{
				Code:    ErrCodeOverflow,
				Op:      "convert",
				Message: fmt.Sprintf("%d %s to %s: %v", x, from.Symbol(), to.Symbol(), err),
			}
		}
		if scaled.IsInteger() {
			return T(scaled.Num()), nil
		}
		if !round {
			return 0, &Error{
				Code:    ErrCodeInexact,
				Op:      "convert",
				Message: fmt.Sprintf("%d %s is not a whole number of %s", x, from.Symbol(), to.Symbol()),
			}
		}
		return T(int64(math.Round(scaled.Float64()))), nil
	default:
		panic("unreachable representation")
	}
}
