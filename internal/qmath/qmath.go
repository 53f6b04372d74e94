package qmath

import (
	"fmt"
	"math"

	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/unit"
)

// Abs returns the magnitude of q in its own unit.
func Abs(q quantity.Quantity[float64]) quantity.Quantity[float64] {
	return quantity.New(math.Abs(q.Value()), q.Ref())
}

// Floor rounds q down to a whole number of its unit.
func Floor(q quantity.Quantity[float64]) quantity.Quantity[float64] {
	return quantity.New(math.Floor(q.Value()), q.Ref())
}

// Ceil rounds q up to a whole number of its unit.
func Ceil(q quantity.Quantity[float64]) quantity.Quantity[float64] {
	return quantity.New(math.Ceil(q.Value()), q.Ref())
}

// Round rounds q to the nearest whole number of its unit, halves away
// from zero.
func Round(q quantity.Quantity[float64]) quantity.Quantity[float64] {
	return quantity.New(math.Round(q.Value()), q.Ref())
}

// Trunc drops the fractional part of q in its unit.
func Trunc(q quantity.Quantity[float64]) quantity.Quantity[float64] {
	return quantity.New(math.Trunc(q.Value()), q.Ref())
}

// Mod returns the floating-point remainder of a/b for compatible
// quantities, expressed in a's unit.
func Mod(a, b quantity.Quantity[float64]) (quantity.Quantity[float64], error) {
	bv, err := alignedValue(b, a)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(math.Mod(a.Value(), bv), a.Ref()), nil
}

// Hypot returns sqrt(a² + b²) without intermediate overflow, in a's
// unit.
func Hypot(a, b quantity.Quantity[float64]) (quantity.Quantity[float64], error) {
	bv, err := alignedValue(b, a)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(math.Hypot(a.Value(), bv), a.Ref()), nil
}

// Pow raises q to an integer power; the reference's exponents scale with
// it.
func Pow(q quantity.Quantity[float64], n int64) quantity.Quantity[float64] {
	return quantity.New(math.Pow(q.Value(), float64(n)), reference.Pow(q.Ref(), n))
}

// Sqrt takes the square root of a quantity. The reference must itself
// have a square root: sqrt(m²) is m, but sqrt(m) has no unit.
func Sqrt(q quantity.Quantity[float64]) (quantity.Quantity[float64], error) {
	if q.Value() < 0 {
		return quantity.Quantity[float64]{}, &Error{
			Code:    ErrCodeDomain,
			Fn:      "sqrt",
			Message: fmt.Sprintf("negative argument %v", q.Value()),
		}
	}
	ref, err := rootRef(q.Ref(), 2, "sqrt")
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(math.Sqrt(q.Value()), ref), nil
}

// Cbrt takes the cube root of a quantity; negative arguments are fine.
func Cbrt(q quantity.Quantity[float64]) (quantity.Quantity[float64], error) {
	ref, err := rootRef(q.Ref(), 3, "cbrt")
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(math.Cbrt(q.Value()), ref), nil
}

// Sin evaluates the sine of an angle quantity. The value is normalized
// by the unit's magnitude first, so any coherent-radian-scaled unit
// works.
func Sin(q quantity.Quantity[float64]) (float64, error) {
	rad, err := coherentValue(q)
	if err != nil {
		return 0, err
	}
	return math.Sin(rad), nil
}

// Cos evaluates the cosine of an angle quantity.
func Cos(q quantity.Quantity[float64]) (float64, error) {
	rad, err := coherentValue(q)
	if err != nil {
		return 0, err
	}
	return math.Cos(rad), nil
}

// Tan evaluates the tangent of an angle quantity.
func Tan(q quantity.Quantity[float64]) (float64, error) {
	rad, err := coherentValue(q)
	if err != nil {
		return 0, err
	}
	return math.Tan(rad), nil
}

// Asin returns the angle whose sine is x, expressed under the given
// angle reference. Arguments outside [-1, 1] are a domain error.
func Asin(x float64, angle reference.Reference) (quantity.Quantity[float64], error) {
	if x < -1 || x > 1 {
		return quantity.Quantity[float64]{}, &Error{
			Code:    ErrCodeDomain,
			Fn:      "asin",
			Message: fmt.Sprintf("argument %v outside [-1, 1]", x),
		}
	}
	return angleIn(math.Asin(x), angle)
}

// Acos returns the angle whose cosine is x, expressed under the given
// angle reference. Arguments outside [-1, 1] are a domain error.
func Acos(x float64, angle reference.Reference) (quantity.Quantity[float64], error) {
	if x < -1 || x > 1 {
		return quantity.Quantity[float64]{}, &Error{
			Code:    ErrCodeDomain,
			Fn:      "acos",
			Message: fmt.Sprintf("argument %v outside [-1, 1]", x),
		}
	}
	return angleIn(math.Acos(x), angle)
}

// Atan returns the angle whose tangent is x, expressed under the given
// angle reference.
func Atan(x float64, angle reference.Reference) (quantity.Quantity[float64], error) {
	return angleIn(math.Atan(x), angle)
}

// Atan2 returns the angle of the vector (x, y), expressed under the
// given angle reference. The operands must be compatible quantities.
func Atan2(y, x quantity.Quantity[float64], angle reference.Reference) (quantity.Quantity[float64], error) {
	xv, err := alignedValue(x, y)
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return angleIn(math.Atan2(y.Value(), xv), angle)
}

// alignedValue expresses q's value in target's reference.
func alignedValue(q, target quantity.Quantity[float64]) (float64, error) {
	f, err := reference.ConversionFactorFloat(q.Ref(), target.Ref())
	if err != nil {
		return 0, err
	}
	return q.Value() * f, nil
}

// coherentValue scales a value by its unit magnitude, yielding its size
// in the coherent unit of its kind.
func coherentValue(q quantity.Quantity[float64]) (float64, error) {
	mag, err := q.Unit().Magnitude()
	if err != nil {
		return 0, err
	}
	return q.Value() * mag.Float64(), nil
}

// angleIn expresses a coherent-unit (radian) value under an angle
// reference.
func angleIn(rad float64, angle reference.Reference) (quantity.Quantity[float64], error) {
	mag, err := angle.Unit().Magnitude()
	if err != nil {
		return quantity.Quantity[float64]{}, err
	}
	return quantity.New(rad/mag.Float64(), angle), nil
}

func rootRef(ref reference.Reference, n int64, fn string) (reference.Reference, error) {
	spec, ok := qspec.Root(ref.Spec(), n)
	if !ok {
		return reference.Reference{}, &Error{
			Code:    ErrCodeRoot,
			Fn:      fn,
			Message: fmt.Sprintf("spec %s has no %s root", ref.Spec().Name(), ordinal(n)),
		}
	}
	u, err := unit.Root(ref.Unit(), n)
	if err != nil {
		return reference.Reference{}, &Error{
			Code:    ErrCodeRoot,
			Fn:      fn,
			Message: err.Error(),
		}
	}
	return reference.New(spec, u), nil
}

func ordinal(n int64) string {
	switch n {
	case 2:
		return "square"
	case 3:
		return "cube"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
