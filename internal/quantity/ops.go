package quantity

import (
	"fmt"
	"math"

	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/reference"
)

// Add sums two compatible quantities. The result carries the common spec
// of the operands and the left operand's unit; the right operand is
// rescaled into it first.
func Add[T Number](a, b Quantity[T]) (Quantity[T], error) {
	resRef, bConv, err := alignOperands(a, b, "add")
	if err != nil {
		return Quantity[T]{}, err
	}
	v, err := addValues(a.value, bConv, "add")
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: resRef}, nil
}

// Sub subtracts b from a under the same rules as Add.
func Sub[T Number](a, b Quantity[T]) (Quantity[T], error) {
	resRef, bConv, err := alignOperands(a, b, "sub")
	if err != nil {
		return Quantity[T]{}, err
	}
	nb, err := negValue(bConv)
	if err != nil {
		return Quantity[T]{}, err
	}
	v, err := addValues(a.value, nb, "sub")
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: resRef}, nil
}

// Mul multiplies two quantities of any kinds. The result's reference is
// the term-wise product of the operand references.
func Mul[T Number](a, b Quantity[T]) (Quantity[T], error) {
	v, err := mulValues(a.value, b.value)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: reference.Mul(a.ref, b.ref)}, nil
}

// Div divides two quantities of any kinds. Integer division truncates
// toward zero and rejects a zero divisor.
func Div[T Number](a, b Quantity[T]) (Quantity[T], error) {
	v, err := divValues(a.value, b.value)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: reference.Div(a.ref, b.ref)}, nil
}

// MulScalar scales a quantity by a bare number, keeping its reference.
func MulScalar[T Number](q Quantity[T], s T) (Quantity[T], error) {
	v, err := mulValues(q.value, s)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: q.ref}, nil
}

// DivScalar divides a quantity by a bare number, keeping its reference.
func DivScalar[T Number](q Quantity[T], s T) (Quantity[T], error) {
	v, err := divValues(q.value, s)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: q.ref}, nil
}

// Neg negates a quantity. The only integer failure is math.MinInt64.
func Neg[T Number](q Quantity[T]) (Quantity[T], error) {
	v, err := negValue(q.value)
	if err != nil {
		return Quantity[T]{}, err
	}
	return Quantity[T]{value: v, ref: q.ref}, nil
}

// Cmp compares two compatible quantities: -1 if a < b, 0 if equal, +1 if
// a > b. The right operand is compared in the left operand's unit; the
// integer path compares exactly without converting the values.
func Cmp[T Number](a, b Quantity[T]) (int, error) {
	if !reference.Compatible(a.ref, b.ref) {
		return 0, &qspec.KindError{
			From:    a.ref.Spec().Name(),
			To:      b.ref.Spec().Name(),
			Message: "cannot compare incompatible quantities",
		}
	}
	switch av := any(a.value).(type) {
	case float64:
		f, err := reference.ConversionFactorFloat(b.ref, a.ref)
		if err != nil {
			return 0, err
		}
		bv := any(b.value).(float64) * f
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		default:
			return 0, nil
		}
	case int64:
		factor, err := reference.ConversionFactor(b.ref, a.ref)
		if err != nil {
			return 0, err
		}
		br, err := ratio.FromInt(any(b.value).(int64)).Mul(factor)
		if err != nil {
			return 0, &Error{Code: ErrCodeOverflow, Op: "cmp", Message: err.Error()}
		}
		return ratio.FromInt(av).Cmp(br), nil
	default:
		panic("unreachable representation")
	}
}

// Equal reports whether two compatible quantities denote the same amount.
func Equal[T Number](a, b Quantity[T]) (bool, error) {
	c, err := Cmp(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// alignOperands validates compatibility for additive operations and
// returns the result reference plus b's value expressed in it.
func alignOperands[T Number](a, b Quantity[T], op string) (reference.Reference, T, error) {
	if !reference.Compatible(a.ref, b.ref) {
		var zero T
		return reference.Reference{}, zero, &qspec.KindError{
			From:    a.ref.Spec().Name(),
			To:      b.ref.Spec().Name(),
			Message: "cannot " + op + " incompatible quantities",
		}
	}
	common, err := qspec.Common(a.ref.Spec(), b.ref.Spec())
	if err != nil {
		var zero T
		return reference.Reference{}, zero, err
	}
	resRef := reference.New(common, a.ref.Unit())
	bConv, err := convertValue(b.value, b.ref, resRef, false)
	if err != nil {
		var zero T
		return reference.Reference{}, zero, err
	}
	return resRef, bConv, nil
}

func addValues[T Number](a, b T, op string) (T, error) {
	switch x := any(a).(type) {
	case int64:
		y := any(b).(int64)
		sum := x + y
		if (y > 0 && sum < x) || (y < 0 && sum > x) {
			return 0, &Error{
				Code:    ErrCodeOverflow,
				Op:      op,
				Message: fmt.Sprintf("%d + %d overflows int64", x, y),
			}
		}
		return T(sum), nil
	default:
		return a + b, nil
	}
}

func mulValues[T Number](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int64:
		y := any(b).(int64)
		if x == 0 || y == 0 {
			return 0, nil
		}
		prod := x * y
		if prod/y != x || (x == math.MinInt64 && y == -1) {
			return 0, &Error{
				Code:    ErrCodeOverflow,
				Op:      "mul",
				Message: fmt.Sprintf("%d * %d overflows int64", x, y),
			}
		}
		return T(prod), nil
	default:
		return a * b, nil
	}
}

func divValues[T Number](a, b T) (T, error) {
	switch x := any(a).(type) {
	case int64:
		y := any(b).(int64)
		if y == 0 {
			return 0, &Error{
				Code:    ErrCodeDivideByZero,
				Op:      "div",
				Message: "integer division by zero",
			}
		}
		if x == math.MinInt64 && y == -1 {
			return 0, &Error{
				Code:    ErrCodeOverflow,
				Op:      "div",
				Message: fmt.Sprintf("%d / %d overflows int64", x, y),
			}
		}
		return T(x / y), nil
	default:
		return a / b, nil
	}
}

func negValue[T Number](v T) (T, error) {
	if x, ok := any(v).(int64); ok && x == math.MinInt64 {
		return 0, &Error{
			Code:    ErrCodeOverflow,
			Op:      "neg",
			Message: "negating math.MinInt64 overflows int64",
		}
	}
	return -v, nil
}
