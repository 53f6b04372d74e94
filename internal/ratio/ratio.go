package ratio

import (
	"fmt"
	"math"
)

// Ratio is an exact rational number in canonical form: den > 0 and
// gcd(|num|, den) == 1. The zero value is the ratio 0/1.
//
// Ratios are immutable; every operation returns a new value.
type Ratio struct {
	num int64
	den int64
}

// Common values.
var (
	Zero = Ratio{0, 1}
	One  = Ratio{1, 1}
	Half = Ratio{1, 2}
)

// New constructs a canonical Ratio from a numerator and denominator.
// Fails if den is zero or if sign normalization cannot be represented
// (both only reachable at the extremes of the int64 range).
func New(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, &ArithmeticError{
			Code:   ErrCodeZeroDenominator,
			Op:     "new",
			Detail: fmt.Sprintf("ratio %d/0 has a zero denominator", num),
		}
	}

	neg := (num < 0) != (den < 0)
	un := absU64(num)
	ud := absU64(den)
	g := gcdU64(un, ud)
	un /= g
	ud /= g

	// After reduction the magnitudes must fit back into int64. The only
	// values that cannot are reduced magnitudes above 2^63 (negative
	// numerator allows exactly 2^63).
	if ud > math.MaxInt64 {
		return Ratio{}, overflowError("new", fmt.Sprintf("denominator %d is not representable", ud))
	}
	if neg {
		if un == 1<<63 {
			return Ratio{num: math.MinInt64, den: int64(ud)}, nil
		}
		return Ratio{num: -int64(un), den: int64(ud)}, nil
	}
	if un > math.MaxInt64 {
		return Ratio{}, overflowError("new", fmt.Sprintf("numerator %d is not representable", un))
	}
	return Ratio{num: int64(un), den: int64(ud)}, nil
}

// MustNew is New for static catalog declarations; it panics on error.
func MustNew(num, den int64) Ratio {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt constructs the ratio n/1.
func FromInt(n int64) Ratio {
	return Ratio{num: n, den: 1}
}

// Num returns the canonical numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the canonical denominator (always positive).
func (r Ratio) Den() int64 {
	if r.den == 0 {
		return 1 // zero value is 0/1
	}
	return r.den
}

// Sign returns -1, 0 or 1.
func (r Ratio) Sign() int {
	switch {
	case r.num > 0:
		return 1
	case r.num < 0:
		return -1
	default:
		return 0
	}
}

// IsZero reports whether the ratio equals zero.
func (r Ratio) IsZero() bool { return r.num == 0 }

// IsInteger reports whether the ratio has denominator 1.
func (r Ratio) IsInteger() bool { return r.Den() == 1 }

// Float64 materializes the ratio as a floating-point value.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders the ratio for diagnostics.
func (r Ratio) String() string {
	if r.IsInteger() {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

// Equal reports structural equality. Canonical form makes this exact.
func (r Ratio) Equal(other Ratio) bool {
	return r.num == other.num && r.Den() == other.Den()
}

// Cmp compares r against other, returning -1, 0 or 1.
//
// Cross-multiplication is done after dividing out gcd(r.den, other.den),
// which keeps the products in range for every pair of canonical ratios a
// naive comparison would overflow on.
func (r Ratio) Cmp(other Ratio) int {
	g := gcd64(r.Den(), other.Den())
	lhs := r.num * (other.Den() / g)
	rhs := other.num * (r.Den() / g)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less reports whether r < other.
func (r Ratio) Less(other Ratio) bool { return r.Cmp(other) < 0 }

// Add returns r + other.
//
// The denominators are reduced by their gcd before cross-multiplying,
// matching the overflow-minimizing form add is specified in.
func (r Ratio) Add(other Ratio) (Ratio, error) {
	g := gcd64(r.Den(), other.Den())
	d1 := r.Den() / g
	d2 := other.Den() / g

	t1, err := checkedMul(r.num, d2, "add")
	if err != nil {
		return Ratio{}, err
	}
	t2, err := checkedMul(other.num, d1, "add")
	if err != nil {
		return Ratio{}, err
	}
	num, err := checkedAdd(t1, t2, "add")
	if err != nil {
		return Ratio{}, err
	}
	den, err := checkedMul(r.Den(), d2, "add")
	if err != nil {
		return Ratio{}, err
	}
	return New(num, den)
}

// Sub returns r - other.
func (r Ratio) Sub(other Ratio) (Ratio, error) {
	neg, err := other.Neg()
	if err != nil {
		return Ratio{}, err
	}
	return r.Add(neg)
}

// Mul returns r * other.
//
// Cross-reduction (gcd of each numerator against the opposite denominator)
// is applied first so products stay as small as the result allows.
func (r Ratio) Mul(other Ratio) (Ratio, error) {
	g1 := gcd64(r.num, other.Den())
	g2 := gcd64(other.num, r.Den())

	num, err := checkedMul(r.num/g1, other.num/g2, "mul")
	if err != nil {
		return Ratio{}, err
	}
	den, err := checkedMul(r.Den()/g2, other.Den()/g1, "mul")
	if err != nil {
		return Ratio{}, err
	}
	return New(num, den)
}

// Div returns r / other. Fails when other is zero.
func (r Ratio) Div(other Ratio) (Ratio, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Ratio{}, err
	}
	return r.Mul(inv)
}

// Pow returns r raised to an integer exponent using repeated squaring.
// A negative exponent inverts first and fails when r is zero.
func (r Ratio) Pow(exp int64) (Ratio, error) {
	switch {
	case exp == 0:
		return One, nil
	case exp == 1:
		return r, nil
	case exp < 0:
		inv, err := r.Inverse()
		if err != nil {
			return Ratio{}, err
		}
		if exp == math.MinInt64 {
			return Ratio{}, overflowError("pow", "exponent out of range")
		}
		return inv.Pow(-exp)
	}

	num, err := ipow(r.num, exp, "pow")
	if err != nil {
		return Ratio{}, err
	}
	den, err := ipow(r.Den(), exp, "pow")
	if err != nil {
		return Ratio{}, err
	}
	return New(num, den)
}

// Neg returns -r.
func (r Ratio) Neg() (Ratio, error) {
	if r.num == math.MinInt64 {
		return Ratio{}, overflowError("neg", "negation of minimum numerator")
	}
	return Ratio{num: -r.num, den: r.Den()}, nil
}

// Abs returns |r|.
func (r Ratio) Abs() (Ratio, error) {
	if r.num >= 0 {
		return Ratio{num: r.num, den: r.Den()}, nil
	}
	return r.Neg()
}

// Inverse returns 1/r. Fails when r is zero.
func (r Ratio) Inverse() (Ratio, error) {
	if r.num == 0 {
		return Ratio{}, &ArithmeticError{
			Code:   ErrCodeZeroInversion,
			Op:     "inverse",
			Detail: "cannot invert zero ratio",
		}
	}
	return New(r.Den(), r.num)
}

// GCD returns the greatest common divisor of two non-negative integers,
// with GCD(0, x) == x.
func GCD(a, b int64) int64 { return gcd64(a, b) }

// LCM returns the least common multiple, with LCM(0, x) == 0.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g := gcd64(a, b)
	return checkedMul(abs64(a)/g, abs64(b), "lcm")
}

// ----------------------------------------------------------------------------
// Checked integer helpers
// ----------------------------------------------------------------------------

func checkedMul(a, b int64, op string) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > 0 {
		if b > 0 {
			if a > math.MaxInt64/b {
				return 0, overflowError(op, fmt.Sprintf("%d * %d overflows", a, b))
			}
		} else if b < math.MinInt64/a {
			return 0, overflowError(op, fmt.Sprintf("%d * %d overflows", a, b))
		}
	} else if b > 0 {
		if a < math.MinInt64/b {
			return 0, overflowError(op, fmt.Sprintf("%d * %d overflows", a, b))
		}
	} else if b < math.MaxInt64/a {
		return 0, overflowError(op, fmt.Sprintf("%d * %d overflows", a, b))
	}
	return a * b, nil
}

func checkedAdd(a, b int64, op string) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, overflowError(op, fmt.Sprintf("%d + %d overflows", a, b))
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, overflowError(op, fmt.Sprintf("%d + %d overflows", a, b))
	}
	return a + b, nil
}

// ipow computes base^exp (exp > 0) by repeated squaring with overflow checks.
func ipow(base, exp int64, op string) (int64, error) {
	result := int64(1)
	var err error
	for exp > 0 {
		if exp&1 != 0 {
			result, err = checkedMul(result, base, op)
			if err != nil {
				return 0, err
			}
		}
		if exp > 1 {
			base, err = checkedMul(base, base, op)
			if err != nil {
				return 0, err
			}
		}
		exp >>= 1
	}
	return result, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// absU64 returns |v| as uint64, which is exact even for MinInt64.
func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func gcd64(a, b int64) int64 {
	ua := absU64(a)
	ub := absU64(b)
	g := gcdU64(ua, ub)
	if g == 0 {
		return 0
	}
	return int64(g)
}

func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
