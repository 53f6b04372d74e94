package unit

import "fmt"

// Pow raises a unit to an integer power by scaling every term's exponent.
// Pow(u, 0) is the dimensionless empty derived unit.
func Pow(u Unit, n int64) Unit {
	if n == 0 {
		return &Derived{}
	}
	num, den := flattenUnit(u)
	if n < 0 {
		num, den = den, num
		n = -n
	}
	return &Derived{
		num: scaleTerms(num, n),
		den: scaleTerms(den, n),
	}
}

// Root takes the nth root of a unit. Every term's power must be divisible
// by n; otherwise the root has no representation and an error is returned.
func Root(u Unit, n int64) (Unit, error) {
	if n <= 0 {
		return nil, &Error{
			Code:    ErrCodeRootUndefined,
			Unit:    Symbol(u),
			Message: fmt.Sprintf("root degree must be positive, got %d", n),
		}
	}
	num, den := flattenUnit(u)
	rn, err := rootTerms(num, n, u)
	if err != nil {
		return nil, err
	}
	rd, err := rootTerms(den, n, u)
	if err != nil {
		return nil, err
	}
	if len(rn) == 1 && rn[0].Power == 1 && len(rd) == 0 {
		return rn[0].Unit, nil
	}
	return &Derived{num: rn, den: rd}, nil
}

func scaleTerms(terms []Term, n int64) []Term {
	if len(terms) == 0 {
		return nil
	}
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = Term{Unit: t.Unit, Power: t.Power * n}
	}
	return out
}

func rootTerms(terms []Term, n int64, src Unit) ([]Term, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	out := make([]Term, len(terms))
	for i, t := range terms {
		if t.Power%n != 0 {
			return nil, &Error{
				Code:    ErrCodeRootUndefined,
				Unit:    Symbol(src),
				Message: fmt.Sprintf("power %d of %s is not divisible by %d", t.Power, Symbol(t.Unit), n),
			}
		}
		out[i] = Term{Unit: t.Unit, Power: t.Power / n}
	}
	return out, nil
}
