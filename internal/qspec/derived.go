package qspec

import "strings"

// Derived is a quantity spec built from an expression over other specs,
// such as length/time. It is always a root (no parent) with scalar
// character. Numerator and denominator terms accumulate in declaration
// order; the algebra performs no cancellation.
type Derived struct {
	num []QuantitySpec
	den []QuantitySpec
}

func (*Derived) quantitySpec() {}

// Character returns Scalar; derived specs are always scalar.
func (*Derived) Character() Character { return Scalar }

// Name composes a diagnostic name such as "length·length/time".
func (d *Derived) Name() string {
	var b strings.Builder
	if len(d.num) == 0 {
		b.WriteString("1")
	}
	for i, s := range d.num {
		if i > 0 {
			b.WriteString("·")
		}
		b.WriteString(s.Name())
	}
	if len(d.den) > 0 {
		b.WriteString("/")
		if len(d.den) > 1 {
			b.WriteString("(")
		}
		for i, s := range d.den {
			if i > 0 {
				b.WriteString("·")
			}
			b.WriteString(s.Name())
		}
		if len(d.den) > 1 {
			b.WriteString(")")
		}
	}
	return b.String()
}

// Numerator returns the numerator terms in declaration order.
func (d *Derived) Numerator() []QuantitySpec { return d.num }

// Denominator returns the denominator terms in declaration order.
func (d *Derived) Denominator() []QuantitySpec { return d.den }

// flatten splits any spec into numerator/denominator term lists. A named
// spec flattens to a single numerator term.
func flatten(s QuantitySpec) (num, den []QuantitySpec) {
	if d, ok := s.(*Derived); ok {
		return d.num, d.den
	}
	return []QuantitySpec{s}, nil
}

// Mul multiplies two specs into a derived spec by concatenating their
// numerator and denominator term lists.
func Mul(a, b QuantitySpec) *Derived {
	an, ad := flatten(a)
	bn, bd := flatten(b)
	return &Derived{
		num: concat(an, bn),
		den: concat(ad, bd),
	}
}

// Div divides two specs: multiplication by the reciprocal of b.
func Div(a, b QuantitySpec) *Derived {
	an, ad := flatten(a)
	bn, bd := flatten(b)
	return &Derived{
		num: concat(an, bd),
		den: concat(ad, bn),
	}
}

// Pow raises a spec to an integer power by repeating its terms. A
// negative power swaps numerator and denominator; Pow(s, 0) is the
// dimensionless empty derived spec.
func Pow(s QuantitySpec, n int64) *Derived {
	if n == 0 {
		return &Derived{}
	}
	num, den := flatten(s)
	if n < 0 {
		num, den = den, num
		n = -n
	}
	return &Derived{
		num: repeat(num, n),
		den: repeat(den, n),
	}
}

// Root takes the nth root of a spec. It succeeds only when both term
// lists consist of n identical consecutive blocks, the shape Pow
// produces; ok is false otherwise.
func Root(s QuantitySpec, n int64) (QuantitySpec, bool) {
	if n <= 0 {
		return nil, false
	}
	if n == 1 {
		return s, true
	}
	num, den := flatten(s)
	rn, ok := unrepeat(num, n)
	if !ok {
		return nil, false
	}
	rd, ok := unrepeat(den, n)
	if !ok {
		return nil, false
	}
	if len(rn) == 1 && len(rd) == 0 {
		return rn[0], true
	}
	return &Derived{num: rn, den: rd}, true
}

func unrepeat(terms []QuantitySpec, n int64) ([]QuantitySpec, bool) {
	if len(terms) == 0 {
		return nil, true
	}
	if int64(len(terms))%n != 0 {
		return nil, false
	}
	block := int64(len(terms)) / n
	head := terms[:block]
	for i := block; i < int64(len(terms)); i += block {
		if !termsEqual(head, terms[i:i+block]) {
			return nil, false
		}
	}
	return head, true
}

func repeat(terms []QuantitySpec, n int64) []QuantitySpec {
	if len(terms) == 0 {
		return nil
	}
	out := make([]QuantitySpec, 0, int64(len(terms))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, terms...)
	}
	return out
}

func concat(a, b []QuantitySpec) []QuantitySpec {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]QuantitySpec, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Equal reports whether two specs are the same kind. Named specs compare
// by identity; derived specs compare structurally, term by term.
func Equal(a, b QuantitySpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Spec:
		y, ok := b.(*Spec)
		return ok && x == y
	case *Derived:
		y, ok := b.(*Derived)
		if !ok {
			return false
		}
		return termsEqual(x.num, y.num) && termsEqual(x.den, y.den)
	default:
		return false
	}
}

func termsEqual(a, b []QuantitySpec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
