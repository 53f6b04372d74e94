package unit

import "github.com/measura/measura/internal/ratio"

// Term is a single factor in a derived unit expression: a unit raised to
// a non-zero integer power.
type Term struct {
	Unit  Unit
	Power int64
}

// Derived is a compound unit formed from unit-power terms (m/s, kg·m/s²).
// Term lists accumulate exactly as operations construct them.
type Derived struct {
	num []Term
	den []Term
}

func (*Derived) unit() {}

// NewDerived builds a derived unit directly from term lists. Catalogs use
// this for coherent derived units whose factors matter (erg/s).
func NewDerived(num, den []Term) *Derived {
	return &Derived{num: num, den: den}
}

// Numerator returns the numerator terms.
func (d *Derived) Numerator() []Term { return d.num }

// Denominator returns the denominator terms.
func (d *Derived) Denominator() []Term { return d.den }

// Magnitude multiplies out every term's magnitude raised to its power,
// dividing by the denominator product.
func (d *Derived) Magnitude() (ratio.Ratio, error) {
	mag := ratio.One
	var err error
	for _, t := range d.num {
		mag, err = applyTerm(mag, t, false)
		if err != nil {
			return ratio.Ratio{}, err
		}
	}
	for _, t := range d.den {
		mag, err = applyTerm(mag, t, true)
		if err != nil {
			return ratio.Ratio{}, err
		}
	}
	return mag, nil
}

func applyTerm(acc ratio.Ratio, t Term, invert bool) (ratio.Ratio, error) {
	m, err := t.Unit.Magnitude()
	if err != nil {
		return ratio.Ratio{}, err
	}
	p, err := m.Pow(t.Power)
	if err != nil {
		return ratio.Ratio{}, err
	}
	if invert {
		return acc.Div(p)
	}
	return acc.Mul(p)
}

// flattenUnit splits any unit into numerator/denominator term lists. A
// named or scaled unit flattens to a single term of power one.
func flattenUnit(u Unit) (num, den []Term) {
	if d, ok := u.(*Derived); ok {
		return d.num, d.den
	}
	return []Term{{Unit: u, Power: 1}}, nil
}

// Mul multiplies two units by concatenating their term lists.
func Mul(a, b Unit) *Derived {
	an, ad := flattenUnit(a)
	bn, bd := flattenUnit(b)
	return &Derived{
		num: concatTerms(an, bn),
		den: concatTerms(ad, bd),
	}
}

// Div divides two units: multiplication by the reciprocal of b.
func Div(a, b Unit) *Derived {
	an, ad := flattenUnit(a)
	bn, bd := flattenUnit(b)
	return &Derived{
		num: concatTerms(an, bd),
		den: concatTerms(ad, bn),
	}
}

func concatTerms(a, b []Term) []Term {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]Term, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Equal reports whether two units are the same. Named and scaled units
// compare by identity (catalog singletons); derived units compare
// structurally, term by term.
func Equal(a, b Unit) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Derived:
		y, ok := b.(*Derived)
		if !ok {
			return false
		}
		return unitTermsEqual(x.num, y.num) && unitTermsEqual(x.den, y.den)
	default:
		return a == b
	}
}

func unitTermsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Power != b[i].Power || !Equal(a[i].Unit, b[i].Unit) {
			return false
		}
	}
	return true
}
