package unit

import (
	"strconv"
	"strings"
)

// Symbol renders a unit's display symbol. Derived units compose their
// terms with middle dots, Unicode superscripts for exponents, and a
// parenthesized denominator when it holds more than one term:
//
//	m/s  kg·m/s²  1/s  N·m/(kg·s)
func Symbol(u Unit) string {
	switch x := u.(type) {
	case *Named:
		return x.Symbol()
	case *Scaled:
		return x.Symbol()
	case *Derived:
		return derivedSymbol(x)
	default:
		return ""
	}
}

func derivedSymbol(d *Derived) string {
	num := termsSymbol(d.num)
	if num == "" {
		num = "1"
	}
	if len(d.den) == 0 {
		return num
	}
	den := termsSymbol(d.den)
	if len(d.den) > 1 {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

func termsSymbol(terms []Term) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.Power == 0 {
			continue
		}
		parts = append(parts, Symbol(t.Unit)+superscript(t.Power))
	}
	return strings.Join(parts, "·")
}

// superscript renders an exponent, omitting power one. Common small powers
// use Unicode superscripts; anything else falls back to caret notation.
func superscript(power int64) string {
	switch power {
	case 1:
		return ""
	case 2:
		return "²"
	case 3:
		return "³"
	case -1:
		return "⁻¹"
	case -2:
		return "⁻²"
	default:
		return "^" + strconv.FormatInt(power, 10)
	}
}
