package unit

import (
	"golang.org/x/text/unicode/norm"

	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
)

// Unit is a sealed interface over the three unit shapes: Named, Scaled and
// Derived. Only this package implements it.
type Unit interface {
	// Magnitude returns the exact scale of the unit relative to the
	// coherent base unit of its kind. Derived units compute it from their
	// terms, which can overflow.
	Magnitude() (ratio.Ratio, error)

	unit() // sealed
}

// Named is a fundamental or coherent derived unit with a symbol and an
// associated quantity kind (metre, kilogram, newton).
type Named struct {
	symbol string
	kind   qspec.Kind
	mag    ratio.Ratio
}

func (*Named) unit() {}

// NewNamed declares a named unit with magnitude one.
func NewNamed(symbol string, kind qspec.Kind) *Named {
	return NewNamedMag(symbol, kind, ratio.One)
}

// NewNamedMag declares a named unit with an explicit magnitude relative to
// the coherent base unit of its kind (gram → 1/1000 of kilogram).
func NewNamedMag(symbol string, kind qspec.Kind, mag ratio.Ratio) *Named {
	return &Named{symbol: norm.NFC.String(symbol), kind: kind, mag: mag}
}

// Symbol returns the declared symbol.
func (n *Named) Symbol() string { return n.symbol }

// Kind returns the associated quantity kind.
func (n *Named) Kind() qspec.Kind { return n.kind }

// Magnitude returns the declared magnitude.
func (n *Named) Magnitude() (ratio.Ratio, error) { return n.mag, nil }

// Scaled is a unit derived from another by scaling its magnitude, used
// for prefixed units (kilometre = 1000 × metre) and historical scalings.
type Scaled struct {
	symbol string
	base   Unit
	scale  ratio.Ratio
}

func (*Scaled) unit() {}

// NewScaled declares a scaled unit over base with an extra magnitude.
func NewScaled(symbol string, base Unit, scale ratio.Ratio) *Scaled {
	return &Scaled{symbol: norm.NFC.String(symbol), base: base, scale: scale}
}

// NewPrefixed declares a prefixed unit: NewScaled with a metric prefix
// ratio (ratio.Kilo, ratio.Micro, ...).
func NewPrefixed(symbol string, prefix ratio.Ratio, base Unit) *Scaled {
	return NewScaled(symbol, base, prefix)
}

// Symbol returns the declared symbol.
func (s *Scaled) Symbol() string { return s.symbol }

// Base returns the unit being scaled.
func (s *Scaled) Base() Unit { return s.base }

// Scale returns the extra magnitude applied on top of the base.
func (s *Scaled) Scale() ratio.Ratio { return s.scale }

// Magnitude returns scale × base magnitude.
func (s *Scaled) Magnitude() (ratio.Ratio, error) {
	base, err := s.base.Magnitude()
	if err != nil {
		return ratio.Ratio{}, err
	}
	return s.scale.Mul(base)
}

// KindOf resolves the quantity kind a unit measures. Scaled units inherit
// their base's kind; derived units have none.
func KindOf(u Unit) (qspec.Kind, bool) {
	switch v := u.(type) {
	case *Named:
		return v.kind, true
	case *Scaled:
		return KindOf(v.base)
	default:
		return qspec.Kind{}, false
	}
}
