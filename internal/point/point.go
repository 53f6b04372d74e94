package point

import (
	"fmt"

	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/unit"
)

// Point is a position on a scale: a displacement from an origin. Unlike
// a quantity it does not add to another point; that operation has no
// meaning and no API.
type Point[T quantity.Number] struct {
	displacement quantity.Quantity[T]
	origin       Origin
}

// New anchors a displacement to an origin. The displacement's spec must
// be compatible with the origin's.
func New[T quantity.Number](displacement quantity.Quantity[T], origin Origin) (Point[T], error) {
	ds, os := displacement.Spec(), origin.Spec()
	if !qspec.Equal(ds, os) &&
		!qspec.ImplicitlyConvertible(ds, os) &&
		!qspec.ImplicitlyConvertible(os, ds) {
		return Point[T]{}, &qspec.KindError{
			From:    ds.Name(),
			To:      os.Name(),
			Message: "displacement spec does not match origin",
		}
	}
	return Point[T]{displacement: displacement, origin: origin}, nil
}

// MustNew is New for static declarations; it panics on error.
func MustNew[T quantity.Number](displacement quantity.Quantity[T], origin Origin) Point[T] {
	p, err := New(displacement, origin)
	if err != nil {
		panic(err)
	}
	return p
}

// Displacement returns the quantity from the origin to the point.
func (p Point[T]) Displacement() quantity.Quantity[T] { return p.displacement }

// Origin returns the point's anchor.
func (p Point[T]) Origin() Origin { return p.origin }

// String renders the displacement followed by the origin name.
func (p Point[T]) String() string {
	return fmt.Sprintf("%s from %s", p.displacement, p.origin.Name())
}

// In re-expresses the displacement in another unit, keeping the origin.
func (p Point[T]) In(u unit.Unit) (Point[T], error) {
	d, err := p.displacement.In(u)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{displacement: d, origin: p.origin}, nil
}

// ForceIn is In with rounding permitted for integer representations.
func (p Point[T]) ForceIn(u unit.Unit) (Point[T], error) {
	d, err := p.displacement.ForceIn(u)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{displacement: d, origin: p.origin}, nil
}

// Convert re-anchors a point to a directly related origin. The new
// displacement keeps the point's unit: 0 °C from the ice point becomes
// 273.15 K worth of degrees from absolute zero.
func Convert(p Point[float64], to Origin) (Point[float64], error) {
	off, err := OriginOffset(p.origin, to, p.displacement.Ref())
	if err != nil {
		return Point[float64]{}, err
	}
	d, err := quantity.Add(p.displacement, off)
	if err != nil {
		return Point[float64]{}, err
	}
	return Point[float64]{displacement: d, origin: to}, nil
}

// Sub returns the quantity separating two points with the same origin.
// Points anchored elsewhere must be converted first.
func Sub[T quantity.Number](a, b Point[T]) (quantity.Quantity[T], error) {
	if a.origin != b.origin {
		return quantity.Quantity[T]{}, &Error{
			Code:    ErrCodeOriginMismatch,
			From:    a.origin.Name(),
			To:      b.origin.Name(),
			Message: "subtraction requires a shared origin",
		}
	}
	return quantity.Sub(a.displacement, b.displacement)
}

// AddQuantity displaces a point by a quantity, keeping its origin.
func AddQuantity[T quantity.Number](p Point[T], q quantity.Quantity[T]) (Point[T], error) {
	d, err := quantity.Add(p.displacement, q)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{displacement: d, origin: p.origin}, nil
}

// SubQuantity displaces a point backwards by a quantity.
func SubQuantity[T quantity.Number](p Point[T], q quantity.Quantity[T]) (Point[T], error) {
	d, err := quantity.Sub(p.displacement, q)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{displacement: d, origin: p.origin}, nil
}

// Cmp orders two points with the same origin: -1, 0 or +1.
func Cmp[T quantity.Number](a, b Point[T]) (int, error) {
	if a.origin != b.origin {
		return 0, &Error{
			Code:    ErrCodeOriginMismatch,
			From:    a.origin.Name(),
			To:      b.origin.Name(),
			Message: "comparison requires a shared origin",
		}
	}
	return quantity.Cmp(a.displacement, b.displacement)
}

// Equal reports whether two same-origin points denote the same position.
func Equal[T quantity.Number](a, b Point[T]) (bool, error) {
	c, err := Cmp(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
