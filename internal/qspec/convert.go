package qspec

import (
	"errors"
	"fmt"
)

// KindError reports a conversion attempt between unrelated quantity kinds.
type KindError struct {
	// From and To name the two kinds involved.
	From string
	To   string

	// Message describes the rejected operation.
	Message string
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("KIND_MISMATCH: %s (from=%s, to=%s)", e.Message, e.From, e.To)
}

// IsKindMismatch returns true if the error is a kind mismatch.
// Uses errors.As to handle wrapped errors.
func IsKindMismatch(err error) bool {
	var ke *KindError
	return errors.As(err, &ke)
}

// IsChildOf reports whether child is the same as parent or reachable from
// it through the parent chain. Only named specs participate in the
// hierarchy; a derived spec is a child of nothing but itself.
func IsChildOf(child, parent QuantitySpec) bool {
	if Equal(child, parent) {
		return true
	}
	c, ok := child.(*Spec)
	if !ok {
		return false
	}
	p, ok := parent.(*Spec)
	if !ok {
		return false
	}
	for cur := c.parent; cur != nil; cur = cur.parent {
		if cur == p {
			return true
		}
	}
	return false
}

// ImplicitlyConvertible reports whether from may silently stand in for to.
// True only for the same kind or a child used as its ancestor; never the
// other direction.
func ImplicitlyConvertible(from, to QuantitySpec) bool {
	return IsChildOf(from, to)
}

// ExplicitlyConvertible reports whether a deliberate cast between the two
// kinds is meaningful: either direction along one lineage.
func ExplicitlyConvertible(from, to QuantitySpec) bool {
	return IsChildOf(from, to) || IsChildOf(to, from)
}

// Common returns the nearest kind both a and b convert to: a itself, b
// itself, or the first ancestor of a that b descends from. Unrelated
// lineages (length vs mass, energy vs torque) have no common kind and
// fail with a KindError.
func Common(a, b QuantitySpec) (QuantitySpec, error) {
	if Equal(a, b) {
		return a, nil
	}
	if IsChildOf(a, b) {
		return b, nil
	}
	if IsChildOf(b, a) {
		return a, nil
	}
	if as, ok := a.(*Spec); ok {
		for cur := as.parent; cur != nil; cur = cur.parent {
			if IsChildOf(b, cur) {
				return cur, nil
			}
		}
	}
	return nil, &KindError{
		From:    a.Name(),
		To:      b.Name(),
		Message: "quantity kinds share no common ancestor",
	}
}
