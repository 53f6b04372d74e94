package qspec

// Character is the mathematical character of a physical quantity.
type Character uint8

const (
	// Scalar quantities carry magnitude only (mass, temperature).
	Scalar Character = iota
	// Vector quantities carry magnitude and direction (velocity, force).
	Vector
	// Tensor quantities are multi-dimensional (stress tensor).
	Tensor
)

// String returns the character name.
func (c Character) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Tensor:
		return "tensor"
	default:
		return "unknown"
	}
}

// QuantitySpec is a sealed interface over the two spec shapes: named Spec
// nodes and Derived expression specs. Only this package implements it.
type QuantitySpec interface {
	// Character returns the mathematical character of the spec.
	Character() Character

	// Name returns a human-readable identifier for diagnostics.
	Name() string

	quantitySpec() // sealed
}

// Spec is a named quantity kind, optionally derived from a parent kind.
// A nil parent marks a root of the hierarchy.
//
// Specs are compared by identity: each catalog declaration produces exactly
// one *Spec singleton.
type Spec struct {
	name      string
	parent    *Spec
	character Character
}

func (*Spec) quantitySpec() {}

// New declares a named quantity kind. parent may be nil for a root kind.
// This is the declaration primitive unit-system catalogs build on.
func New(name string, parent *Spec, character Character) *Spec {
	return &Spec{name: name, parent: parent, character: character}
}

// NewRoot declares a root scalar kind.
func NewRoot(name string) *Spec {
	return New(name, nil, Scalar)
}

// NewChild declares a scalar kind under parent.
func NewChild(name string, parent *Spec) *Spec {
	return New(name, parent, Scalar)
}

// Name returns the declared name.
func (s *Spec) Name() string { return s.name }

// Parent returns the parent kind, or nil for a root.
func (s *Spec) Parent() *Spec { return s.parent }

// Character returns the declared character.
func (s *Spec) Character() Character { return s.character }

// IsRoot reports whether the spec has no parent.
func (s *Spec) IsRoot() bool { return s.parent == nil }

// Kind wraps a spec for unit declarations: a unit declared with
// KindOf(length) measures any kind of length, not one specific subtype.
// Different kinds with the same dimension stay non-interchangeable.
type Kind struct {
	spec *Spec
}

// KindOf wraps a named spec as a unit's quantity kind.
func KindOf(s *Spec) Kind {
	return Kind{spec: s}
}

// Spec returns the wrapped spec.
func (k Kind) Spec() *Spec { return k.spec }

// Character returns the wrapped spec's character.
func (k Kind) Character() Character { return k.spec.Character() }
