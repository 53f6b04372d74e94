package catalog

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/measura/measura/internal/point"
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/unit"
)

// Mode controls how errors are handled during compilation.
type Mode int

const (
	// FailFast stops on the first error encountered.
	FailFast Mode = iota
	// CollectAll gathers every error before returning.
	CollectAll
)

// specDecl is a parsed spec declaration before resolution.
type specDecl struct {
	name   string
	parent string // empty for a root
	pos    cue.Value
}

// unitDecl is a parsed unit declaration before resolution. Exactly one
// of kind (named unit) or base (scaled unit) is set.
type unitDecl struct {
	name      string
	symbol    string
	kind      string
	magnitude ratio.Ratio
	base      string
	scale     ratio.Ratio
	pos       cue.Value
}

// originDecl is a parsed origin declaration before resolution.
type originDecl struct {
	name        string
	spec        string // absolute origins
	base        string // relative origins
	offsetValue float64
	offsetUnit  string
	pos         cue.Value
}

// Compile extends base with the declarations in a CUE value. The base is
// not mutated. In CollectAll mode every diagnostic is gathered; the
// returned catalog is only usable when the error slice is empty.
func Compile(v cue.Value, base *Catalog, mode Mode) (*Catalog, []error) {
	if err := v.Err(); err != nil {
		return nil, []error{&CompileError{Field: "catalog", Message: err.Error(), Pos: v.Pos()}}
	}

	cat := base.clone()
	var errs []error
	fail := func(err error) bool {
		errs = append(errs, err)
		return mode == FailFast
	}

	specs, specErrs := parseSpecs(v)
	for _, err := range specErrs {
		if fail(err) {
			return nil, errs
		}
	}
	units, unitErrs := parseUnits(v)
	for _, err := range unitErrs {
		if fail(err) {
			return nil, errs
		}
	}
	origins, originErrs := parseOrigins(v)
	for _, err := range originErrs {
		if fail(err) {
			return nil, errs
		}
	}

	for _, err := range resolveSpecs(cat, specs) {
		if fail(err) {
			return nil, errs
		}
	}
	for _, err := range resolveUnits(cat, units) {
		if fail(err) {
			return nil, errs
		}
	}
	for _, err := range resolveOrigins(cat, origins) {
		if fail(err) {
			return nil, errs
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cat, nil
}

func parseSpecs(v cue.Value) ([]specDecl, []error) {
	root := v.LookupPath(cue.ParsePath("spec"))
	if !root.Exists() {
		return nil, nil
	}
	var decls []specDecl
	var errs []error
	iter, err := root.Fields()
	if err != nil {
		return nil, []error{&CompileError{Field: "spec", Message: err.Error(), Pos: root.Pos()}}
	}
	for iter.Next() {
		decl := specDecl{name: iter.Label(), pos: iter.Value()}
		parentVal := iter.Value().LookupPath(cue.ParsePath("parent"))
		if parentVal.Exists() {
			parent, err := parentVal.String()
			if err != nil {
				errs = append(errs, &CompileError{
					Field:   "spec." + decl.name + ".parent",
					Message: err.Error(),
					Pos:     parentVal.Pos(),
				})
				continue
			}
			decl.parent = parent
		}
		decls = append(decls, decl)
	}
	return decls, errs
}

func parseUnits(v cue.Value) ([]unitDecl, []error) {
	root := v.LookupPath(cue.ParsePath("unit"))
	if !root.Exists() {
		return nil, nil
	}
	var decls []unitDecl
	var errs []error
	iter, err := root.Fields()
	if err != nil {
		return nil, []error{&CompileError{Field: "unit", Message: err.Error(), Pos: root.Pos()}}
	}
	for iter.Next() {
		decl, declErrs := parseUnit(iter.Label(), iter.Value())
		if len(declErrs) > 0 {
			errs = append(errs, declErrs...)
			continue
		}
		decls = append(decls, decl)
	}
	return decls, errs
}

func parseUnit(name string, v cue.Value) (unitDecl, []error) {
	field := "unit." + name
	decl := unitDecl{name: name, magnitude: ratio.One, scale: ratio.One, pos: v}
	var errs []error

	symVal := v.LookupPath(cue.ParsePath("symbol"))
	if !symVal.Exists() {
		return decl, []error{&CompileError{Field: field, Message: "symbol is required", Pos: v.Pos()}}
	}
	symbol, err := symVal.String()
	if err != nil {
		return decl, []error{&CompileError{Field: field + ".symbol", Message: err.Error(), Pos: symVal.Pos()}}
	}
	decl.symbol = symbol

	kindVal := v.LookupPath(cue.ParsePath("kind"))
	baseVal := v.LookupPath(cue.ParsePath("base"))
	switch {
	case kindVal.Exists() && baseVal.Exists():
		return decl, []error{&CompileError{Field: field, Message: "kind and base are mutually exclusive", Pos: v.Pos()}}
	case kindVal.Exists():
		kind, err := kindVal.String()
		if err != nil {
			return decl, []error{&CompileError{Field: field + ".kind", Message: err.Error(), Pos: kindVal.Pos()}}
		}
		decl.kind = kind
		if magVal := v.LookupPath(cue.ParsePath("magnitude")); magVal.Exists() {
			decl.magnitude, errs = parseRatio(field+".magnitude", magVal)
		}
	case baseVal.Exists():
		baseSym, err := baseVal.String()
		if err != nil {
			return decl, []error{&CompileError{Field: field + ".base", Message: err.Error(), Pos: baseVal.Pos()}}
		}
		decl.base = baseSym
		if scaleVal := v.LookupPath(cue.ParsePath("scale")); scaleVal.Exists() {
			decl.scale, errs = parseRatio(field+".scale", scaleVal)
		}
	default:
		return decl, []error{&CompileError{Field: field, Message: "one of kind or base is required", Pos: v.Pos()}}
	}
	return decl, errs
}

func parseRatio(field string, v cue.Value) (ratio.Ratio, []error) {
	num, err := v.LookupPath(cue.ParsePath("num")).Int64()
	if err != nil {
		return ratio.One, []error{&CompileError{Field: field + ".num", Message: err.Error(), Pos: v.Pos()}}
	}
	den := int64(1)
	if denVal := v.LookupPath(cue.ParsePath("den")); denVal.Exists() {
		den, err = denVal.Int64()
		if err != nil {
			return ratio.One, []error{&CompileError{Field: field + ".den", Message: err.Error(), Pos: v.Pos()}}
		}
	}
	r, err := ratio.New(num, den)
	if err != nil {
		return ratio.One, []error{&CompileError{Field: field, Message: err.Error(), Pos: v.Pos()}}
	}
	return r, nil
}

func parseOrigins(v cue.Value) ([]originDecl, []error) {
	root := v.LookupPath(cue.ParsePath("origin"))
	if !root.Exists() {
		return nil, nil
	}
	var decls []originDecl
	var errs []error
	iter, err := root.Fields()
	if err != nil {
		return nil, []error{&CompileError{Field: "origin", Message: err.Error(), Pos: root.Pos()}}
	}
	for iter.Next() {
		name := iter.Label()
		field := "origin." + name
		decl := originDecl{name: name, pos: iter.Value()}

		specVal := iter.Value().LookupPath(cue.ParsePath("spec"))
		baseVal := iter.Value().LookupPath(cue.ParsePath("base"))
		switch {
		case specVal.Exists() && baseVal.Exists():
			errs = append(errs, &CompileError{Field: field, Message: "spec and base are mutually exclusive", Pos: iter.Value().Pos()})
			continue
		case specVal.Exists():
			spec, err := specVal.String()
			if err != nil {
				errs = append(errs, &CompileError{Field: field + ".spec", Message: err.Error(), Pos: specVal.Pos()})
				continue
			}
			decl.spec = spec
		case baseVal.Exists():
			base, err := baseVal.String()
			if err != nil {
				errs = append(errs, &CompileError{Field: field + ".base", Message: err.Error(), Pos: baseVal.Pos()})
				continue
			}
			decl.base = base
			offVal := iter.Value().LookupPath(cue.ParsePath("offset"))
			if !offVal.Exists() {
				errs = append(errs, &CompileError{Field: field, Message: "relative origin needs an offset", Pos: iter.Value().Pos()})
				continue
			}
			value, err := offVal.LookupPath(cue.ParsePath("value")).Float64()
			if err != nil {
				errs = append(errs, &CompileError{Field: field + ".offset.value", Message: err.Error(), Pos: offVal.Pos()})
				continue
			}
			unitSym, err := offVal.LookupPath(cue.ParsePath("unit")).String()
			if err != nil {
				errs = append(errs, &CompileError{Field: field + ".offset.unit", Message: err.Error(), Pos: offVal.Pos()})
				continue
			}
			decl.offsetValue = value
			decl.offsetUnit = unitSym
		default:
			errs = append(errs, &CompileError{Field: field, Message: "one of spec or base is required", Pos: iter.Value().Pos()})
			continue
		}
		decls = append(decls, decl)
	}
	return decls, errs
}

// resolveSpecs registers spec declarations, re-walking the pending list
// until no more parents resolve. Anything left points at an unknown or
// cyclic parent.
func resolveSpecs(cat *Catalog, decls []specDecl) []error {
	pending := decls
	for {
		var next []specDecl
		progressed := false
		for _, d := range pending {
			if d.parent == "" {
				if err := cat.RegisterSpec(d.name, qspec.NewRoot(d.name)); err != nil {
					return []error{compileErr(d.pos, "spec."+d.name, err)}
				}
				progressed = true
				continue
			}
			parent, err := cat.Spec(d.parent)
			if err != nil {
				next = append(next, d)
				continue
			}
			named, ok := parent.(*qspec.Spec)
			if !ok {
				return []error{&CompileError{
					Field:   "spec." + d.name,
					Message: fmt.Sprintf("parent %q is a derived expression, not a named spec", d.parent),
					Pos:     d.pos.Pos(),
				}}
			}
			if err := cat.RegisterSpec(d.name, qspec.NewChild(d.name, named)); err != nil {
				return []error{compileErr(d.pos, "spec."+d.name, err)}
			}
			progressed = true
		}
		if len(next) == 0 {
			return nil
		}
		if !progressed {
			errs := make([]error, 0, len(next))
			for _, d := range next {
				errs = append(errs, &CompileError{
					Field:   "spec." + d.name,
					Message: fmt.Sprintf("parent %q is not declared", d.parent),
					Pos:     d.pos.Pos(),
				})
			}
			return errs
		}
		pending = next
	}
}

// resolveUnits mirrors resolveSpecs for unit base chains.
func resolveUnits(cat *Catalog, decls []unitDecl) []error {
	pending := decls
	for {
		var next []unitDecl
		progressed := false
		for _, d := range pending {
			if d.kind != "" {
				spec, err := cat.Spec(d.kind)
				if err != nil {
					return []error{&CompileError{
						Field:   "unit." + d.name,
						Message: fmt.Sprintf("kind %q is not declared", d.kind),
						Pos:     d.pos.Pos(),
					}}
				}
				named, ok := spec.(*qspec.Spec)
				if !ok {
					return []error{&CompileError{
						Field:   "unit." + d.name,
						Message: fmt.Sprintf("kind %q is a derived expression; derive the unit instead", d.kind),
						Pos:     d.pos.Pos(),
					}}
				}
				u := unit.NewNamedMag(d.symbol, qspec.KindOf(named), d.magnitude)
				if err := cat.RegisterUnit(u.Symbol(), u); err != nil {
					return []error{compileErr(d.pos, "unit."+d.name, err)}
				}
				progressed = true
				continue
			}
			base, err := cat.Unit(d.base)
			if err != nil {
				next = append(next, d)
				continue
			}
			u := unit.NewScaled(d.symbol, base, d.scale)
			if err := cat.RegisterUnit(u.Symbol(), u); err != nil {
				return []error{compileErr(d.pos, "unit."+d.name, err)}
			}
			progressed = true
		}
		if len(next) == 0 {
			return nil
		}
		if !progressed {
			errs := make([]error, 0, len(next))
			for _, d := range next {
				errs = append(errs, &CompileError{
					Field:   "unit." + d.name,
					Message: fmt.Sprintf("base unit %q is not declared", d.base),
					Pos:     d.pos.Pos(),
				})
			}
			return errs
		}
		pending = next
	}
}

func resolveOrigins(cat *Catalog, decls []originDecl) []error {
	pending := decls
	for {
		var next []originDecl
		progressed := false
		for _, d := range pending {
			if d.spec != "" {
				spec, err := cat.Spec(d.spec)
				if err != nil {
					return []error{&CompileError{
						Field:   "origin." + d.name,
						Message: fmt.Sprintf("spec %q is not declared", d.spec),
						Pos:     d.pos.Pos(),
					}}
				}
				if err := cat.RegisterOrigin(d.name, point.NewAbsolute(d.name, spec)); err != nil {
					return []error{compileErr(d.pos, "origin."+d.name, err)}
				}
				progressed = true
				continue
			}
			base, err := cat.Origin(d.base)
			if err != nil {
				next = append(next, d)
				continue
			}
			ref, err := cat.Reference("", d.offsetUnit)
			if err != nil {
				return []error{&CompileError{
					Field:   "origin." + d.name,
					Message: fmt.Sprintf("offset unit %q is not declared or has no kind", d.offsetUnit),
					Pos:     d.pos.Pos(),
				}}
			}
			off := quantity.New(d.offsetValue, ref)
			if err := cat.RegisterOrigin(d.name, point.NewRelative(d.name, base, off)); err != nil {
				return []error{compileErr(d.pos, "origin."+d.name, err)}
			}
			progressed = true
		}
		if len(next) == 0 {
			return nil
		}
		if !progressed {
			errs := make([]error, 0, len(next))
			for _, d := range next {
				errs = append(errs, &CompileError{
					Field:   "origin." + d.name,
					Message: fmt.Sprintf("base origin %q is not declared", d.base),
					Pos:     d.pos.Pos(),
				})
			}
			return errs
		}
		pending = next
	}
}

func compileErr(v cue.Value, field string, err error) error {
	return &CompileError{Field: field, Message: err.Error(), Pos: v.Pos()}
}
