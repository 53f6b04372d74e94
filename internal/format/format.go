// Package format renders quantities and points for people: locale-aware
// digit grouping and decimal marks, configurable precision, composed
// unit symbols.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/measura/measura/internal/point"
	"github.com/measura/measura/internal/quantity"
)

// DefaultMaxFractionDigits bounds the fraction shown when no explicit
// precision is set.
const DefaultMaxFractionDigits = 9

// Options control quantity rendering. The zero value renders in English
// with up to nine fraction digits and the unit symbol attached.
type Options struct {
	// Precision fixes the number of fraction digits when positive; zero
	// or negative means as many as needed up to DefaultMaxFractionDigits.
	Precision int
	// Locale selects digit grouping and decimal marks.
	Locale language.Tag
	// HideUnit drops the unit symbol.
	HideUnit bool
	// Separator sits between number and symbol; defaults to a space.
	Separator string
}

// DefaultOptions is what the CLI renders with.
func DefaultOptions() Options {
	return Options{Locale: language.English}
}

func (o Options) printer() *message.Printer {
	tag := o.Locale
	if tag == (language.Tag{}) {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func (o Options) decimal(v interface{}) number.Formatter {
	if o.Precision > 0 {
		return number.Decimal(v,
			number.MinFractionDigits(o.Precision),
			number.MaxFractionDigits(o.Precision))
	}
	return number.Decimal(v, number.MaxFractionDigits(DefaultMaxFractionDigits))
}

func (o Options) attach(num, symbol string) string {
	if o.HideUnit || symbol == "" {
		return num
	}
	sep := o.Separator
	if sep == "" {
		sep = " "
	}
	return num + sep + symbol
}

// Quantity renders a quantity under the options.
func Quantity[T quantity.Number](q quantity.Quantity[T], opts Options) string {
	num := opts.printer().Sprint(opts.decimal(q.Value()))
	return opts.attach(num, q.Ref().Symbol())
}

// Point renders a point as its displacement followed by the origin name.
func Point[T quantity.Number](p point.Point[T], opts Options) string {
	return Quantity(p.Displacement(), opts) + " from " + p.Origin().Name()
}
