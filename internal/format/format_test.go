package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/systems/si"
	"github.com/measura/measura/internal/unit"
)

func lengthIn(u unit.Unit) reference.Reference {
	return reference.New(isq.Length, u)
}

func TestQuantityRendering(t *testing.T) {
	tests := []struct {
		name string
		q    quantity.Quantity[float64]
		opts Options
		want string
	}{
		{
			name: "default english",
			q:    quantity.New(2.5, lengthIn(si.Kilometre)),
			opts: DefaultOptions(),
			want: "2.5 km",
		},
		{
			name: "grouping",
			q:    quantity.New(1234567.891, lengthIn(si.Metre)),
			opts: DefaultOptions(),
			want: "1,234,567.891 m",
		},
		{
			name: "german locale",
			q:    quantity.New(1234567.891, lengthIn(si.Metre)),
			opts: Options{Locale: language.German},
			want: "1.234.567,891 m",
		},
		{
			name: "fixed precision pads",
			q:    quantity.New(1234.5, lengthIn(si.Metre)),
			opts: Options{Locale: language.English, Precision: 2},
			want: "1,234.50 m",
		},
		{
			name: "fixed precision rounds",
			q:    quantity.New(3.14159, lengthIn(si.Metre)),
			opts: Options{Locale: language.English, Precision: 3},
			want: "3.142 m",
		},
		{
			name: "hidden unit",
			q:    quantity.New(42.0, lengthIn(si.Metre)),
			opts: Options{Locale: language.English, HideUnit: true},
			want: "42",
		},
		{
			name: "custom separator",
			q:    quantity.New(100.0, lengthIn(si.Metre)),
			opts: Options{Locale: language.English, Separator: " "},
			want: "100 m",
		},
		{
			name: "zero options fall back to english",
			q:    quantity.New(1000.5, lengthIn(si.Metre)),
			opts: Options{},
			want: "1,000.5 m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantity(tt.q, tt.opts))
		})
	}
}

func TestQuantityInteger(t *testing.T) {
	q := quantity.New[int64](1500, lengthIn(si.Metre))
	assert.Equal(t, "1,500 m", Quantity(q, DefaultOptions()))
}

func TestQuantityDerivedSymbol(t *testing.T) {
	speed := reference.New(isq.Speed, unit.Div(si.Metre, si.Second))
	q := quantity.New(9.81, speed)
	assert.Equal(t, "9.81 m/s", Quantity(q, DefaultOptions()))
}

func TestPointRendering(t *testing.T) {
	p := si.Celsius(21.5)
	got := Point(p, DefaultOptions())
	require.Equal(t, "21.5 °C from ice point", got)
}
