package catalog

import (
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measura/measura/internal/point"
	"github.com/measura/measura/internal/qspec"
	"github.com/measura/measura/internal/ratio"
	"github.com/measura/measura/internal/systems/isq"
	"github.com/measura/measura/internal/unit"
)

func compileString(t *testing.T, src string, mode Mode) (*Catalog, []error) {
	t.Helper()
	v := cuecontext.New().CompileString(src)
	require.NoError(t, v.Err())
	return Compile(v, Builtin(), mode)
}

func TestCompileScaledChain(t *testing.T) {
	cat, errs := compileString(t, `
unit: {
	furlong: {symbol: "fur", base: "yd", scale: {num: 220}}
	chain:   {symbol: "ch", base: "fur", scale: {num: 1, den: 10}}
}
`, FailFast)
	require.Empty(t, errs)

	fur, err := cat.Unit("fur")
	require.NoError(t, err)
	mag, err := fur.Magnitude()
	require.NoError(t, err)
	// 220 yd = 201.168 m.
	assert.True(t, mag.Equal(ratio.MustNew(25146, 125)), "got %s", mag)

	ch, err := cat.Unit("ch")
	require.NoError(t, err)
	mag, err = ch.Magnitude()
	require.NoError(t, err)
	assert.True(t, mag.Equal(ratio.MustNew(12573, 625)), "got %s", mag)
}

func TestCompileOutOfOrderDeclarations(t *testing.T) {
	// chain refers to furlong before it is declared; resolution re-walks.
	cat, errs := compileString(t, `
unit: {
	chain:   {symbol: "ch", base: "fur", scale: {num: 1, den: 10}}
	furlong: {symbol: "fur", base: "yd", scale: {num: 220}}
}
`, FailFast)
	require.Empty(t, errs)
	_, err := cat.Unit("ch")
	assert.NoError(t, err)
}

func TestCompileNamedUnit(t *testing.T) {
	cat, errs := compileString(t, `
unit: smoot: {symbol: "smoot", kind: "length", magnitude: {num: 17018, den: 10000}}
`, FailFast)
	require.Empty(t, errs)

	ref, err := cat.Reference("", "smoot")
	require.NoError(t, err)
	assert.Equal(t, isq.Length, ref.Spec())
}

func TestCompileSpecHierarchy(t *testing.T) {
	cat, errs := compileString(t, `
spec: {
	"cable length": {parent: "length"}
	"drop length":  {parent: "cable length"}
}
`, FailFast)
	require.Empty(t, errs)

	cable, err := cat.Spec("cable length")
	require.NoError(t, err)
	assert.True(t, qspec.ImplicitlyConvertible(cable, isq.Length))

	drop, err := cat.Spec("drop length")
	require.NoError(t, err)
	assert.True(t, qspec.ImplicitlyConvertible(drop, cable))
}

func TestCompileOrigins(t *testing.T) {
	cat, errs := compileString(t, `
origin: {
	"platform datum": {spec: "length"}
	"deck level":     {base: "platform datum", offset: {value: 12.5, unit: "m"}}
}
`, FailFast)
	require.Empty(t, errs)

	datum, err := cat.Origin("platform datum")
	require.NoError(t, err)
	deck, err := cat.Origin("deck level")
	require.NoError(t, err)

	ref, err := cat.Reference("", "m")
	require.NoError(t, err)
	off, err := point.OriginOffset(deck, datum, ref)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, off.Value(), 1e-12)
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing symbol",
			src:  `unit: x: {kind: "length"}`,
			want: "symbol is required",
		},
		{
			name: "kind and base together",
			src:  `unit: x: {symbol: "x", kind: "length", base: "m"}`,
			want: "mutually exclusive",
		},
		{
			name: "neither kind nor base",
			src:  `unit: x: {symbol: "x"}`,
			want: "one of kind or base",
		},
		{
			name: "unknown base",
			src:  `unit: x: {symbol: "x", base: "nosuch"}`,
			want: "not declared",
		},
		{
			name: "unknown parent",
			src:  `spec: x: {parent: "nosuch"}`,
			want: "not declared",
		},
		{
			name: "duplicate of builtin",
			src:  `unit: x: {symbol: "m", kind: "length"}`,
			want: "already declared",
		},
		{
			name: "zero denominator",
			src:  `unit: x: {symbol: "x", base: "m", scale: {num: 1, den: 0}}`,
			want: "ZERO_DENOMINATOR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := compileString(t, tt.src, FailFast)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestCompileCollectAll(t *testing.T) {
	_, errs := compileString(t, `
unit: {
	a: {symbol: "a"}
	b: {symbol: "b"}
}
`, CollectAll)
	assert.Len(t, errs, 2)
}

func TestLoadDir(t *testing.T) {
	res, errs := LoadDir("testdata/site", Builtin(), FailFast)
	require.Empty(t, errs)
	assert.Equal(t, 1, res.FileCount)

	q, err := res.Catalog.Quantity(10, "fur")
	require.NoError(t, err)
	km, err := q.In(mustUnit(t, res.Catalog, "km"))
	require.NoError(t, err)
	assert.InDelta(t, 2.01168, km.Value(), 1e-9)

	_, err = res.Catalog.Spec("cable length")
	assert.NoError(t, err)
}

func TestLoadDirBroken(t *testing.T) {
	_, errs := LoadDir("testdata/broken", Builtin(), CollectAll)
	assert.NotEmpty(t, errs)
}

func TestLoadDirMissing(t *testing.T) {
	_, errs := LoadDir("testdata/nosuch", Builtin(), FailFast)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "CATALOG_DIR_NOT_FOUND")
}

func mustUnit(t *testing.T, c *Catalog, symbol string) unit.Unit {
	t.Helper()
	got, err := c.Unit(symbol)
	require.NoError(t, err)
	return got
}
