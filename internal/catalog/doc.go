// Package catalog maintains the registry of declared specs, units and
// origins, and compiles CUE declaration files into it.
//
// The built-in catalog carries the ISQ spec hierarchy and the SI, CGS,
// imperial and natural unit systems. CUE files extend a base catalog:
// declarations may chain off anything the base already knows, so a site
// catalog can hang a furlong off the built-in yard in three lines.
//
// DECLARATION SHAPE
//
//	spec: width: {parent: "length"}
//	unit: furlong: {symbol: "fur", base: "yd", scale: {num: 220, den: 1}}
//	origin: ice_point: {base: "absolute zero", offset: {value: 273.15, unit: "K"}}
//
// Compilation runs in two error modes: fail-fast for interactive use and
// collect-all for editor diagnostics.
package catalog
