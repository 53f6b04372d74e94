package si

import (
	"github.com/measura/measura/internal/point"
	"github.com/measura/measura/internal/quantity"
	"github.com/measura/measura/internal/reference"
	"github.com/measura/measura/internal/systems/isq"
)

// TemperatureInKelvin is the reference thermodynamic temperatures are
// measured against.
var TemperatureInKelvin = reference.New(isq.Temperature, Kelvin)

// Temperature scale origins. The Celsius and Fahrenheit zeros hang
// directly off absolute zero, so either scale converts to kelvin in one
// step. Celsius and Fahrenheit are siblings and do not convert to each
// other through the generic origin machinery; use the scale helpers.
var (
	AbsoluteZero   = point.NewAbsolute("absolute zero", isq.Temperature)
	IcePoint       = point.NewRelative("ice point", AbsoluteZero, quantity.New(273.15, TemperatureInKelvin))
	FahrenheitZero = point.NewRelative("fahrenheit zero", AbsoluteZero, quantity.New(255.37222222222222, TemperatureInKelvin))
)

// Celsius anchors a Celsius reading as a temperature point.
func Celsius(v float64) point.Point[float64] {
	q := quantity.New(v, reference.New(isq.Temperature, DegreeCelsius))
	return point.MustNew(q, IcePoint)
}

// Fahrenheit anchors a Fahrenheit reading as a temperature point.
func Fahrenheit(v float64) point.Point[float64] {
	q := quantity.New(v, reference.New(isq.Temperature, DegreeFahrenheit))
	return point.MustNew(q, FahrenheitZero)
}

// FromKelvin anchors an absolute temperature in kelvin.
func FromKelvin(v float64) point.Point[float64] {
	return point.MustNew(quantity.New(v, TemperatureInKelvin), AbsoluteZero)
}

// InKelvin converts any temperature point on a scale related to absolute
// zero into kelvin above absolute zero.
func InKelvin(p point.Point[float64]) (float64, error) {
	abs, err := point.Convert(p, AbsoluteZero)
	if err != nil {
		return 0, err
	}
	k, err := abs.In(Kelvin)
	if err != nil {
		return 0, err
	}
	return k.Displacement().Value(), nil
}

// InCelsius converts a temperature point into a Celsius reading.
func InCelsius(p point.Point[float64]) (float64, error) {
	k, err := InKelvin(p)
	if err != nil {
		return 0, err
	}
	return k - 273.15, nil
}

// InFahrenheit converts a temperature point into a Fahrenheit reading.
func InFahrenheit(p point.Point[float64]) (float64, error) {
	k, err := InKelvin(p)
	if err != nil {
		return 0, err
	}
	return (k-273.15)*9/5 + 32, nil
}
