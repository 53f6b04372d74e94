package unit

import "github.com/measura/measura/internal/ratio"

// ConversionFactor returns the exact rational factor that converts a value
// expressed in from into to: value_to = value_from × factor. The factor is
// from's magnitude divided by to's magnitude.
func ConversionFactor(from, to Unit) (ratio.Ratio, error) {
	mf, err := from.Magnitude()
	if err != nil {
		return ratio.Ratio{}, err
	}
	mt, err := to.Magnitude()
	if err != nil {
		return ratio.Ratio{}, err
	}
	return mf.Div(mt)
}

// ConversionFactorFloat returns the conversion factor as a float64. Unlike
// ConversionFactor it cannot overflow for extreme magnitude pairs (ym to
// Ym), at the cost of exactness.
func ConversionFactorFloat(from, to Unit) (float64, error) {
	mf, err := from.Magnitude()
	if err != nil {
		return 0, err
	}
	mt, err := to.Magnitude()
	if err != nil {
		return 0, err
	}
	return mf.Float64() / mt.Float64(), nil
}
