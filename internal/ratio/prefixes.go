package ratio

// Metric prefixes as exact ratios.
//
// int64 represents powers of ten up to 10^18, so the four largest and four
// smallest prefixes are clamped to 10^±18. Catalogs that need the full
// quetta/quecto range would need a wider integer representation.
var (
	Quetta = FromInt(pow10(18)) // clamped from 10^30
	Ronna  = FromInt(pow10(18)) // clamped from 10^27
	Yotta  = FromInt(pow10(18)) // clamped from 10^24
	Zetta  = FromInt(pow10(18)) // clamped from 10^21
	Exa    = FromInt(pow10(18))
	Peta   = FromInt(pow10(15))
	Tera   = FromInt(pow10(12))
	Giga   = FromInt(pow10(9))
	Mega   = FromInt(pow10(6))
	Kilo   = FromInt(pow10(3))
	Hecto  = FromInt(pow10(2))
	Deca   = FromInt(pow10(1))

	Deci   = MustNew(1, pow10(1))
	Centi  = MustNew(1, pow10(2))
	Milli  = MustNew(1, pow10(3))
	Micro  = MustNew(1, pow10(6))
	Nano   = MustNew(1, pow10(9))
	Pico   = MustNew(1, pow10(12))
	Femto  = MustNew(1, pow10(15))
	Atto   = MustNew(1, pow10(18))
	Zepto  = MustNew(1, pow10(18)) // clamped from 10^-21
	Yocto  = MustNew(1, pow10(18)) // clamped from 10^-24
	Ronto  = MustNew(1, pow10(18)) // clamped from 10^-27
	Quecto = MustNew(1, pow10(18)) // clamped from 10^-30
)

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
