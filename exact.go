package lexical

import (
	"math"
	"math/bits"

	"github.com/xlexical/lexical/internal/tables"
)

// pow2Exponent returns log2(radix) for the five power-of-two radices this
// parser recognises, and 0 for every other radix.
func pow2Exponent(radix int) int32 {
	switch radix {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	default:
		return 0
	}
}

// isHalfway reports whether mantissa's bit pattern is exactly the halfway
// point between two representable values of a format with the given
// mantissa size: the hidden bit sits mantissaSize+1 positions above the
// lowest set bit, with nothing but zeros in between but for that one tie bit.
func isHalfway(mantissa uint64, mantissaSize int32) bool {
	if mantissa == 0 {
		return false
	}
	leading := int32(64 - bits.LeadingZeros64(mantissa))
	trailing := int32(bits.TrailingZeros64(mantissa))
	return leading-trailing == mantissaSize+2
}

// pow2ToExact64 implements C5's power-of-two branch for float64. Multiplying
// by a power of two only ever changes the binary exponent, so converting the
// mantissa straight to float64 (itself a correctly-rounded conversion) and
// then scaling is exact, except right at the edge of the subnormal range,
// where a single ldexp could round twice; the two-step multiplication avoids
// that.
func pow2ToExact64(mantissa uint64, radix int, exponent int32) float64 {
	pow2Exp := pow2Exponent(radix)
	minExp, maxExp := tables.ExponentLimit64(radix)
	underflowExp := minExp - 65/pow2Exp

	switch {
	case exponent > maxExp:
		return math.Inf(1)
	case exponent < underflowExp:
		return 0
	case exponent < minExp:
		remainder := exponent - minExp
		f := math.Ldexp(float64(mantissa), int(pow2Exp*remainder))
		return math.Ldexp(f, int(pow2Exp*minExp))
	default:
		return math.Ldexp(float64(mantissa), int(pow2Exp*exponent))
	}
}

func pow2ToExact32(mantissa uint64, radix int, exponent int32) float32 {
	pow2Exp := pow2Exponent(radix)
	minExp, maxExp := tables.ExponentLimit32(radix)
	underflowExp := minExp - 65/pow2Exp

	switch {
	case exponent > maxExp:
		return float32(math.Inf(1))
	case exponent < underflowExp:
		return 0
	case exponent < minExp:
		remainder := exponent - minExp
		f := math.Ldexp(float64(mantissa), int(pow2Exp*remainder))
		return float32(math.Ldexp(f, int(pow2Exp*minExp)))
	default:
		return float32(math.Ldexp(float64(mantissa), int(pow2Exp*exponent)))
	}
}

// exactRadixPow64 computes radix**n as a float64 by repeated multiplication.
// Every intermediate product is itself an exact integer no larger than
// radix**n, so as long as the caller only uses this within exponent_limit,
// every step stays exactly representable.
func exactRadixPow64(radix int, n int32) float64 {
	result := 1.0
	base := float64(radix)
	for i := int32(0); i < n; i++ {
		result *= base
	}
	return result
}

func exactRadixPow32(radix int, n int32) float32 {
	result := float32(1)
	base := float32(radix)
	for i := int32(0); i < n; i++ {
		result *= base
	}
	return result
}

// toExact64 implements C5's non-power-of-two branch for float64: valid only
// when the mantissa fits the significand with no truncation and the
// exponent lies within the radix's exact table.
func toExact64(mantissa uint64, radix int, exponent int32) (float64, bool) {
	if mantissa>>uint(tables.Float64.MantissaSize) != 0 {
		return 0, false
	}
	minExp, maxExp := tables.ExponentLimit64(radix)
	f := float64(mantissa)
	switch {
	case exponent == 0:
		return f, true
	case exponent >= minExp && exponent <= maxExp:
		if exponent > 0 {
			return f * exactRadixPow64(radix, exponent), true
		}
		return f / exactRadixPow64(radix, -exponent), true
	default:
		return 0, false
	}
}

func toExact32(mantissa uint64, radix int, exponent int32) (float32, bool) {
	if mantissa>>uint(tables.Float32.MantissaSize) != 0 {
		return 0, false
	}
	minExp, maxExp := tables.ExponentLimit32(radix)
	f := float32(mantissa)
	switch {
	case exponent == 0:
		return f, true
	case exponent >= minExp && exponent <= maxExp:
		if exponent > 0 {
			return f * exactRadixPow32(radix, exponent), true
		}
		return f / exactRadixPow32(radix, -exponent), true
	default:
		return 0, false
	}
}
