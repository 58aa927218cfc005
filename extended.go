package lexical

import (
	"math/bits"

	"github.com/xlexical/lexical/internal/tables"
)

// extFloat64 is the 80-bit extended float: frac * 2**exp, normalised so the
// top bit of frac is set whenever frac is non-zero.
type extFloat64 struct {
	frac uint64
	exp  int32
}

// normalize shifts frac left until its top bit is set (or frac is zero) and
// returns the shift count, which the caller must fold into its error
// counter: each bit of left shift doubles the weight of any accumulated
// rounding error relative to the renormalised frac.
func (fp *extFloat64) normalize() uint32 {
	if fp.frac == 0 {
		return 0
	}
	shift := uint32(bits.LeadingZeros64(fp.frac))
	fp.frac <<= shift
	fp.exp -= int32(shift)
	return shift
}

// imul multiplies fp by other, keeping the high 64 bits of the full 128-bit
// product (i.e. computing as if frac were a fixed-point fraction in [0, 1)
// with an implicit leading 1, matching the teacher's own use of
// math/bits.Mul for carry-correct word multiplication).
func (fp *extFloat64) imul(other extFloat64) {
	hi, _ := bits.Mul64(fp.frac, other.frac)
	fp.frac = hi
	fp.exp = fp.exp + other.exp + 64
}

// overflowingMulSmall multiplies fp.frac by a small exact integer (a cached
// power that fits in a uint64), reporting whether the 64-bit product
// overflowed.
func (fp extFloat64) overflowingMulSmall(y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(fp.frac, y)
	return lo, hi != 0
}

const (
	errorScale     = 8
	errorHalfScale = errorScale / 2
)

// multiplyExponentExtended implements the bulk of C6: it multiplies fp by
// radix**exponent using the cached power schedule, tracking accumulated
// rounding error, and returns the resulting extended float together with
// whether the accuracy predicate considers it trustworthy.
func multiplyExponentExtended(fp extFloat64, radix int, exponent int32, truncated bool, mantissaSize, exponentBias int32) (extFloat64, bool) {
	powers := tables.Powers(radix)
	idx := exponent + powers.Bias
	if idx < 0 {
		// Guaranteed underflow: radix**exponent is smaller than the table's
		// smallest cached power.
		return extFloat64{frac: 0, exp: 0}, true
	}
	smallIdx := idx % powers.Step
	largeIdx := idx / powers.Step
	if int(largeIdx) >= len(powers.Large) {
		// Guaranteed overflow: assign infinity.
		return extFloat64{frac: 1 << 63, exp: 0x7FF}, true
	}

	var errors uint32
	if truncated {
		errors = errorHalfScale
	}

	small := extFloat64{frac: powers.Small[smallIdx].Frac, exp: powers.Small[smallIdx].Exp}
	if lo, overflow := fp.overflowingMulSmall(powers.SmallInt[smallIdx]); !overflow {
		fp.frac = lo
		fp.normalize()
	} else {
		fp.normalize()
		fp.imul(small)
		errors += errorHalfScale
	}

	large := powers.Large[largeIdx]
	fp.imul(extFloat64{frac: large.Frac, exp: large.Exp})
	if errors > 0 {
		errors++
	}
	errors += errorHalfScale

	shift := fp.normalize()
	errors <<= shift

	return fp, errorIsAccurate64(errors, fp, mantissaSize, exponentBias)
}

// errorIsAccurate64 is the accuracy predicate from spec §4.7: it decides
// whether fp, built with the given accumulated error count (in half-ulps of
// frac), is provably the correctly-rounded value for the target format.
func errorIsAccurate64(count uint32, fp extFloat64, mantissaSize, exponentBias int32) bool {
	bias := -(exponentBias - mantissaSize)
	denormalExp := bias - 63

	var extrabits int32
	if fp.exp <= denormalExp {
		extrabits = 64 - mantissaSize + denormalExp - fp.exp
	} else {
		extrabits = 63 - mantissaSize
	}

	if extrabits > 65 {
		return true
	}
	if extrabits == 65 {
		_, carry := bits.Add64(fp.frac, uint64(count), 0)
		return carry == 0
	}

	mask := uint64(1)<<uint(extrabits) - 1
	halfway := uint64(1) << uint(extrabits-1)
	extra := fp.frac & mask
	errors := uint64(count)

	lower := int64(halfway) - int64(errors)
	upper := int64(halfway) + int64(errors)
	e := int64(extra)
	return !(lower < e && e < upper)
}

// extFloat128 is the 160-bit variant used only by the lossy path: frac has
// 128 bits of precision instead of 64. Its precision is always sufficient
// (error_scale() == 0 in the original), so every result is declared
// accurate -- this is not a missing check, the type genuinely never needs
// one.
type extFloat128 struct {
	frac uint128
	exp  int32
}

func (fp *extFloat128) normalize() uint32 {
	if fp.frac.isZero() {
		return 0
	}
	shift := uint32(128 - fp.frac.bitLen())
	fp.frac = fp.frac.shl(uint(shift))
	fp.exp -= int32(shift)
	return shift
}

func (fp *extFloat128) imul(other extFloat128) {
	fp.frac = fp.frac.mul(other.frac)
	fp.exp = fp.exp + other.exp + 128
}

func extFloat128OfSmallPow(p tables.ExtFloat) extFloat128 {
	// The cached tables store 64-bit normalised powers; widen to 128 bits
	// by placing the 64-bit fraction in the high half.
	return extFloat128{frac: uint128{hi: p.Frac, lo: 0}, exp: p.Exp - 64}
}

// multiplyExponentExtended128 is multiplyExponentExtended's 128-bit
// counterpart. There is no error counter and no accuracy predicate to
// evaluate: the result is unconditionally treated as accurate.
func multiplyExponentExtended128(fp extFloat128, radix int, exponent int32) extFloat128 {
	powers := tables.Powers(radix)
	idx := exponent + powers.Bias
	if idx < 0 {
		return extFloat128{frac: uint128{}, exp: 0}
	}
	smallIdx := idx % powers.Step
	largeIdx := idx / powers.Step
	if int(largeIdx) >= len(powers.Large) {
		return extFloat128{frac: uint128{hi: 1 << 63, lo: 0}, exp: 0x7FF}
	}

	fp.normalize()
	fp.imul(extFloat128OfSmallPow(powers.Small[smallIdx]))
	fp.imul(extFloat128OfSmallPow(powers.Large[largeIdx]))
	fp.normalize()
	return fp
}
