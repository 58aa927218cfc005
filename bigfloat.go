package lexical

import "math/big"

// bigFloat is C7: the arbitrary-precision fallback used once both the exact
// and extended paths have given up. num holds the exact integer value of the
// significant digits; denom is non-nil only when the combined exponent
// (marker exponent minus fractional-digit count) is negative, in which case
// the true value is num / denom. See the construction-from-digits design
// note for why this is math/big-backed rather than a hand-rolled limb array.
type bigFloat struct {
	num, denom *big.Int
}

// bigFloatFromDigits builds a bigFloat directly from the original digit byte
// range at the parse radix, independently of any already-parsed 64-bit
// mantissa -- which, by the time this path runs, has already discarded the
// precision this path exists to recover. Returns the value and the number of
// bytes consumed (mantissa digits, dot, and exponent section).
func bigFloatFromDigits(radix int, b []byte) (bigFloat, int) {
	r := big.NewInt(int64(radix))
	num := new(big.Int)

	i := ltrimZero(b, 0)
	for i < len(b) {
		d, ok := decodeDigit(b[i], radix)
		if !ok {
			break
		}
		num.Mul(num, r)
		num.Add(num, big.NewInt(int64(d)))
		i++
	}

	fracDigits := 0
	if i < len(b) && b[i] == '.' {
		i++
		if num.Sign() == 0 {
			j := ltrimZero(b, i)
			fracDigits = j - i
			i = j
		}
		for i < len(b) {
			d, ok := decodeDigit(b[i], radix)
			if !ok {
				break
			}
			num.Mul(num, r)
			num.Add(num, big.NewInt(int64(d)))
			i++
			fracDigits++
		}
	}

	markerExp, consumed, _ := parseExponent(radix, b[i:])
	i += consumed

	totalExp := markerExp - int32(fracDigits)

	fp := bigFloat{}
	if totalExp >= 0 {
		fp.num = new(big.Int).Mul(num, new(big.Int).Exp(r, big.NewInt(int64(totalExp)), nil))
	} else {
		fp.num = num
		fp.denom = new(big.Int).Exp(r, big.NewInt(int64(-totalExp)), nil)
	}
	return fp, i
}

// quoPrec picks a big.Float precision generous enough that the final
// Float64/Float32 narrowing (itself correctly rounded) sees every bit that
// could influence rounding, regardless of how lopsided num and denom are.
func (fp bigFloat) quoPrec() uint {
	n := fp.num.BitLen()
	if fp.denom != nil {
		n += fp.denom.BitLen()
	}
	return uint(n) + 64
}

func (fp bigFloat) float64() float64 {
	if fp.num.Sign() == 0 {
		return 0
	}
	prec := fp.quoPrec()
	if fp.denom == nil {
		v, _ := new(big.Float).SetPrec(prec).SetInt(fp.num).Float64()
		return v
	}
	numF := new(big.Float).SetPrec(prec).SetInt(fp.num)
	denomF := new(big.Float).SetPrec(prec).SetInt(fp.denom)
	v, _ := new(big.Float).SetPrec(prec).Quo(numF, denomF).Float64()
	return v
}

func (fp bigFloat) float32() float32 {
	if fp.num.Sign() == 0 {
		return 0
	}
	prec := fp.quoPrec()
	if fp.denom == nil {
		v, _ := new(big.Float).SetPrec(prec).SetInt(fp.num).Float32()
		return v
	}
	numF := new(big.Float).SetPrec(prec).SetInt(fp.num)
	denomF := new(big.Float).SetPrec(prec).SetInt(fp.denom)
	v, _ := new(big.Float).SetPrec(prec).Quo(numF, denomF).Float32()
	return v
}
