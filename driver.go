package lexical

import (
	"github.com/xlexical/lexical/internal/tables"
)

// leadsNumber reports whether b (already past any sign byte) can begin a
// valid float per the grammar: a digit, or a '.' immediately followed by a
// digit. Anything else is reported as InvalidDigit rather than Empty, which
// is reserved for genuinely empty input.
func leadsNumber(radix int, b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] == '.' {
		if len(b) < 2 {
			return false
		}
		_, ok := decodeDigit(b[1], radix)
		return ok
	}
	_, ok := decodeDigit(b[0], radix)
	return ok
}

// parseSign consumes an optional leading '+'/'-' and reports whether the
// value is negative.
func parseSign(b []byte) (neg bool, rest []byte, consumed int) {
	if len(b) == 0 {
		return false, b, 0
	}
	switch b[0] {
	case '+':
		return false, b[1:], 1
	case '-':
		return true, b[1:], 1
	default:
		return false, b, 0
	}
}

// parseDouble is C8's float64 engine: it runs C3+C4, then cascades through
// C5 (exact), C6 (extended), and -- only when necessary -- C7 (bigfloat).
func parseDouble(radix int, b []byte, lossy bool) (float64, int, *ParseError) {
	checkRadix(radix)

	neg, rest, signLen := parseSign(b)
	if len(rest) == 0 {
		return 0, signLen, parseErr(ErrEmpty, signLen)
	}
	if !leadsNumber(radix, rest) {
		return 0, signLen, parseErr(ErrInvalidDigit, signLen)
	}

	mantissa, dotShift, mEnd, truncated := parseMantissa64(radix, rest)
	markerExp, eLen, eerr := parseExponent(radix, rest[mEnd:])
	if eerr != nil {
		idx := signLen + mEnd + eerr.Index
		return 0, idx, parseErr(eerr.Kind, idx)
	}
	end := mEnd + eLen
	exponent := markerExp - dotShift
	mantissa, exponent = normalizeMantissa64(mantissa, radix, exponent)

	var value float64
	switch {
	case mantissa == 0:
		value = 0

	case pow2Exponent(radix) != 0:
		if truncated && isHalfway(mantissa, tables.Float64.MantissaSize) {
			fp, _ := bigFloatFromDigits(radix, rest[:end])
			value = fp.float64()
		} else {
			value = pow2ToExact64(mantissa, radix, exponent)
		}

	default:
		var accurate bool
		value, accurate = exactOrExtended64(mantissa, radix, exponent, truncated)
		if !accurate {
			if lossy {
				m128, dotShift128, _, _ := parseMantissa128(radix, rest)
				exponent128 := markerExp - dotShift128
				ext := multiplyExponentExtended128(extFloat128{frac: m128}, radix, exponent128)
				value = extFloat128ToFloat64(ext)
			} else {
				fp, _ := bigFloatFromDigits(radix, rest[:end])
				value = fp.float64()
			}
		}
	}

	if neg {
		value = -value
	}
	return value, signLen + end, nil
}

// exactOrExtended64 tries C5's non-power-of-two branch (when the mantissa
// was not truncated) and then C6. The bool result reports whether either
// path produced a provably-accurate value; when false, the caller escalates
// to C7 or the lossy 128-bit path.
func exactOrExtended64(mantissa uint64, radix int, exponent int32, truncated bool) (float64, bool) {
	if !truncated {
		if v, ok := toExact64(mantissa, radix, exponent); ok {
			return v, true
		}
	}
	ext, ok := multiplyExponentExtended(extFloat64{frac: mantissa}, radix, exponent, truncated, tables.Float64.MantissaSize, tables.Float64.ExponentBias)
	if ok {
		return extFloat64ToFloat64(ext), true
	}
	return 0, false
}

// parseSingle is parseDouble's float32 counterpart.
func parseSingle(radix int, b []byte, lossy bool) (float32, int, *ParseError) {
	checkRadix(radix)

	neg, rest, signLen := parseSign(b)
	if len(rest) == 0 {
		return 0, signLen, parseErr(ErrEmpty, signLen)
	}
	if !leadsNumber(radix, rest) {
		return 0, signLen, parseErr(ErrInvalidDigit, signLen)
	}

	mantissa, dotShift, mEnd, truncated := parseMantissa64(radix, rest)
	markerExp, eLen, eerr := parseExponent(radix, rest[mEnd:])
	if eerr != nil {
		idx := signLen + mEnd + eerr.Index
		return 0, idx, parseErr(eerr.Kind, idx)
	}
	end := mEnd + eLen
	exponent := markerExp - dotShift
	mantissa, exponent = normalizeMantissa64(mantissa, radix, exponent)

	var value float32
	switch {
	case mantissa == 0:
		value = 0

	case pow2Exponent(radix) != 0:
		if truncated && isHalfway(mantissa, tables.Float32.MantissaSize) {
			fp, _ := bigFloatFromDigits(radix, rest[:end])
			value = fp.float32()
		} else {
			value = pow2ToExact32(mantissa, radix, exponent)
		}

	default:
		var accurate bool
		value, accurate = exactOrExtended32(mantissa, radix, exponent, truncated)
		if !accurate {
			if lossy {
				m128, dotShift128, _, _ := parseMantissa128(radix, rest)
				exponent128 := markerExp - dotShift128
				ext := multiplyExponentExtended128(extFloat128{frac: m128}, radix, exponent128)
				value = extFloat128ToFloat32(ext)
			} else {
				fp, _ := bigFloatFromDigits(radix, rest[:end])
				value = fp.float32()
			}
		}
	}

	if neg {
		value = -value
	}
	return value, signLen + end, nil
}

func exactOrExtended32(mantissa uint64, radix int, exponent int32, truncated bool) (float32, bool) {
	if !truncated {
		if v, ok := toExact32(mantissa, radix, exponent); ok {
			return v, true
		}
	}
	ext, ok := multiplyExponentExtended(extFloat64{frac: mantissa}, radix, exponent, truncated, tables.Float32.MantissaSize, tables.Float32.ExponentBias)
	if ok {
		return extFloat64ToFloat32(ext), true
	}
	return 0, false
}
