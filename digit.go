package lexical

import "strconv"

// MaxRadix is the largest radix accepted by this package's parsers.
const MaxRadix = 36

// decodeDigit returns the value of c as a digit in the given radix, and
// whether c is a valid digit at all. No case-folding table is used: the
// two letter ranges are handled by direct arithmetic.
func decodeDigit(c byte, radix int) (uint32, bool) {
	var d uint32
	switch {
	case '0' <= c && c <= '9':
		d = uint32(c - '0')
	case 'a' <= c && c <= 'z':
		d = uint32(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = uint32(c-'A') + 10
	default:
		return 0, false
	}
	if d >= uint32(radix) {
		return 0, false
	}
	return d, true
}

func checkRadix(radix int) {
	if radix < 2 || radix > MaxRadix {
		panic("lexical: invalid radix " + strconv.Itoa(radix))
	}
}
