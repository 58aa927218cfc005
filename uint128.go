package lexical

import "math/bits"

// uint128 is a minimal 128-bit unsigned integer, used as the mantissa type
// for the lossy 128-bit extended-precision path (extFloat128). Only the
// operations that path needs are implemented: small-integer checked
// multiply/add for mantissa digit accumulation, a full 128x128 multiply for
// cached-power multiplication, shifts, and bit-length queries.
type uint128 struct {
	hi, lo uint64
}

func u128FromUint64(v uint64) uint128 {
	return uint128{hi: 0, lo: v}
}

func (x uint128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

// mulSmall multiplies x by a value known to fit in a uint64 (radix or a
// digit, always <= 36 in this package) and reports whether the 128-bit
// result overflowed.
func (x uint128) mulSmall(y uint64) (uint128, bool) {
	hiHi, hiLo := bits.Mul64(x.hi, y)
	if hiHi != 0 {
		return uint128{}, true
	}
	loHi, loLo := bits.Mul64(x.lo, y)
	rhi, carry := bits.Add64(hiLo, loHi, 0)
	if carry != 0 {
		return uint128{}, true
	}
	return uint128{hi: rhi, lo: loLo}, false
}

// addSmall adds a small value to x, reporting overflow.
func (x uint128) addSmall(y uint64) (uint128, bool) {
	lo, c := bits.Add64(x.lo, y, 0)
	hi, c2 := bits.Add64(x.hi, 0, c)
	return uint128{hi: hi, lo: lo}, c2 != 0
}

// mul returns the high 128 bits of the full 256-bit product of x and y,
// rounding the discarded low 128 bits to nearest. This is the "imul" of the
// 160-bit extended float: cached powers and the running fraction are both
// normalised (top bit set), so the high half of the product is exactly the
// renormalised fraction the caller needs.
func (x uint128) mul(y uint128) uint128 {
	h00, _ := bits.Mul64(x.lo, y.lo)
	h01, l01 := bits.Mul64(x.lo, y.hi)
	h10, l10 := bits.Mul64(x.hi, y.lo)
	h11, l11 := bits.Mul64(x.hi, y.hi)

	col1, c1 := bits.Add64(h00, l01, 0)
	col1, c1b := bits.Add64(col1, l10, 0)
	carryA := c1 + c1b

	col2, c2 := bits.Add64(h01, h10, 0)
	col2, c2b := bits.Add64(col2, l11, 0)
	col2, c2c := bits.Add64(col2, carryA, 0)
	carryB := c2 + c2b + c2c

	col3 := h11 + carryB

	hi, lo := col3, col2
	// Round the dropped low 128 bits to nearest, deciding on the top bit of
	// col1 (the lowest word of the product is not consulted).
	if col1>>63 == 1 {
		lo2, c := bits.Add64(lo, 1, 0)
		lo = lo2
		if c != 0 {
			hi++
		}
	}
	return uint128{hi: hi, lo: lo}
}

// shl shifts x left by n bits (0 <= n < 128), discarding bits shifted past
// the top.
func (x uint128) shl(n uint) uint128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return uint128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	case n < 128:
		return uint128{hi: x.lo << (n - 64), lo: 0}
	default:
		return uint128{}
	}
}

// shr shifts x right by n bits (0 <= n < 128).
func (x uint128) shr(n uint) uint128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return uint128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
	case n < 128:
		return uint128{hi: 0, lo: x.hi >> (n - 64)}
	default:
		return uint128{}
	}
}

// bitLen returns the number of bits required to represent x, or 0 for x == 0.
func (x uint128) bitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}
	return bits.Len64(x.lo)
}
