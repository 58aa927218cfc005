package lexical

import "math/big"

// These helpers narrow an extended-precision intermediate to a native
// float, once a tier has decided its result is accurate. They lean on
// math/big.Float for the final rounding step -- which Go guarantees is
// correctly rounded to nearest, ties to even -- rather than hand-rolling
// sticky-bit rounding logic, exactly as the teacher's own Decimal type
// wraps math/big.Float instead of rolling a bespoke float-conversion
// routine (decimal_conv.go).

func extFloat64ToFloat64(fp extFloat64) float64 {
	v, _ := bigFloatFromFrac64(fp.frac, fp.exp).Float64()
	return v
}

func extFloat64ToFloat32(fp extFloat64) float32 {
	v, _ := bigFloatFromFrac64(fp.frac, fp.exp).Float32()
	return v
}

func bigFloatFromFrac64(frac uint64, exp int32) *big.Float {
	f := new(big.Float).SetPrec(64).SetUint64(frac)
	f.SetMantExp(f, int(exp))
	return f
}

func extFloat128ToFloat64(fp extFloat128) float64 {
	v, _ := bigFloatFromFrac128(fp.frac, fp.exp).Float64()
	return v
}

func extFloat128ToFloat32(fp extFloat128) float32 {
	v, _ := bigFloatFromFrac128(fp.frac, fp.exp).Float32()
	return v
}

func bigFloatFromFrac128(frac uint128, exp int32) *big.Float {
	hi := new(big.Float).SetPrec(128).SetUint64(frac.hi)
	hi.SetMantExp(hi, 64)
	lo := new(big.Float).SetPrec(128).SetUint64(frac.lo)
	f := new(big.Float).SetPrec(128).Add(hi, lo)
	f.SetMantExp(f, int(exp))
	return f
}
