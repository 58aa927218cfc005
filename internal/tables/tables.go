// Package tables holds the read-only collaborators the parser's exact and
// extended paths need: per-radix exponent limits and cached powers of each
// radix as normalised 80-bit extended floats. Both are computed once, at
// package init, using math/big; generating these tables is the only part of
// their existence this package does not hand-derive from first principles
// (doing so exactly as lexical-core's own build does, with a giant
// brute-force-searched literal array, is out of scope -- see the owning
// module's design notes).
package tables

import "math/big"

// Format describes the constants of a target binary floating-point type
// that the exact and extended paths need.
type Format struct {
	MantissaSize int32 // bits of significand, excluding the implicit bit
	ExponentBias int32 // IEEE exponent bias plus MantissaSize (127+23, 1023+52)
}

var (
	Float32 = Format{MantissaSize: 23, ExponentBias: 150}
	Float64 = Format{MantissaSize: 52, ExponentBias: 1075}
)

// ExtFloat mirrors the owning package's 80-bit extended float shape
// (frac * 2**exp, normalised with the top bit of frac set), exported only so
// this package can hand back cached powers without an import cycle.
type ExtFloat struct {
	Frac uint64
	Exp  int32
}

// PowerTable is the cached-power schedule for one radix: Small holds
// radix**k for k in [0, Step), Large holds radix**(j*Step - Bias) for
// successive j. The exponent-index split mirrors the extended path's
//
//	idx   = exponent + bias
//	small = idx mod step
//	large = idx div step
//	radix**exponent = Small[small] * Large[large]
type PowerTable struct {
	Bias     int32
	Step     int32
	Small    []ExtFloat
	Large    []ExtFloat
	SmallInt []uint64 // Small[i] as an exact uint64, for the overflowing_mul fast path
}

type exponentLimit struct {
	min32, max32 int32
	min64, max64 int32
}

var (
	powerTables    [37]*PowerTable
	exponentLimits [37]exponentLimit
)

func init() {
	for radix := 2; radix <= 36; radix++ {
		powerTables[radix] = buildPowerTable(radix)
		exponentLimits[radix] = buildExponentLimit(radix)
	}
}

// Powers returns the cached power schedule for radix, which must be in
// [2, 36].
func Powers(radix int) *PowerTable {
	return powerTables[radix]
}

// ExponentLimit32 returns the inclusive [min, max] exponent range the exact
// path accepts for radix as a float32. For a power-of-two radix it is every
// exponent for which radix**exponent is exactly representable; for any other
// radix it is symmetric, with max the largest n for which radix**n fits the
// significand (so radix**|exponent| is exact).
func ExponentLimit32(radix int) (int32, int32) {
	e := exponentLimits[radix]
	return e.min32, e.max32
}

// ExponentLimit64 is ExponentLimit32's float64 counterpart.
func ExponentLimit64(radix int) (int32, int32) {
	e := exponentLimits[radix]
	return e.min64, e.max64
}

// maxExactPower returns the largest n >= 0 such that radix**n fits in
// mantissaBits+1 bits (i.e. is exactly representable as the target's
// significand, hidden bit included).
func maxExactPower(radix int, mantissaBits int32) int32 {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(mantissaBits+1))
	r := big.NewInt(int64(radix))
	pow := big.NewInt(1)
	var n int32
	for {
		next := new(big.Int).Mul(pow, r)
		if next.Cmp(limit) >= 0 {
			break
		}
		pow = next
		n++
	}
	return n
}

func buildExponentLimit(radix int) exponentLimit {
	if radix&(radix-1) == 0 {
		// radix == 2**p: radix**e is exact whenever 2**(p*e) lies between
		// the smallest subnormal and the largest power of two of the format.
		var p int32
		for r := radix; r > 1; r >>= 1 {
			p++
		}
		return exponentLimit{
			min32: -(Float32.ExponentBias - 1) / p, max32: (Float32.ExponentBias - Float32.MantissaSize) / p,
			min64: -(Float64.ExponentBias - 1) / p, max64: (Float64.ExponentBias - Float64.MantissaSize) / p,
		}
	}
	max32 := maxExactPower(radix, Float32.MantissaSize)
	max64 := maxExactPower(radix, Float64.MantissaSize)
	return exponentLimit{min32: -max32, max32: max32, min64: -max64, max64: max64}
}

const (
	powerStep = 8
	// Covers the full binary exponent range of a float64 (subnormals down
	// to 2**-1074, normals up to just under 2**1024) for every radix down
	// to 2, with headroom.
	powerBinExpSpan = 1150
)

func radixExponentSpan(radix int) int32 {
	log2r := approxLog2(radix)
	span := int32(powerBinExpSpan/log2r) + 2
	return span
}

// approxLog2 returns log2(radix) to enough precision to size the cached
// power table; it does not need to be exact, only large enough that the
// resulting span comfortably covers float64's exponent range.
func approxLog2(radix int) float64 {
	logs := [...]float64{
		0, 0, 1, 1.585, 2, 2.322, 2.585, 2.807, 3, 3.17,
		3.322, 3.459, 3.585, 3.701, 3.807, 3.907, 4, 4.087, 4.17, 4.248,
		4.322, 4.392, 4.459, 4.524, 4.585, 4.644, 4.701, 4.755, 4.807, 4.858,
		4.907, 4.954, 5, 5.044, 5.087, 5.129, 5.17,
	}
	return logs[radix]
}

// bigIntPow returns radix**k as an exact big.Int for k >= 0 (for k < 0 it
// returns 1; callers only pass the non-negative small-power indices).
func bigIntPow(radix int, k int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(k)), nil)
}

// extFloatOfBigPow computes the correctly-rounded 80-bit extended-float
// representation of radix**k (k may be negative).
func extFloatOfBigPow(radix int, k int32) ExtFloat {
	const prec = 256
	f := new(big.Float).SetPrec(prec).SetInt64(1)
	base := new(big.Float).SetPrec(prec).SetInt64(int64(radix))
	if k >= 0 {
		for i := int32(0); i < k; i++ {
			f.Mul(f, base)
		}
	} else {
		for i := int32(0); i > k; i-- {
			f.Quo(f, base)
		}
	}
	mant := new(big.Float)
	exp := new(big.Float).SetPrec(64).Set(f).MantExp(mant)
	mant.SetMantExp(mant, 64)
	fracInt, _ := mant.Int(nil)
	frac := fracInt.Uint64()
	return ExtFloat{Frac: frac, Exp: int32(exp) - 64}
}

func buildPowerTable(radix int) *PowerTable {
	span := radixExponentSpan(radix)
	bias := span
	numLarge := int(2*span)/powerStep + 2

	small := make([]ExtFloat, powerStep)
	smallInt := make([]uint64, powerStep)
	for i := 0; i < powerStep; i++ {
		small[i] = extFloatOfBigPow(radix, int32(i))
		smallInt[i] = bigIntPow(radix, int32(i)).Uint64()
	}

	large := make([]ExtFloat, numLarge)
	for j := 0; j < numLarge; j++ {
		k := int32(j)*powerStep - bias
		large[j] = extFloatOfBigPow(radix, k)
	}

	return &PowerTable{
		Bias:     bias,
		Step:     powerStep,
		Small:    small,
		Large:    large,
		SmallInt: smallInt,
	}
}
