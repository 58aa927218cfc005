package lexical

import (
	"math/big"
	"testing"
)

func u128FromString(t *testing.T, s string) uint128 {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad literal %q", s)
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(n, mask64).Uint64()
	hi := new(big.Int).Rsh(n, 64).Uint64()
	return uint128{hi: hi, lo: lo}
}

func TestParseMantissa64(t *testing.T) {
	cases := []struct {
		in       string
		mantissa uint64
		dotShift int32
		end      int
		trunc    bool
	}{
		{"1.2345", 12345, 4, 6, false},
		{"12.345", 12345, 3, 6, false},
		{"12345.6789", 123456789, 4, 10, false},
		{"1.2345e10", 12345, 4, 6, false},
		{"0.0000000000000000001", 1, 19, 21, false},
		{"0.00000000000000000000000000001", 1, 29, 31, false},
		{"100000000000000000000", 10000000000000000000, -1, 21, true},
	}
	for _, c := range cases {
		m, d, end, trunc := parseMantissa64(10, []byte(c.in))
		if m != c.mantissa || d != c.dotShift || end != c.end || trunc != c.trunc {
			t.Fatalf("parseMantissa64(%q) = (%d, %d, %d, %v), want (%d, %d, %d, %v)",
				c.in, m, d, end, trunc, c.mantissa, c.dotShift, c.end, c.trunc)
		}
	}
}

func TestParseMantissa64StrtodRegression(t *testing.T) {
	in := "179769313486231580793728971405303415079934132710037826936173778980444968292764750946649017977587207096330286416692887910946555547851940402630657488671505820681908902000708383676273854845817711531764475730270069855571366959622842914819860834936475292719074168444365510704342711559699508093042880177904174497791.9999999999999999999999999999999999999999999999999999999999999999999999"
	m, d, end, trunc := parseMantissa64(10, []byte(in))
	if m != 17976931348623158079 || d != -289 || end != 380 || !trunc {
		t.Fatalf("got (%d, %d, %d, %v)", m, d, end, trunc)
	}
}

func TestParseMantissa128(t *testing.T) {
	cases := []struct {
		in       string
		mantissa string
		dotShift int32
		end      int
		trunc    bool
	}{
		{"1.2345", "12345", 4, 6, false},
		{"12.345", "12345", 3, 6, false},
		{"12345.6789", "123456789", 4, 10, false},
		{"1.2345e10", "12345", 4, 6, false},
		{"0.0000000000000000001", "1", 19, 21, false},
		{"0.00000000000000000000000000001", "1", 29, 31, false},
		{"100000000000000000000", "100000000000000000000", 0, 21, false},
	}
	for _, c := range cases {
		want := u128FromString(t, c.mantissa)
		m, d, end, trunc := parseMantissa128(10, []byte(c.in))
		if m != want || d != c.dotShift || end != c.end || trunc != c.trunc {
			t.Fatalf("parseMantissa128(%q) = (%+v, %d, %d, %v), want (%+v, %d, %d, %v)",
				c.in, m, d, end, trunc, want, c.dotShift, c.end, c.trunc)
		}
	}
}

func TestNormalizeMantissa64(t *testing.T) {
	cases := []struct {
		mantissa uint64
		exponent int32
		wantM    uint64
		wantE    int32
	}{
		{100, 0, 1, 2},
		{101, 0, 101, 0},
		{110, 0, 11, 1},
	}
	for _, c := range cases {
		m, e := normalizeMantissa64(c.mantissa, 10, c.exponent)
		if m != c.wantM || e != c.wantE {
			t.Fatalf("normalizeMantissa64(%d) = (%d, %d), want (%d, %d)", c.mantissa, m, e, c.wantM, c.wantE)
		}
	}
}
