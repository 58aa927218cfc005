package lexical

import (
	"math/rand"
	"strconv"
	"testing"
)

var rnd = rand.New(rand.NewSource(1))

func TestParseUintConcrete(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  uint8
		n     int
		kind  ErrorKind
		isErr bool
	}{
		{name: "zero", in: "0", want: 0, n: 1},
		{name: "max", in: "255", want: 255, n: 3},
		{name: "overflow", in: "256", n: 2, isErr: true, kind: ErrOverflow},
		{name: "rejects sign", in: "-1", n: 0, isErr: true, kind: ErrInvalidDigit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, n, err := ParseUint[uint8](10, []byte(c.in))
			if c.isErr {
				pe, ok := err.(*ParseError)
				if !ok {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if pe.Kind != c.kind || pe.Index != c.n {
					t.Fatalf("got (%v, %d), want (%v, %d)", pe.Kind, pe.Index, c.kind, c.n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != c.want || n != c.n {
				t.Fatalf("got (%d, %d), want (%d, %d)", v, n, c.want, c.n)
			}
		})
	}
}

func TestParseIntConcrete(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int8
		n    int
		kind ErrorKind
		err  bool
	}{
		{name: "negative one", in: "-1", want: -1, n: 2},
		{name: "min value", in: "-128", want: -128, n: 4},
		{name: "underflow", in: "-129", n: 3, err: true, kind: ErrUnderflow},
		{name: "isolated sign", in: "+", n: 1, err: true, kind: ErrEmpty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, n, err := ParseInt[int8](10, []byte(c.in))
			if c.err {
				pe, ok := err.(*ParseError)
				if !ok {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if pe.Kind != c.kind || pe.Index != c.n {
					t.Fatalf("got (%v, %d), want (%v, %d)", pe.Kind, pe.Index, c.kind, c.n)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != c.want || n != c.n {
				t.Fatalf("got (%d, %d), want (%d, %d)", v, n, c.want, c.n)
			}
		})
	}
}

func TestParseUintStrictVsLeading(t *testing.T) {
	v, n, err := ParseUint[uint32](10, []byte("1a"))
	if err != nil || v != 1 || n != 1 {
		t.Fatalf("leading parse got (%d, %d, %v)", v, n, err)
	}
	_, err = ParseUintStrict[uint32](10, []byte("1a"))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrInvalidDigit || pe.Index != 1 {
		t.Fatalf("strict parse got %v", err)
	}
}

func TestParseUintRadix16(t *testing.T) {
	v, n, err := ParseUint[uint8](16, []byte("25"))
	if err != nil || v != 37 || n != 2 {
		t.Fatalf("got (%d, %d, %v), want (37, 2, nil)", v, n, err)
	}
}

// Regression: a fuzz-discovered input where the sheer run of digits
// overflows a uint64 partway through, at a position that must land exactly
// on the 20th digit of the integer portion (after the leading zeros are not
// present to strip, since the first digit is non-zero).
func TestParseUint64FuzzRegression(t *testing.T) {
	s := "406260572150672006000066000000060060007667760000000000000000000" +
		"+00000006766767766666767665670000000000000000000000666"
	_, n, err := ParseUint[uint64](10, []byte(s))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrOverflow || pe.Index != 19 {
		t.Fatalf("got (n=%d, err=%v), want overflow at 19", n, err)
	}
}

func TestParseUintRoundTrip(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := rnd.Uint64()
		s := strconv.FormatUint(n, 10)
		v, consumed, err := ParseUint[uint64](10, []byte(s))
		if err != nil {
			t.Fatalf("ParseUint(%q) error: %v", s, err)
		}
		if v != n || consumed != len(s) {
			t.Fatalf("ParseUint(%q) = (%d, %d), want (%d, %d)", s, v, consumed, n, len(s))
		}
	}
}

func TestParseIntRoundTrip(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := int64(rnd.Uint64())
		s := strconv.FormatInt(n, 10)
		v, consumed, err := ParseInt[int64](10, []byte(s))
		if err != nil {
			t.Fatalf("ParseInt(%q) error: %v", s, err)
		}
		if v != n || consumed != len(s) {
			t.Fatalf("ParseInt(%q) = (%d, %d), want (%d, %d)", s, v, consumed, n, len(s))
		}
	}
}

func TestParseUintIntWidth(t *testing.T) {
	v, n, err := ParseUint[uint](10, []byte("42"))
	if err != nil || v != 42 || n != 2 {
		t.Fatalf("got (%d, %d, %v)", v, n, err)
	}
	iv, in, err := ParseInt[int](10, []byte("-42"))
	if err != nil || iv != -42 || in != 3 {
		t.Fatalf("got (%d, %d, %v)", iv, in, err)
	}
}

func TestCheckRadixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid radix")
		}
	}()
	_, _, _ = ParseUint[uint32](37, []byte("1"))
}
