package lexical

// ParseFloat64 parses a correctly-rounded float64 from the longest valid
// leading prefix of b, at the given radix, and returns the value and the
// number of bytes consumed. Radix must be in [2, 36] or ParseFloat64
// panics. Special tokens (NaN, infinity, hex floats) are not recognised.
func ParseFloat64(radix int, b []byte) (float64, int, error) {
	v, n, err := parseDouble(radix, b, false)
	if err != nil {
		return 0, n, err
	}
	return v, n, nil
}

// ParseFloat64Strict is like ParseFloat64 but requires the entire input to
// be consumed; a trailing byte is reported as ErrInvalidDigit at its
// position.
func ParseFloat64Strict(radix int, b []byte) (float64, error) {
	v, n, err := parseDouble(radix, b, false)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, parseErr(ErrInvalidDigit, n)
	}
	return v, nil
}

// ParseFloat64Lossy is like ParseFloat64, but when the extended-precision
// path cannot prove its result accurate, it escalates only to a 128-bit
// extended float rather than the arbitrary-precision slow path. The result
// may differ from the correctly-rounded value by at most one ULP.
func ParseFloat64Lossy(radix int, b []byte) (float64, int, error) {
	v, n, err := parseDouble(radix, b, true)
	if err != nil {
		return 0, n, err
	}
	return v, n, nil
}

// ParseFloat64LossyStrict is ParseFloat64Lossy with the strict trailing-byte
// check of ParseFloat64Strict.
func ParseFloat64LossyStrict(radix int, b []byte) (float64, error) {
	v, n, err := parseDouble(radix, b, true)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, parseErr(ErrInvalidDigit, n)
	}
	return v, nil
}

// ParseFloat32 is ParseFloat64's float32 counterpart.
func ParseFloat32(radix int, b []byte) (float32, int, error) {
	v, n, err := parseSingle(radix, b, false)
	if err != nil {
		return 0, n, err
	}
	return v, n, nil
}

// ParseFloat32Strict is ParseFloat32 with the strict trailing-byte check.
func ParseFloat32Strict(radix int, b []byte) (float32, error) {
	v, n, err := parseSingle(radix, b, false)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, parseErr(ErrInvalidDigit, n)
	}
	return v, nil
}

// ParseFloat32Lossy is ParseFloat32's lossy counterpart, per ParseFloat64Lossy.
func ParseFloat32Lossy(radix int, b []byte) (float32, int, error) {
	v, n, err := parseSingle(radix, b, true)
	if err != nil {
		return 0, n, err
	}
	return v, n, nil
}

// ParseFloat32LossyStrict is ParseFloat32Lossy with the strict trailing-byte
// check.
func ParseFloat32LossyStrict(radix int, b []byte) (float32, error) {
	v, n, err := parseSingle(radix, b, true)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, parseErr(ErrInvalidDigit, n)
	}
	return v, nil
}
