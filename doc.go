/*
Package lexical implements fast, correctly-rounded parsing of byte strings
into native machine integers and IEEE-754 binary floating-point values.

The goal is to parse numbers faster than a typical language runtime while
preserving bit-exact equivalence with the round-to-nearest-even result a
correct radix-2..36 to binary conversion must produce.

Integer parsing

ParseUint and ParseInt read a radix 2..36 integer from a byte slice into any
unsigned or signed machine integer type. Each has two surfaces: a "Strict"
variant that requires the entire input to be consumed, and a partial
variant that returns the number of bytes consumed and succeeds on any
valid non-empty prefix, leaving the rest of the input untouched.

Float parsing

ParseFloat32 and ParseFloat64 convert a byte string to the nearest
representable float, cascading from a cheap exact path, through an
extended-precision path, to an arbitrary-precision fallback, only falling
through to a slower tier when the faster one cannot prove its result is
correctly rounded. ParseFloat32Lossy and ParseFloat64Lossy skip the
arbitrary-precision fallback in exchange for a bound of at most one ULP of
error, at a large constant-factor speedup on the rare inputs that would
otherwise need it.

Grammar

	number     = sign? ( float | integer )
	float      = digits ( '.' digits? )? ( marker sign? digits )?
	           | '.' digits ( marker sign? digits )?
	integer    = digits
	digits     = digit { digit }
	digit      = any byte whose lowercase maps to a value < radix
	sign       = '+' | '-'
	marker     = 'e' | 'E'   if radix < 15
	           | '^'         if radix >= 15

Special tokens such as "NaN", "Infinity" and hexadecimal float literals
("0x1.8p3") are not recognized, nor are leading whitespace, thousands
separators, or locale decimal marks. Number formatting (the reverse
operation) is out of scope for this package.
*/
package lexical
