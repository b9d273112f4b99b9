package numeric

import (
	"github.com/calebcase/numeric/fixed"
)

// Numeric is the N38.9 scalar: a signed 128-bit integer scaled by 10^9,
// giving up to 29 integer digits and exactly 9 fractional digits.
type Numeric struct {
	scaled fixed.Int128
}

// Zero is the canonical zero value of Numeric.
var Zero Numeric

// NumericFromString parses s using lenient rounding: fractional digits
// beyond the 9 the type can hold are rounded away instead of rejected.
func NumericFromString(s string) (Numeric, error) {
	return numericFromString(s, false)
}

// NumericFromStringStrict parses s the same way but rejects any input that
// would need to be rounded to fit 9 fractional digits.
func NumericFromStringStrict(s string) (Numeric, error) {
	return numericFromString(s, true)
}

func numericFromString(s string, strict bool) (Numeric, error) {
	pd, ok := splitDecimalLiteral(s)
	if !ok {
		return Numeric{}, errInvalidInput(numericKind, s)
	}
	mag256, ok := buildScaledMagnitude(pd, numericScaleDigits, strict)
	if !ok {
		return Numeric{}, errInvalidInput(numericKind, s)
	}
	if !mag256.FitsUint128() {
		return Numeric{}, errInvalidInput(numericKind, s)
	}
	mag := mag256.Lo128()
	if mag.Cmp(maxNumericScaledMag) > 0 {
		return Numeric{}, errInvalidInput(numericKind, s)
	}
	scaled, ok := fixed.Int128FromSignAndAbs(pd.negative, mag)
	if !ok {
		return Numeric{}, errInvalidInput(numericKind, s)
	}
	return Numeric{scaled: scaled}, nil
}

// NumericFromPackedInt reconstructs a Numeric from its raw scaled integer,
// validating that it falls within [minNumericScaled, maxNumericScaled].
func NumericFromPackedInt(v fixed.Int128) (Numeric, error) {
	if v.Abs().Cmp(maxNumericScaledMag) > 0 {
		return Numeric{}, errInvalidInput(numericKind, v.String())
	}
	return Numeric{scaled: v}, nil
}

// AsPackedInt returns the raw scaled integer backing n.
func (n Numeric) AsPackedInt() fixed.Int128 { return n.scaled }

// String renders n as the shortest decimal string that round-trips
// (spec.md §4.3): no leading '+', a single '0' for zero, no trailing zeros
// in the fractional part.
func (n Numeric) String() string {
	return string(n.AppendString(nil))
}

// AppendString appends n's decimal rendering to buf and returns the
// result, avoiding an allocation per call for hot formatting paths.
func (n Numeric) AppendString(buf []byte) []byte {
	return appendScaledDecimal(buf, n.scaled.Sign() < 0, n.scaled.Abs().String(), numericScaleDigits)
}

// IsZero reports whether n is the canonical zero value.
func (n Numeric) IsZero() bool { return n.scaled.IsZero() }

// Sign returns -1, 0 or 1.
func (n Numeric) Sign() int { return n.scaled.Sign() }

// Cmp compares n and m, returning -1, 0 or 1.
func (n Numeric) Cmp(m Numeric) int { return n.scaled.Cmp(m.scaled) }

// Equal reports bitwise equality of the underlying scaled integers, which
// is exact equality per spec.md §3 (there is no negative zero).
func (n Numeric) Equal(m Numeric) bool { return n.scaled == m.scaled }

// Hash returns a hash suitable for use in map keys, derived from the
// canonical scaled integer.
func (n Numeric) Hash() uint64 {
	b := n.scaled.Abs()
	h := b[0] ^ (b[1] * 1099511628211)
	if n.scaled.IsNegative() {
		h ^= 0x9e3779b97f4a7c15
	}
	return h
}
