package numeric

import "github.com/calebcase/numeric/fixed"

// Bytes returns the minimum-length little-endian two's complement encoding
// of n's underlying scaled integer (spec.md §4.6). Zero encodes as a
// single 0x00 byte.
func (n Numeric) Bytes() []byte { return n.scaled.Bytes() }

// NumericFromBytes decodes the encoding produced by Bytes, rejecting the
// empty byte string and any value outside the type's range.
func NumericFromBytes(data []byte) (Numeric, error) {
	if len(data) == 0 {
		return Numeric{}, errInvalidEncoding(numericKind)
	}
	scaled, ok := fixed.Int128FromBytes(data)
	if !ok || outOfRangeInt128(scaled) {
		return Numeric{}, errInvalidEncoding(numericKind)
	}
	return Numeric{scaled: scaled}, nil
}

// Bytes returns the minimum-length little-endian two's complement encoding
// of n's underlying scaled integer.
func (n BigNumeric) Bytes() []byte { return n.scaled.Bytes() }

// BigNumericFromBytes decodes the encoding produced by Bytes.
func BigNumericFromBytes(data []byte) (BigNumeric, error) {
	if len(data) == 0 {
		return BigNumeric{}, errInvalidEncoding(bigNumericKind)
	}
	scaled, ok := fixed.Int256FromBytes(data)
	if !ok || scaled.Abs().Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errInvalidEncoding(bigNumericKind)
	}
	return BigNumeric{scaled: scaled}, nil
}
