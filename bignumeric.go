package numeric

import (
	"github.com/calebcase/numeric/fixed"
)

// BigNumeric is the N76.38 scalar: a signed 256-bit integer scaled by
// 10^38, giving up to 38 integer digits and exactly 38 fractional digits.
type BigNumeric struct {
	scaled fixed.Int256
}

// ZeroBig is the canonical zero value of BigNumeric.
var ZeroBig BigNumeric

func BigNumericFromString(s string) (BigNumeric, error) {
	return bigNumericFromString(s, false)
}

func BigNumericFromStringStrict(s string) (BigNumeric, error) {
	return bigNumericFromString(s, true)
}

func bigNumericFromString(s string, strict bool) (BigNumeric, error) {
	pd, ok := splitDecimalLiteral(s)
	if !ok {
		return BigNumeric{}, errInvalidInput(bigNumericKind, s)
	}
	mag, ok := buildScaledMagnitude(pd, bigNumericScaleDigits, strict)
	if !ok {
		return BigNumeric{}, errInvalidInput(bigNumericKind, s)
	}
	if mag.Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errInvalidInput(bigNumericKind, s)
	}
	scaled, ok := fixed.Int256FromSignAndAbs(pd.negative, mag)
	if !ok {
		return BigNumeric{}, errInvalidInput(bigNumericKind, s)
	}
	return BigNumeric{scaled: scaled}, nil
}

func BigNumericFromPackedInt(v fixed.Int256) (BigNumeric, error) {
	if v.Abs().Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errInvalidInput(bigNumericKind, v.String())
	}
	return BigNumeric{scaled: v}, nil
}

func (n BigNumeric) AsPackedInt() fixed.Int256 { return n.scaled }

func (n BigNumeric) String() string {
	return string(n.AppendString(nil))
}

func (n BigNumeric) AppendString(buf []byte) []byte {
	return appendScaledDecimal(buf, n.scaled.Sign() < 0, n.scaled.Abs().String(), bigNumericScaleDigits)
}

func (n BigNumeric) IsZero() bool { return n.scaled.IsZero() }

func (n BigNumeric) Sign() int { return n.scaled.Sign() }

func (n BigNumeric) Cmp(m BigNumeric) int { return n.scaled.Cmp(m.scaled) }

func (n BigNumeric) Equal(m BigNumeric) bool { return n.scaled == m.scaled }

func (n BigNumeric) Hash() uint64 {
	b := n.scaled.Abs()
	h := b[0] ^ (b[1] * 1099511628211) ^ (b[2] * 14695981039346656037) ^ (b[3] * 2)
	if n.scaled.IsNegative() {
		h ^= 0x9e3779b97f4a7c15
	}
	return h
}
