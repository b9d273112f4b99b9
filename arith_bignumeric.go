package numeric

import (
	"github.com/calebcase/numeric/fixed"
)

// Add returns n+m, or an overflow error if the true sum exceeds the
// signed 256-bit range.
func (n BigNumeric) Add(m BigNumeric) (BigNumeric, error) {
	z, overflow := n.scaled.Add(m.scaled)
	if overflow {
		return BigNumeric{}, errOverflow(bigNumericKind, "+", n, m)
	}
	return BigNumeric{scaled: z}, nil
}

// Sub returns n-m.
func (n BigNumeric) Sub(m BigNumeric) (BigNumeric, error) {
	z, overflow := n.scaled.Sub(m.scaled)
	if overflow {
		return BigNumeric{}, errOverflow(bigNumericKind, "-", n, m)
	}
	return BigNumeric{scaled: z}, nil
}

// Neg returns -n.
func (n BigNumeric) Neg() (BigNumeric, error) {
	z, overflow := n.scaled.Neg()
	if overflow {
		return BigNumeric{}, errOverflow(bigNumericKind, "-", n)
	}
	return BigNumeric{scaled: z}, nil
}

// Abs returns the absolute value of n.
func (n BigNumeric) Abs() (BigNumeric, error) {
	if n.scaled.IsNegative() {
		return n.Neg()
	}
	return n, nil
}

var bigNumericScaleHalf, _ = bigNumericScaleU.Shr(1)

// bigNumericOverflowBound equals MAX_SCALED*scale + scale/2, the tight
// pre-check the multiply path uses to avoid a full post-division range
// test (spec.md §4.5).
var bigNumericOverflowBound = mustUint512WideProduct(maxBigNumericScaledMag, bigNumericScaleU, bigNumericScaleHalf)

func mustUint512WideProduct(maxScaled, scale, half fixed.Uint256) fixed.Uint512 {
	wide := fixed.ExtendMulUint256(maxScaled, scale)
	sum, carry := wide.Add(fixed.Uint512FromUint256(half))
	if carry {
		panic("numeric: bignumeric overflow bound computation overflowed")
	}
	return sum
}

// Mul returns n*m rounded half-away-from-zero to 38 fractional digits.
func (n BigNumeric) Mul(m BigNumeric) (BigNumeric, error) {
	an, am := n.scaled.Abs(), m.scaled.Abs()
	wide := fixed.ExtendMulUint256(an, am)
	if wide.Cmp(bigNumericOverflowBound) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "*", n, m)
	}
	sum, _ := wide.Add(fixed.Uint512FromUint256(bigNumericScaleHalf))
	q512, _, ok := sum.QuoRem(fixed.Uint512FromUint256(bigNumericScaleU))
	if !ok || !q512.FitsUint256() {
		return BigNumeric{}, errOverflow(bigNumericKind, "*", n, m)
	}
	mag := q512.Lo256()
	if mag.Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "*", n, m)
	}
	negative := (n.scaled.Sign() < 0) != (m.scaled.Sign() < 0)
	scaled, ok := fixed.Int256FromSignAndAbs(negative, mag)
	if !ok {
		return BigNumeric{}, errOverflow(bigNumericKind, "*", n, m)
	}
	return BigNumeric{scaled: scaled}, nil
}

// Div returns n/m rounded half-away-from-zero to 38 fractional digits.
func (n BigNumeric) Div(m BigNumeric) (BigNumeric, error) {
	if m.scaled.IsZero() {
		return BigNumeric{}, errDivisionByZero(n.String(), m.String())
	}
	an, am := n.scaled.Abs(), m.scaled.Abs()
	numer := fixed.ExtendMulUint256(an, bigNumericScaleU)
	half, _ := am.Shr(1)
	numer, carry := numer.Add(fixed.Uint512FromUint256(half))
	if carry {
		return BigNumeric{}, errOverflow(bigNumericKind, "/", n, m)
	}
	denom := fixed.Uint512FromUint256(am)
	q512, _, ok := numer.QuoRem(denom)
	if !ok || !q512.FitsUint256() {
		return BigNumeric{}, errOverflow(bigNumericKind, "/", n, m)
	}
	mag := q512.Lo256()
	if mag.Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "/", n, m)
	}
	negative := (n.scaled.Sign() < 0) != (m.scaled.Sign() < 0)
	scaled, ok := fixed.Int256FromSignAndAbs(negative, mag)
	if !ok {
		return BigNumeric{}, errOverflow(bigNumericKind, "/", n, m)
	}
	return BigNumeric{scaled: scaled}, nil
}

// IntegerDivide returns trunc(n/m) as a whole-number BigNumeric.
func (n BigNumeric) IntegerDivide(m BigNumeric) (BigNumeric, error) {
	if m.scaled.IsZero() {
		return BigNumeric{}, errDivisionByZero(n.String(), m.String())
	}
	an, am := n.scaled.Abs(), m.scaled.Abs()
	q, _, _ := an.QuoRem(am)
	maxQuotient, _, _ := maxBigNumericScaledMag.QuoRem(bigNumericScaleU)
	if q.Cmp(maxQuotient) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "DIV", n, m)
	}
	scaledMag, overflow := q.Mul(bigNumericScaleU)
	if overflow {
		return BigNumeric{}, errOverflow(bigNumericKind, "DIV", n, m)
	}
	negative := (n.scaled.Sign() < 0) != (m.scaled.Sign() < 0)
	scaled, ok := fixed.Int256FromSignAndAbs(negative, scaledMag)
	if !ok {
		return BigNumeric{}, errOverflow(bigNumericKind, "DIV", n, m)
	}
	return BigNumeric{scaled: scaled}, nil
}

// Mod returns the signed remainder of n and m's underlying scaled
// integers.
func (n BigNumeric) Mod(m BigNumeric) (BigNumeric, error) {
	if m.scaled.IsZero() {
		return BigNumeric{}, errDivisionByZero(n.String(), m.String())
	}
	an, am := n.scaled.Abs(), m.scaled.Abs()
	_, r, _ := an.QuoRem(am)
	scaled, _ := fixed.Int256FromSignAndAbs(n.scaled.IsNegative(), r)
	return BigNumeric{scaled: scaled}, nil
}
