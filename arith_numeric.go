package numeric

import (
	"github.com/calebcase/numeric/fixed"
)

// Add returns n+m, or an overflow error if the true sum exceeds
// MAX_SCALED.
func (n Numeric) Add(m Numeric) (Numeric, error) {
	z, overflow := n.scaled.Add(m.scaled)
	if overflow || outOfRangeInt128(z) {
		return Numeric{}, errOverflow(numericKind, "+", n, m)
	}
	return Numeric{scaled: z}, nil
}

// Sub returns n-m.
func (n Numeric) Sub(m Numeric) (Numeric, error) {
	z, overflow := n.scaled.Sub(m.scaled)
	if overflow || outOfRangeInt128(z) {
		return Numeric{}, errOverflow(numericKind, "-", n, m)
	}
	return Numeric{scaled: z}, nil
}

// Neg returns -n.
func (n Numeric) Neg() (Numeric, error) {
	z, overflow := n.scaled.Neg()
	if overflow {
		return Numeric{}, errOverflow(numericKind, "-", n)
	}
	return Numeric{scaled: z}, nil
}

// Abs returns the absolute value of n.
func (n Numeric) Abs() (Numeric, error) {
	if n.scaled.IsNegative() {
		return n.Neg()
	}
	return n, nil
}

func outOfRangeInt128(v fixed.Int128) bool {
	return v.Abs().Cmp(maxNumericScaledMag) > 0
}

// numericOverflowBound equals MAX_SCALED*scale + scale/2, the tight
// pre-check the multiply path uses to avoid a full post-division range
// test (spec.md §4.5).
var numericOverflowBound = mustUint256WideProduct(maxNumericScaledMag, numericScaleU, numericScaleHalf)

func mustUint256WideProduct(maxScaled, scale, half fixed.Uint128) fixed.Uint256 {
	wide := fixed.ExtendMulUint128(maxScaled, scale)
	sum, carry := wide.Add(fixed.Uint256{half[0], half[1], 0, 0})
	if carry {
		panic("numeric: overflow bound computation overflowed")
	}
	return sum
}

// Mul returns n*m rounded half-away-from-zero to 9 fractional digits.
func (n Numeric) Mul(m Numeric) (Numeric, error) {
	an, am := n.scaled.Abs(), m.scaled.Abs()
	wide := fixed.ExtendMulUint128(an, am)
	if wide.Cmp(numericOverflowBound) > 0 {
		return Numeric{}, errOverflow(numericKind, "*", n, m)
	}
	sum, _ := wide.Add(fixed.Uint256{numericScaleHalf[0], numericScaleHalf[1], 0, 0})
	q256, _, ok := sum.QuoRem(fixed.Uint256{numericScaleU[0], numericScaleU[1], 0, 0})
	if !ok {
		return Numeric{}, errOverflow(numericKind, "*", n, m)
	}
	if !q256.FitsUint128() {
		return Numeric{}, errOverflow(numericKind, "*", n, m)
	}
	mag := q256.Lo128()
	negative := (n.scaled.Sign() < 0) != (m.scaled.Sign() < 0)
	scaled, ok := fixed.Int128FromSignAndAbs(negative, mag)
	if !ok || outOfRangeInt128(scaled) {
		return Numeric{}, errOverflow(numericKind, "*", n, m)
	}
	return Numeric{scaled: scaled}, nil
}

// Div returns n/m rounded half-away-from-zero to 9 fractional digits.
func (n Numeric) Div(m Numeric) (Numeric, error) {
	if m.scaled.IsZero() {
		return Numeric{}, errDivisionByZero(n.String(), m.String())
	}
	an, am := n.scaled.Abs(), m.scaled.Abs()
	numer := fixed.ExtendMulUint128(an, numericScaleU)
	half, _ := am.Shr(1)
	numer, carry := numer.Add(fixed.Uint256{half[0], half[1], 0, 0})
	if carry {
		return Numeric{}, errOverflow(numericKind, "/", n, m)
	}
	denom := fixed.Uint256{am[0], am[1], 0, 0}
	q256, _, ok := numer.QuoRem(denom)
	if !ok || !q256.FitsUint128() {
		return Numeric{}, errOverflow(numericKind, "/", n, m)
	}
	mag := q256.Lo128()
	negative := (n.scaled.Sign() < 0) != (m.scaled.Sign() < 0)
	scaled, ok := fixed.Int128FromSignAndAbs(negative, mag)
	if !ok || outOfRangeInt128(scaled) {
		return Numeric{}, errOverflow(numericKind, "/", n, m)
	}
	return Numeric{scaled: scaled}, nil
}

// IntegerDivide returns trunc(n/m) as a whole-number Numeric (i.e. the
// fractional part is always .000000000).
func (n Numeric) IntegerDivide(m Numeric) (Numeric, error) {
	if m.scaled.IsZero() {
		return Numeric{}, errDivisionByZero(n.String(), m.String())
	}
	an, am := n.scaled.Abs(), m.scaled.Abs()
	q, _, _ := an.QuoRem(am)
	maxQuotient, _, _ := maxNumericScaledMag.QuoRem(numericScaleU)
	if q.Cmp(maxQuotient) > 0 {
		return Numeric{}, errOverflow(numericKind, "DIV", n, m)
	}
	scaledMag, overflow := q.Mul(numericScaleU)
	if overflow {
		return Numeric{}, errOverflow(numericKind, "DIV", n, m)
	}
	negative := (n.scaled.Sign() < 0) != (m.scaled.Sign() < 0)
	scaled, ok := fixed.Int128FromSignAndAbs(negative, scaledMag)
	if !ok {
		return Numeric{}, errOverflow(numericKind, "DIV", n, m)
	}
	return Numeric{scaled: scaled}, nil
}

// Mod returns the signed remainder of n and m's underlying scaled
// integers, which preserves the sign of n because both operands share the
// same scale.
func (n Numeric) Mod(m Numeric) (Numeric, error) {
	if m.scaled.IsZero() {
		return Numeric{}, errDivisionByZero(n.String(), m.String())
	}
	an, am := n.scaled.Abs(), m.scaled.Abs()
	_, r, _ := an.QuoRem(am)
	scaled, _ := fixed.Int128FromSignAndAbs(n.scaled.IsNegative(), r)
	return Numeric{scaled: scaled}, nil
}
