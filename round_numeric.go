package numeric

import "github.com/calebcase/numeric/fixed"

// Round returns n rounded to digits fractional digits, half away from zero.
// digits may be negative to round into the integer part.
func (n Numeric) Round(digits int) (Numeric, error) {
	return roundNumeric(n, digits, roundNearestAwayFromZero)
}

// Trunc returns n truncated toward zero to digits fractional digits.
func (n Numeric) Trunc(digits int) (Numeric, error) {
	return roundNumeric(n, digits, roundTrunc)
}

// Ceil returns the smallest integer-valued Numeric greater than or equal
// to n.
func (n Numeric) Ceil() (Numeric, error) {
	return roundNumeric(n, 0, roundCeil)
}

// Floor returns the largest integer-valued Numeric less than or equal to n.
func (n Numeric) Floor() (Numeric, error) {
	return roundNumeric(n, 0, roundFloor)
}

func roundNumeric(n Numeric, digits int, mode roundMode) (Numeric, error) {
	if digits >= numericScaleDigits {
		return n, nil
	}
	extra := numericScaleDigits - digits
	divisor, ok := pow10Uint128(extra)
	if !ok {
		// The requested precision is coarser than the type's entire range;
		// every value truncates to zero (there is nothing left to round).
		return Zero, nil
	}
	mag := n.scaled.Abs()
	q, r, ok := mag.QuoRem(divisor)
	if !ok {
		return Zero, nil
	}
	negative := n.scaled.IsNegative()
	roundUp := false
	switch mode {
	case roundTrunc:
		roundUp = false
	case roundNearestAwayFromZero:
		twice, overflow := r.Shl(1)
		roundUp = overflow || twice.Cmp(divisor) >= 0
	case roundCeil:
		roundUp = !negative && !r.IsZero()
	case roundFloor:
		roundUp = negative && !r.IsZero()
	}
	if roundUp {
		var overflow bool
		q, overflow = q.Add(fixed.Uint128FromUint64(1))
		if overflow {
			return Numeric{}, errOverflow(numericKind, "ROUND", n)
		}
	}
	scaledMag, overflow := q.Mul(divisor)
	if overflow {
		return Numeric{}, errOverflow(numericKind, "ROUND", n)
	}
	scaled, ok := fixed.Int128FromSignAndAbs(negative, scaledMag)
	if !ok || outOfRangeInt128(scaled) {
		return Numeric{}, errOverflow(numericKind, "ROUND", n)
	}
	return Numeric{scaled: scaled}, nil
}
