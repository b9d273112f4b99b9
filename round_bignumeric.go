package numeric

import "github.com/calebcase/numeric/fixed"

// Round returns n rounded to digits fractional digits, half away from zero.
func (n BigNumeric) Round(digits int) (BigNumeric, error) {
	return roundBigNumeric(n, digits, roundNearestAwayFromZero)
}

// Trunc returns n truncated toward zero to digits fractional digits.
func (n BigNumeric) Trunc(digits int) (BigNumeric, error) {
	return roundBigNumeric(n, digits, roundTrunc)
}

// Ceil returns the smallest integer-valued BigNumeric greater than or
// equal to n.
func (n BigNumeric) Ceil() (BigNumeric, error) {
	return roundBigNumeric(n, 0, roundCeil)
}

// Floor returns the largest integer-valued BigNumeric less than or equal
// to n.
func (n BigNumeric) Floor() (BigNumeric, error) {
	return roundBigNumeric(n, 0, roundFloor)
}

func roundBigNumeric(n BigNumeric, digits int, mode roundMode) (BigNumeric, error) {
	if digits >= bigNumericScaleDigits {
		return n, nil
	}
	extra := bigNumericScaleDigits - digits
	divisor, ok := pow10Uint256(extra)
	if !ok {
		return ZeroBig, nil
	}
	mag := n.scaled.Abs()
	q, r, ok := mag.QuoRem(divisor)
	if !ok {
		return ZeroBig, nil
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
		q, overflow = q.Add(fixed.Uint256FromUint64(1))
		if overflow {
			return BigNumeric{}, errOverflow(bigNumericKind, "ROUND", n)
		}
	}
	scaledMag, overflow := q.Mul(divisor)
	if overflow {
		return BigNumeric{}, errOverflow(bigNumericKind, "ROUND", n)
	}
	if scaledMag.Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "ROUND", n)
	}
	scaled, ok := fixed.Int256FromSignAndAbs(negative, scaledMag)
	if !ok {
		return BigNumeric{}, errOverflow(bigNumericKind, "ROUND", n)
	}
	return BigNumeric{scaled: scaled}, nil
}
