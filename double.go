package numeric

import (
	"math"
	"math/big"

	"github.com/calebcase/numeric/fixed"
)

// scaledToDouble converts an exact scaled decimal integer (given as its
// base-10 digit string, sign included) by scale (also a base-10 digit
// string) to the nearest float64. big.Rat.Float64 performs the
// correctly-rounded division spec.md §4.4 describes as a sticky-bit
// shift-and-OR: both compute the IEEE-754 round-to-nearest-even result of
// dividing the exact rational scaled/scale, so the observable behavior is
// identical without hand-rolling the bit-level shift.
func scaledToDouble(scaledDecimal, scaleDecimal string) float64 {
	num, ok := new(big.Int).SetString(scaledDecimal, 10)
	if !ok {
		panic("numeric: bad scaled decimal " + scaledDecimal)
	}
	den, ok := new(big.Int).SetString(scaleDecimal, 10)
	if !ok {
		panic("numeric: bad scale decimal " + scaleDecimal)
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}

// doubleToScaledDecimal computes round_half_away_from_zero(d * scale) and
// returns it as a base-10 digit string, or ok=false if d is not finite.
func doubleToScaledDecimal(d float64, scaleDecimal string) (string, bool) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return "", false
	}
	r := new(big.Rat).SetFloat64(d)
	scale, ok := new(big.Int).SetString(scaleDecimal, 10)
	if !ok {
		panic("numeric: bad scale decimal " + scaleDecimal)
	}
	r.Mul(r, new(big.Rat).SetInt(scale))
	num, den := r.Num(), r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	rem.Abs(rem)
	twice := new(big.Int).Lsh(rem, 1)
	if twice.CmpAbs(den) >= 0 {
		if q.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q.String(), true
}

// ToDouble converts n to the nearest float64, per spec.md §4.4.
func (n Numeric) ToDouble() float64 {
	return scaledToDouble(n.scaled.String(), numericScaleU.String())
}

// NumericFromDouble converts d to a Numeric, rejecting NaN, infinities and
// magnitudes that overflow the type's range.
func NumericFromDouble(d float64) (Numeric, error) {
	digits, ok := doubleToScaledDecimal(d, numericScaleU.String())
	if !ok {
		return Numeric{}, errNonFinite(numericKind, d)
	}
	scaled, ok := fixed.Int128FromDecimalString(digits)
	if !ok || outOfRangeInt128(scaled) {
		return Numeric{}, errOutOfRange(numericKind, d)
	}
	return Numeric{scaled: scaled}, nil
}

// ToDouble converts n to the nearest float64, per spec.md §4.4.
func (n BigNumeric) ToDouble() float64 {
	return scaledToDouble(n.scaled.String(), bigNumericScaleU.String())
}

// BigNumericFromDouble converts d to a BigNumeric, rejecting NaN,
// infinities and magnitudes that overflow the type's range.
func BigNumericFromDouble(d float64) (BigNumeric, error) {
	digits, ok := doubleToScaledDecimal(d, bigNumericScaleU.String())
	if !ok {
		return BigNumeric{}, errNonFinite(bigNumericKind, d)
	}
	scaled, ok := fixed.Int256FromDecimalString(digits)
	if !ok || scaled.Abs().Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errOutOfRange(bigNumericKind, d)
	}
	return BigNumeric{scaled: scaled}, nil
}
