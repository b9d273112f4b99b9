package numeric

import "math"

// One is the canonical Numeric value 1.
var One = Numeric{scaled: numericScale}

// Power returns n raised to exp, per spec.md §4.5: a negative base may only
// be raised to an integer exponent, the integer part is computed by binary
// exponentiation in which every multiply rounds to 9 fractional digits (so
// fractional bases can lose precision across steps), and any fractional
// part is folded in through the double bridge (and is therefore only
// approximately precise).
func (n Numeric) Power(exp Numeric) (Numeric, error) {
	if exp.IsZero() {
		return One, nil
	}
	absExp, _ := exp.Abs()
	k := numericTrunc0(absExp)
	frac, err := absExp.Sub(k)
	if err != nil {
		return Numeric{}, err
	}
	if n.Sign() < 0 && !frac.IsZero() {
		return Numeric{}, errNegativeFractionalPower(numericKind)
	}
	kU, ok := numericToUint64Capped(k)
	if !ok {
		return Numeric{}, errOverflow(numericKind, "POW", n, exp)
	}
	if exp.Sign() > 0 {
		pos, err := powIntNumeric(n, kU)
		if err != nil {
			return Numeric{}, err
		}
		if frac.IsZero() {
			return pos, nil
		}
		fracRes, err := fracPowerNumeric(n, frac)
		if err != nil {
			return Numeric{}, err
		}
		return pos.Mul(fracRes)
	}

	absBase, _ := n.Abs()
	if absBase.Cmp(One) > 0 {
		pos, err := powIntNumeric(n, kU)
		if err != nil {
			return Numeric{}, err
		}
		if !frac.IsZero() {
			fracRes, err := fracPowerNumeric(n, frac)
			if err != nil {
				return Numeric{}, err
			}
			if pos, err = pos.Mul(fracRes); err != nil {
				return Numeric{}, err
			}
		}
		return One.Div(pos)
	}

	inv, err := One.Div(n)
	if err != nil {
		return Numeric{}, err
	}
	pos, err := powIntNumeric(inv, kU)
	if err != nil {
		return Numeric{}, err
	}
	if frac.IsZero() {
		return pos, nil
	}
	fracRes, err := fracPowerNumeric(inv, frac)
	if err != nil {
		return Numeric{}, err
	}
	return pos.Mul(fracRes)
}

func numericTrunc0(x Numeric) Numeric {
	z, _ := x.Trunc(0)
	return z
}

// numericToUint64Capped narrows the integer part of an exponent to a
// uint64, failing only when it doesn't fit that word — powIntNumeric's
// binary exponentiation is O(log2 k), so there is no need to reject large
// but representable exponents; a base with |base| > 1 raised to a huge
// exponent overflows on its own via the checked Mul calls inside the loop,
// and one with |base| < 1 shrinks toward zero, long before the loop itself
// becomes a cost.
func numericToUint64Capped(x Numeric) (uint64, bool) {
	q, r, ok := x.scaled.Abs().QuoRemSmall(uint64(numericScale[0]))
	if !ok || r != 0 {
		return 0, false
	}
	if q[1] != 0 {
		return 0, false
	}
	return q[0], true
}

func powIntNumeric(base Numeric, k uint64) (Numeric, error) {
	result := One
	b := base
	for k > 0 {
		if k&1 == 1 {
			var err error
			result, err = result.Mul(b)
			if err != nil {
				return Numeric{}, err
			}
		}
		k >>= 1
		if k > 0 {
			var err error
			b, err = b.Mul(b)
			if err != nil {
				return Numeric{}, err
			}
		}
	}
	return result, nil
}

// fracPowerNumeric handles the fractional part of an exponent through the
// double bridge; spec.md §4.5 explicitly accepts limited precision here.
func fracPowerNumeric(base, frac Numeric) (Numeric, error) {
	r := math.Pow(base.ToDouble(), frac.ToDouble())
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Numeric{}, errOutOfRange(numericKind, r)
	}
	return NumericFromDouble(r)
}
