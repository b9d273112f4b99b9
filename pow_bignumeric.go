package numeric

import "math"

// OneBig is the canonical BigNumeric value 1.
var OneBig = BigNumeric{scaled: bigNumericScale}

// Power returns n raised to exp, mirroring Numeric.Power at 256-bit width.
func (n BigNumeric) Power(exp BigNumeric) (BigNumeric, error) {
	if exp.IsZero() {
		return OneBig, nil
	}
	absExp, _ := exp.Abs()
	k := bigNumericTrunc0(absExp)
	frac, err := absExp.Sub(k)
	if err != nil {
		return BigNumeric{}, err
	}
	if n.Sign() < 0 && !frac.IsZero() {
		return BigNumeric{}, errNegativeFractionalPower(bigNumericKind)
	}
	kU, ok := bigNumericToUint64Capped(k)
	if !ok {
		return BigNumeric{}, errOverflow(bigNumericKind, "POW", n, exp)
	}
	if exp.Sign() > 0 {
		pos, err := powIntBigNumeric(n, kU)
		if err != nil {
			return BigNumeric{}, err
		}
		if frac.IsZero() {
			return pos, nil
		}
		fracRes, err := fracPowerBigNumeric(n, frac)
		if err != nil {
			return BigNumeric{}, err
		}
		return pos.Mul(fracRes)
	}

	absBase, _ := n.Abs()
	if absBase.Cmp(OneBig) > 0 {
		pos, err := powIntBigNumeric(n, kU)
		if err != nil {
			return BigNumeric{}, err
		}
		if !frac.IsZero() {
			fracRes, err := fracPowerBigNumeric(n, frac)
			if err != nil {
				return BigNumeric{}, err
			}
			if pos, err = pos.Mul(fracRes); err != nil {
				return BigNumeric{}, err
			}
		}
		return OneBig.Div(pos)
	}

	inv, err := OneBig.Div(n)
	if err != nil {
		return BigNumeric{}, err
	}
	pos, err := powIntBigNumeric(inv, kU)
	if err != nil {
		return BigNumeric{}, err
	}
	if frac.IsZero() {
		return pos, nil
	}
	fracRes, err := fracPowerBigNumeric(inv, frac)
	if err != nil {
		return BigNumeric{}, err
	}
	return pos.Mul(fracRes)
}

func bigNumericTrunc0(x BigNumeric) BigNumeric {
	z, _ := x.Trunc(0)
	return z
}

// bigNumericToUint64Capped mirrors numericToUint64Capped: it only rejects
// an integer exponent part that doesn't fit a uint64 word, not one that is
// merely large — powIntBigNumeric's repeated squaring stays O(log2 k), and
// a base of magnitude above 1 overflows via the checked Mul calls inside
// that loop (one below 1 shrinks toward zero) long before the loop's length
// becomes a concern.
func bigNumericToUint64Capped(x BigNumeric) (uint64, bool) {
	q, r, ok := x.scaled.Abs().QuoRem(bigNumericScaleU)
	if !ok || !r.IsZero() {
		return 0, false
	}
	if q[1] != 0 || q[2] != 0 || q[3] != 0 {
		return 0, false
	}
	return q[0], true
}

func powIntBigNumeric(base BigNumeric, k uint64) (BigNumeric, error) {
	result := OneBig
	b := base
	for k > 0 {
		if k&1 == 1 {
			var err error
			result, err = result.Mul(b)
			if err != nil {
				return BigNumeric{}, err
			}
		}
		k >>= 1
		if k > 0 {
			var err error
			b, err = b.Mul(b)
			if err != nil {
				return BigNumeric{}, err
			}
		}
	}
	return result, nil
}

func fracPowerBigNumeric(base, frac BigNumeric) (BigNumeric, error) {
	r := math.Pow(base.ToDouble(), frac.ToDouble())
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return BigNumeric{}, errOutOfRange(bigNumericKind, r)
	}
	return BigNumericFromDouble(r)
}
