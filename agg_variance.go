package numeric

import (
	"math"

	"github.com/calebcase/numeric/fixed"
)

// VarianceAgg incrementally accumulates Σx and Σx² for VAR_POP/VAR_SAMP/
// STDDEV_POP/STDDEV_SAMP over a stream of Numeric values. Σx uses the same
// 192-bit width as SumAgg; Σx² uses the 320-bit width, wide enough for the
// sum of up to 2^63 squared MAX_SCALED magnitudes (spec.md §4.7).
type VarianceAgg struct {
	sumX  fixed.Int192
	sumX2 fixed.Int320
	count int64
}

// numericScaleSquared and bigNumericScaleSquared convert second moments
// (Σx², Σxy), which carry the scale once per factor, back to the decimal
// domain.
const (
	numericScaleSquared    = 1e18
	bigNumericScaleSquared = 1e76
)

func squareToInt320(x fixed.Int128) fixed.Int320 {
	mag := x.Abs()
	wide := fixed.ExtendMulUint128(mag, mag)
	return fixed.Int320{wide[0], wide[1], wide[2], wide[3], 0}
}

// Add folds x into the running moments.
func (a *VarianceAgg) Add(x Numeric) error {
	sumX, overflow := a.sumX.Add(fixed.Int192FromInt128(x.scaled))
	if overflow {
		return errOverflow(numericKind, "VARIANCE", x)
	}
	sumX2, overflow := a.sumX2.Add(squareToInt320(x.scaled))
	if overflow {
		return errOverflow(numericKind, "VARIANCE", x)
	}
	a.sumX, a.sumX2 = sumX, sumX2
	a.count++
	return nil
}

// Subtract removes x from the running moments.
func (a *VarianceAgg) Subtract(x Numeric) error {
	sumX, overflow := a.sumX.Sub(fixed.Int192FromInt128(x.scaled))
	if overflow {
		return errOverflow(numericKind, "VARIANCE", x)
	}
	sumX2, overflow := a.sumX2.Sub(squareToInt320(x.scaled))
	if overflow {
		return errOverflow(numericKind, "VARIANCE", x)
	}
	a.sumX, a.sumX2 = sumX, sumX2
	a.count--
	return nil
}

// Merge combines another partial VarianceAgg into a.
func (a *VarianceAgg) Merge(b VarianceAgg) error {
	sumX, overflow := a.sumX.Add(b.sumX)
	if overflow {
		return errOverflow(numericKind, "VARIANCE")
	}
	sumX2, overflow := a.sumX2.Add(b.sumX2)
	if overflow {
		return errOverflow(numericKind, "VARIANCE")
	}
	a.sumX, a.sumX2 = sumX, sumX2
	a.count += b.count
	return nil
}

func (a VarianceAgg) Count() int64 { return a.count }

// VariancePop returns the population variance, or ok=false if count is 0.
func (a VarianceAgg) VariancePop() (v float64, ok bool) {
	if a.count == 0 {
		return 0, false
	}
	n := float64(a.count)
	mean := a.sumX.Float64() / n
	v = (a.sumX2.Float64()/n - mean*mean) / numericScaleSquared
	if v < 0 {
		v = 0
	}
	return v, true
}

// VarianceSamp returns the sample variance, or ok=false if count < 2.
func (a VarianceAgg) VarianceSamp() (v float64, ok bool) {
	if a.count < 2 {
		return 0, false
	}
	n := float64(a.count)
	mean := a.sumX.Float64() / n
	numerator := a.sumX2.Float64() - n*mean*mean
	v = numerator / (n - 1) / numericScaleSquared
	if v < 0 {
		v = 0
	}
	return v, true
}

func (a VarianceAgg) StddevPop() (float64, bool) {
	v, ok := a.VariancePop()
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

func (a VarianceAgg) StddevSamp() (float64, bool) {
	v, ok := a.VarianceSamp()
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

// BigVarianceAgg is VarianceAgg's BigNumeric counterpart. Σx uses the same
// 320-bit width BigSumAgg uses; Σx² uses the 576-bit fixed.Int576 width,
// wide enough for the sum of up to 2^63 squared MAX_SCALED BigNumeric
// magnitudes, following the same headroom pattern as VarianceAgg's Int320
// (spec.md §4.7, §9 — intermediate accumulators stay exact until the
// terminal query folds them into a double).
type BigVarianceAgg struct {
	sumX  fixed.Int320
	sumX2 fixed.Int576
	count int64
}

func squareToInt576(x fixed.Int256) fixed.Int576 {
	mag := x.Abs()
	wide := fixed.ExtendMulUint256(mag, mag)
	return fixed.Int576{wide[0], wide[1], wide[2], wide[3], wide[4], wide[5], wide[6], wide[7], 0}
}

func (a *BigVarianceAgg) Add(x BigNumeric) error {
	sumX, overflow := a.sumX.Add(int320FromInt256(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "VARIANCE", x)
	}
	sumX2, overflow := a.sumX2.Add(squareToInt576(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "VARIANCE", x)
	}
	a.sumX, a.sumX2 = sumX, sumX2
	a.count++
	return nil
}

func (a *BigVarianceAgg) Subtract(x BigNumeric) error {
	sumX, overflow := a.sumX.Sub(int320FromInt256(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "VARIANCE", x)
	}
	sumX2, overflow := a.sumX2.Sub(squareToInt576(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "VARIANCE", x)
	}
	a.sumX, a.sumX2 = sumX, sumX2
	a.count--
	return nil
}

func (a *BigVarianceAgg) Merge(b BigVarianceAgg) error {
	sumX, overflow := a.sumX.Add(b.sumX)
	if overflow {
		return errOverflow(bigNumericKind, "VARIANCE")
	}
	sumX2, overflow := a.sumX2.Add(b.sumX2)
	if overflow {
		return errOverflow(bigNumericKind, "VARIANCE")
	}
	a.sumX, a.sumX2 = sumX, sumX2
	a.count += b.count
	return nil
}

func (a BigVarianceAgg) Count() int64 { return a.count }

func (a BigVarianceAgg) VariancePop() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	n := float64(a.count)
	mean := a.sumX.Float64() / n
	v := (a.sumX2.Float64()/n - mean*mean) / bigNumericScaleSquared
	if v < 0 {
		v = 0
	}
	return v, true
}

func (a BigVarianceAgg) VarianceSamp() (float64, bool) {
	if a.count < 2 {
		return 0, false
	}
	n := float64(a.count)
	mean := a.sumX.Float64() / n
	v := (a.sumX2.Float64() - n*mean*mean) / (n - 1) / bigNumericScaleSquared
	if v < 0 {
		v = 0
	}
	return v, true
}

func (a BigVarianceAgg) StddevPop() (float64, bool) {
	v, ok := a.VariancePop()
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

func (a BigVarianceAgg) StddevSamp() (float64, bool) {
	v, ok := a.VarianceSamp()
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}
