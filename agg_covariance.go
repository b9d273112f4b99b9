package numeric

import (
	"math"

	"github.com/calebcase/numeric/fixed"
)

// CovarianceAgg incrementally accumulates the five moments (Σx, Σy, Σx²,
// Σy², Σxy) needed for COVAR_POP/COVAR_SAMP/CORR over a stream of (x, y)
// pairs — the "up to five FixedInts" the wire format in spec.md §4.6
// anticipates for an aggregator.
type CovarianceAgg struct {
	sumX, sumY   fixed.Int192
	sumX2, sumY2 fixed.Int320
	sumXY        fixed.Int320
	count        int64
}

func productToInt320(x, y fixed.Int128) fixed.Int320 {
	mag := fixed.ExtendMulUint128(x.Abs(), y.Abs())
	negative := x.IsNegative() != y.IsNegative()
	z := fixed.Int320{mag[0], mag[1], mag[2], mag[3], 0}
	if negative {
		z, _ = z.Neg()
	}
	return z
}

// Add folds the pair (x, y) into the running moments.
func (a *CovarianceAgg) Add(x, y Numeric) error {
	sumX, overflow := a.sumX.Add(fixed.Int192FromInt128(x.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumY, overflow := a.sumY.Add(fixed.Int192FromInt128(y.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumX2, overflow := a.sumX2.Add(squareToInt320(x.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumY2, overflow := a.sumY2.Add(squareToInt320(y.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumXY, overflow := a.sumXY.Add(productToInt320(x.scaled, y.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY = sumX, sumY, sumX2, sumY2, sumXY
	a.count++
	return nil
}

// Subtract removes the pair (x, y) from the running moments.
func (a *CovarianceAgg) Subtract(x, y Numeric) error {
	sumX, overflow := a.sumX.Sub(fixed.Int192FromInt128(x.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumY, overflow := a.sumY.Sub(fixed.Int192FromInt128(y.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumX2, overflow := a.sumX2.Sub(squareToInt320(x.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumY2, overflow := a.sumY2.Sub(squareToInt320(y.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	sumXY, overflow := a.sumXY.Sub(productToInt320(x.scaled, y.scaled))
	if overflow {
		return errOverflow(numericKind, "COVARIANCE", x, y)
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY = sumX, sumY, sumX2, sumY2, sumXY
	a.count--
	return nil
}

// Merge combines another partial CovarianceAgg into a.
func (a *CovarianceAgg) Merge(b CovarianceAgg) error {
	sumX, overflow := a.sumX.Add(b.sumX)
	if overflow {
		return errOverflow(numericKind, "COVARIANCE")
	}
	sumY, overflow := a.sumY.Add(b.sumY)
	if overflow {
		return errOverflow(numericKind, "COVARIANCE")
	}
	sumX2, overflow := a.sumX2.Add(b.sumX2)
	if overflow {
		return errOverflow(numericKind, "COVARIANCE")
	}
	sumY2, overflow := a.sumY2.Add(b.sumY2)
	if overflow {
		return errOverflow(numericKind, "COVARIANCE")
	}
	sumXY, overflow := a.sumXY.Add(b.sumXY)
	if overflow {
		return errOverflow(numericKind, "COVARIANCE")
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY = sumX, sumY, sumX2, sumY2, sumXY
	a.count += b.count
	return nil
}

func (a CovarianceAgg) Count() int64 { return a.count }

func (a CovarianceAgg) covarianceNumerator() (n, meanX, meanY, num float64) {
	n = float64(a.count)
	meanX = a.sumX.Float64() / n
	meanY = a.sumY.Float64() / n
	num = a.sumXY.Float64() - n*meanX*meanY
	return
}

// CovariancePop returns the population covariance, or ok=false if count
// is 0.
func (a CovarianceAgg) CovariancePop() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	n, _, _, num := a.covarianceNumerator()
	return num / n / numericScaleSquared, true
}

// CovarianceSamp returns the sample covariance, or ok=false if count < 2.
func (a CovarianceAgg) CovarianceSamp() (float64, bool) {
	if a.count < 2 {
		return 0, false
	}
	n, _, _, num := a.covarianceNumerator()
	return num / (n - 1) / numericScaleSquared, true
}

// Correlation returns Pearson's correlation coefficient, or ok=false if
// count < 2 or either variable has zero variance.
func (a CovarianceAgg) Correlation() (float64, bool) {
	if a.count < 2 {
		return 0, false
	}
	n, meanX, meanY, covNum := a.covarianceNumerator()
	varNumX := a.sumX2.Float64() - n*meanX*meanX
	varNumY := a.sumY2.Float64() - n*meanY*meanY
	if varNumX <= 0 || varNumY <= 0 {
		return 0, false
	}
	return covNum / math.Sqrt(varNumX*varNumY), true
}

// BigCovarianceAgg is CovarianceAgg's BigNumeric counterpart: Σx, Σy use the
// 320-bit width BigSumAgg uses, and Σx², Σy², Σxy use the 576-bit
// fixed.Int576 width BigVarianceAgg uses for its second moment, keeping all
// five moments exact until the terminal query folds them into a double
// (spec.md §4.7, §9).
type BigCovarianceAgg struct {
	sumX, sumY   fixed.Int320
	sumX2, sumY2 fixed.Int576
	sumXY        fixed.Int576
	count        int64
}

func productToInt576(x, y fixed.Int256) fixed.Int576 {
	mag := fixed.ExtendMulUint256(x.Abs(), y.Abs())
	negative := x.IsNegative() != y.IsNegative()
	z := fixed.Int576{mag[0], mag[1], mag[2], mag[3], mag[4], mag[5], mag[6], mag[7], 0}
	if negative {
		z, _ = z.Neg()
	}
	return z
}

func (a *BigCovarianceAgg) Add(x, y BigNumeric) error {
	sumX, overflow := a.sumX.Add(int320FromInt256(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumY, overflow := a.sumY.Add(int320FromInt256(y.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumX2, overflow := a.sumX2.Add(squareToInt576(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumY2, overflow := a.sumY2.Add(squareToInt576(y.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumXY, overflow := a.sumXY.Add(productToInt576(x.scaled, y.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY = sumX, sumY, sumX2, sumY2, sumXY
	a.count++
	return nil
}

func (a *BigCovarianceAgg) Subtract(x, y BigNumeric) error {
	sumX, overflow := a.sumX.Sub(int320FromInt256(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumY, overflow := a.sumY.Sub(int320FromInt256(y.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumX2, overflow := a.sumX2.Sub(squareToInt576(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumY2, overflow := a.sumY2.Sub(squareToInt576(y.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	sumXY, overflow := a.sumXY.Sub(productToInt576(x.scaled, y.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE", x, y)
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY = sumX, sumY, sumX2, sumY2, sumXY
	a.count--
	return nil
}

func (a *BigCovarianceAgg) Merge(b BigCovarianceAgg) error {
	sumX, overflow := a.sumX.Add(b.sumX)
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE")
	}
	sumY, overflow := a.sumY.Add(b.sumY)
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE")
	}
	sumX2, overflow := a.sumX2.Add(b.sumX2)
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE")
	}
	sumY2, overflow := a.sumY2.Add(b.sumY2)
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE")
	}
	sumXY, overflow := a.sumXY.Add(b.sumXY)
	if overflow {
		return errOverflow(bigNumericKind, "COVARIANCE")
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY = sumX, sumY, sumX2, sumY2, sumXY
	a.count += b.count
	return nil
}

func (a BigCovarianceAgg) Count() int64 { return a.count }

func (a BigCovarianceAgg) covarianceNumerator() (n, meanX, meanY, num float64) {
	n = float64(a.count)
	meanX = a.sumX.Float64() / n
	meanY = a.sumY.Float64() / n
	num = a.sumXY.Float64() - n*meanX*meanY
	return
}

func (a BigCovarianceAgg) CovariancePop() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	n, _, _, num := a.covarianceNumerator()
	return num / n / bigNumericScaleSquared, true
}

func (a BigCovarianceAgg) CovarianceSamp() (float64, bool) {
	if a.count < 2 {
		return 0, false
	}
	n, _, _, num := a.covarianceNumerator()
	return num / (n - 1) / bigNumericScaleSquared, true
}

func (a BigCovarianceAgg) Correlation() (float64, bool) {
	if a.count < 2 {
		return 0, false
	}
	n, meanX, meanY, covNum := a.covarianceNumerator()
	varNumX := a.sumX2.Float64() - n*meanX*meanX
	varNumY := a.sumY2.Float64() - n*meanY*meanY
	if varNumX <= 0 || varNumY <= 0 {
		return 0, false
	}
	return covNum / math.Sqrt(varNumX*varNumY), true
}
