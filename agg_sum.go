package numeric

import "github.com/calebcase/numeric/fixed"

// SumAgg incrementally accumulates SUM(x) and AVG(x) over a stream of
// Numeric values without overflowing: the Σx accumulator is 192 bits, wide
// enough that summing up to 2^63 MAX_SCALED-magnitude addends never
// wraps (spec.md §4.7).
type SumAgg struct {
	sum   fixed.Int192
	count int64
}

// Add folds x into the running sum.
func (a *SumAgg) Add(x Numeric) error {
	sum, overflow := a.sum.Add(fixed.Int192FromInt128(x.scaled))
	if overflow {
		return errOverflow(numericKind, "SUM", x)
	}
	a.sum = sum
	a.count++
	return nil
}

// Subtract removes x from the running sum, used by sliding-window
// aggregation.
func (a *SumAgg) Subtract(x Numeric) error {
	sum, overflow := a.sum.Sub(fixed.Int192FromInt128(x.scaled))
	if overflow {
		return errOverflow(numericKind, "SUM", x)
	}
	a.sum = sum
	a.count--
	return nil
}

// Merge combines another partial SumAgg into a, as required to merge
// aggregates computed over disjoint shards of a stream.
func (a *SumAgg) Merge(b SumAgg) error {
	sum, overflow := a.sum.Add(b.sum)
	if overflow {
		return errOverflow(numericKind, "SUM")
	}
	a.sum = sum
	a.count += b.count
	return nil
}

// Count reports the number of values folded in.
func (a SumAgg) Count() int64 { return a.count }

// Sum narrows the accumulator back to a Numeric, failing if the true sum
// exceeds the type's range.
func (a SumAgg) Sum() (Numeric, error) {
	scaled, fits := a.sum.NarrowToInt128()
	if !fits || outOfRangeInt128(scaled) {
		return Numeric{}, errOverflow(numericKind, "SUM")
	}
	return Numeric{scaled: scaled}, nil
}

// Average divides the accumulator by count, rounding away from zero, per
// spec.md §4.7.
func (a SumAgg) Average() (Numeric, error) {
	if a.count == 0 {
		return Numeric{}, errDivisionByZeroAvg()
	}
	q, ok := a.sum.QuoRoundAwayFromZero(fixed.Int192FromInt128(fixed.Int128FromInt64(a.count)))
	if !ok {
		return Numeric{}, errDivisionByZeroAvg()
	}
	scaled, fits := q.NarrowToInt128()
	if !fits || outOfRangeInt128(scaled) {
		return Numeric{}, errOverflow(numericKind, "AVG")
	}
	return Numeric{scaled: scaled}, nil
}

// BigSumAgg is SumAgg's 256-bit counterpart: the Σx accumulator is 320
// bits, wide enough for 2^63 MAX_SCALED-magnitude BigNumeric addends.
type BigSumAgg struct {
	sum   fixed.Int320
	count int64
}

func int320FromInt256(x fixed.Int256) fixed.Int320 {
	hi := uint64(0)
	if x.IsNegative() {
		hi = ^uint64(0)
	}
	return fixed.Int320{x[0], x[1], x[2], x[3], hi}
}

func narrowInt320ToInt256(x fixed.Int320) (fixed.Int256, bool) {
	z := fixed.Int256{x[0], x[1], x[2], x[3]}
	return z, int320FromInt256(z) == x
}

func (a *BigSumAgg) Add(x BigNumeric) error {
	sum, overflow := a.sum.Add(int320FromInt256(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "SUM", x)
	}
	a.sum = sum
	a.count++
	return nil
}

func (a *BigSumAgg) Subtract(x BigNumeric) error {
	sum, overflow := a.sum.Sub(int320FromInt256(x.scaled))
	if overflow {
		return errOverflow(bigNumericKind, "SUM", x)
	}
	a.sum = sum
	a.count--
	return nil
}

func (a *BigSumAgg) Merge(b BigSumAgg) error {
	sum, overflow := a.sum.Add(b.sum)
	if overflow {
		return errOverflow(bigNumericKind, "SUM")
	}
	a.sum = sum
	a.count += b.count
	return nil
}

func (a BigSumAgg) Count() int64 { return a.count }

func (a BigSumAgg) Sum() (BigNumeric, error) {
	scaled, fits := narrowInt320ToInt256(a.sum)
	if !fits || scaled.Abs().Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "SUM")
	}
	return BigNumeric{scaled: scaled}, nil
}

// Average divides the accumulator by count, rounding away from zero.
func (a BigSumAgg) Average() (BigNumeric, error) {
	if a.count == 0 {
		return BigNumeric{}, errDivisionByZeroAvg()
	}
	q, ok := a.sum.QuoRoundAwayFromZero(int320FromInt256(fixed.Int256FromInt64(a.count)))
	if !ok {
		return BigNumeric{}, errDivisionByZeroAvg()
	}
	scaled, fits := narrowInt320ToInt256(q)
	if !fits || scaled.Abs().Cmp(maxBigNumericScaledMag) > 0 {
		return BigNumeric{}, errOverflow(bigNumericKind, "AVG")
	}
	return BigNumeric{scaled: scaled}, nil
}
