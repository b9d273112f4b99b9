package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNumeric(t *testing.T, s string) Numeric {
	t.Helper()
	n, err := NumericFromString(s)
	require.NoError(t, err)
	return n
}

func mustBigNumeric(t *testing.T, s string) BigNumeric {
	t.Helper()
	n, err := BigNumericFromString(s)
	require.NoError(t, err)
	return n
}

func TestSumAggBasic(t *testing.T) {
	var a SumAgg

	values := []string{"1.5", "2.5", "-1", "3"}
	for _, v := range values {
		require.NoError(t, a.Add(mustNumeric(t, v)))
	}

	require.Equal(t, int64(4), a.Count())

	sum, err := a.Sum()
	require.NoError(t, err)
	require.Equal(t, "6", sum.String())

	avg, err := a.Average()
	require.NoError(t, err)
	require.Equal(t, "1.5", avg.String())
}

func TestSumAggSubtractAndMerge(t *testing.T) {
	var a, b SumAgg

	require.NoError(t, a.Add(mustNumeric(t, "10")))
	require.NoError(t, a.Add(mustNumeric(t, "5")))
	require.NoError(t, a.Subtract(mustNumeric(t, "5")))

	sum, err := a.Sum()
	require.NoError(t, err)
	require.Equal(t, "10", sum.String())

	require.NoError(t, b.Add(mustNumeric(t, "3")))
	require.NoError(t, a.Merge(b))

	sum2, err := a.Sum()
	require.NoError(t, err)
	require.Equal(t, "13", sum2.String())
	require.Equal(t, int64(2), a.Count())
}

func TestSumAggAverageOfEmptyIsError(t *testing.T) {
	var a SumAgg
	_, err := a.Average()
	require.Error(t, err)
	require.True(t, DivisionByZero.Has(err))
}

func TestBigSumAggExactAverage(t *testing.T) {
	var a BigSumAgg

	require.NoError(t, a.Add(mustBigNumeric(t, "10")))
	require.NoError(t, a.Add(mustBigNumeric(t, "3")))
	require.NoError(t, a.Add(mustBigNumeric(t, "3")))

	sum, err := a.Sum()
	require.NoError(t, err)
	require.Equal(t, "16", sum.String())

	avg, err := a.Average()
	require.NoError(t, err)
	// 16/3 = 5.33..., rounded half away from zero at the last of 38
	// fractional digits; the dropped digit is 3, so nothing is added.
	require.Equal(t, "5.33333333333333333333333333333333333333", avg.String())
}

func TestVarianceAggPopAndSamp(t *testing.T) {
	var a VarianceAgg

	for _, v := range []string{"2", "4", "4", "4", "5", "5", "7", "9"} {
		require.NoError(t, a.Add(mustNumeric(t, v)))
	}

	pop, ok := a.VariancePop()
	require.True(t, ok)
	require.InDelta(t, 4.0, pop, 1e-9)

	samp, ok := a.VarianceSamp()
	require.True(t, ok)
	require.InDelta(t, 32.0/7.0, samp, 1e-9)

	stddevPop, ok := a.StddevPop()
	require.True(t, ok)
	require.InDelta(t, 2.0, stddevPop, 1e-9)
}

func TestVarianceAggMergeAssociativity(t *testing.T) {
	values := []string{"1", "2", "3", "4", "5", "6"}

	var whole VarianceAgg
	for _, v := range values {
		require.NoError(t, whole.Add(mustNumeric(t, v)))
	}
	wholePop, ok := whole.VariancePop()
	require.True(t, ok)

	var left, right VarianceAgg
	for _, v := range values[:3] {
		require.NoError(t, left.Add(mustNumeric(t, v)))
	}
	for _, v := range values[3:] {
		require.NoError(t, right.Add(mustNumeric(t, v)))
	}
	require.NoError(t, left.Merge(right))

	mergedPop, ok := left.VariancePop()
	require.True(t, ok)
	require.InDelta(t, wholePop, mergedPop, 1e-9)
}

func TestVarianceAggInsufficientCount(t *testing.T) {
	var a VarianceAgg
	_, ok := a.VariancePop()
	require.False(t, ok)

	require.NoError(t, a.Add(mustNumeric(t, "1")))
	_, ok = a.VarianceSamp()
	require.False(t, ok)
}

func TestCovarianceAggAndCorrelation(t *testing.T) {
	var a CovarianceAgg

	xs := []string{"1", "2", "3", "4", "5"}
	ys := []string{"2", "4", "6", "8", "10"}
	for i := range xs {
		require.NoError(t, a.Add(mustNumeric(t, xs[i]), mustNumeric(t, ys[i])))
	}

	corr, ok := a.Correlation()
	require.True(t, ok)
	require.InDelta(t, 1.0, corr, 1e-9)

	pop, ok := a.CovariancePop()
	require.True(t, ok)
	require.True(t, pop > 0)
}

func TestCovarianceAggZeroVarianceHasNoCorrelation(t *testing.T) {
	var a CovarianceAgg

	for _, x := range []string{"1", "2", "3"} {
		require.NoError(t, a.Add(mustNumeric(t, x), mustNumeric(t, "5")))
	}

	_, ok := a.Correlation()
	require.False(t, ok)
}

func TestBigVarianceAggPopAndSamp(t *testing.T) {
	var a BigVarianceAgg

	for _, v := range []string{"2", "4", "4", "4", "5", "5", "7", "9"} {
		require.NoError(t, a.Add(mustBigNumeric(t, v)))
	}

	pop, ok := a.VariancePop()
	require.True(t, ok)
	require.InDelta(t, 4.0, pop, 1e-9)
}

// TestBigVarianceAggMergeAssociativity mirrors
// TestVarianceAggMergeAssociativity at BigNumeric width: BigVarianceAgg
// accumulates Σx and Σx² as exact FixedInt moments (fixed.Int320,
// fixed.Int576), so merging partial aggregates in either grouping must
// agree exactly, not just approximately.
func TestBigVarianceAggMergeAssociativity(t *testing.T) {
	values := []string{"1", "2", "3", "4", "5", "6"}

	var whole BigVarianceAgg
	for _, v := range values {
		require.NoError(t, whole.Add(mustBigNumeric(t, v)))
	}

	var left, right BigVarianceAgg
	for _, v := range values[:3] {
		require.NoError(t, left.Add(mustBigNumeric(t, v)))
	}
	for _, v := range values[3:] {
		require.NoError(t, right.Add(mustBigNumeric(t, v)))
	}
	require.NoError(t, left.Merge(right))

	require.Equal(t, whole, left)

	wholePop, ok := whole.VariancePop()
	require.True(t, ok)
	mergedPop, ok := left.VariancePop()
	require.True(t, ok)
	require.Equal(t, wholePop, mergedPop)
}

// TestBigCovarianceAggMergeAssociativity is BigCovarianceAgg's analogue of
// TestBigVarianceAggMergeAssociativity: its five moments are exact FixedInt
// accumulators, so merge order must not affect the result at all.
func TestBigCovarianceAggMergeAssociativity(t *testing.T) {
	xs := []string{"1", "2", "3", "4", "5", "6"}
	ys := []string{"2", "4", "5", "8", "11", "13"}

	var whole BigCovarianceAgg
	for i := range xs {
		require.NoError(t, whole.Add(mustBigNumeric(t, xs[i]), mustBigNumeric(t, ys[i])))
	}

	var left, right BigCovarianceAgg
	for i := 0; i < 3; i++ {
		require.NoError(t, left.Add(mustBigNumeric(t, xs[i]), mustBigNumeric(t, ys[i])))
	}
	for i := 3; i < len(xs); i++ {
		require.NoError(t, right.Add(mustBigNumeric(t, xs[i]), mustBigNumeric(t, ys[i])))
	}
	require.NoError(t, left.Merge(right))

	require.Equal(t, whole, left)
}

func TestSumAggWireRoundTrip(t *testing.T) {
	var a SumAgg
	require.NoError(t, a.Add(mustNumeric(t, "1.5")))
	require.NoError(t, a.Add(mustNumeric(t, "-2.25")))

	data, err := a.MarshalBinary()
	require.NoError(t, err)

	var b SumAgg
	require.NoError(t, b.UnmarshalBinary(data))

	require.Equal(t, a, b)
}

func TestVarianceAggWireRoundTrip(t *testing.T) {
	var a VarianceAgg
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, a.Add(mustNumeric(t, v)))
	}

	data, err := a.MarshalBinary()
	require.NoError(t, err)

	var b VarianceAgg
	require.NoError(t, b.UnmarshalBinary(data))
	require.Equal(t, a, b)
}

func TestCovarianceAggWireRoundTrip(t *testing.T) {
	var a CovarianceAgg
	require.NoError(t, a.Add(mustNumeric(t, "1"), mustNumeric(t, "2")))
	require.NoError(t, a.Add(mustNumeric(t, "3"), mustNumeric(t, "4")))

	data, err := a.MarshalBinary()
	require.NoError(t, err)

	var b CovarianceAgg
	require.NoError(t, b.UnmarshalBinary(data))
	require.Equal(t, a, b)
}

func TestBigVarianceAggWireRoundTrip(t *testing.T) {
	var a BigVarianceAgg
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, a.Add(mustBigNumeric(t, v)))
	}

	data := a.MarshalBinary()

	var b BigVarianceAgg
	require.NoError(t, b.UnmarshalBinary(data))
	require.Equal(t, a, b)
}

func TestBigCovarianceAggWireRoundTrip(t *testing.T) {
	var a BigCovarianceAgg
	require.NoError(t, a.Add(mustBigNumeric(t, "1"), mustBigNumeric(t, "2")))
	require.NoError(t, a.Add(mustBigNumeric(t, "3"), mustBigNumeric(t, "4")))

	data := a.MarshalBinary()

	var b BigCovarianceAgg
	require.NoError(t, b.UnmarshalBinary(data))
	require.Equal(t, a, b)
}

func TestAggregatorWireFormatRejectsTruncatedInput(t *testing.T) {
	var a SumAgg
	require.NoError(t, a.Add(mustNumeric(t, "1")))
	data, err := a.MarshalBinary()
	require.NoError(t, err)

	// The last component has no length prefix, so only a cut that leaves
	// less than the 8-byte count trailer is detectable.
	var b SumAgg
	err = b.UnmarshalBinary(data[:7])
	require.Error(t, err)
	require.True(t, InvalidEncoding.Has(err))
}

func TestAggregatorWireFormatCovarianceComponentCount(t *testing.T) {
	tcs := []struct {
		name string
		n    int
	}{
		{name: "sum has 1 component", n: 1},
		{name: "variance has 2 components", n: 2},
		{name: "covariance has 5 components", n: 5},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			parts := make([][]byte, tc.n)
			for j := range parts {
				parts[j] = mustNumeric(t, "1").scaled.Bytes()
			}
			data, err := joinAggregatorComponents(numericKind, parts, 7)
			require.NoError(t, err)

			comps, count, err := splitAggregatorComponents(numericKind, data, tc.n)
			require.NoError(t, err)
			require.Len(t, comps, tc.n)
			require.Equal(t, int64(7), count)
		})
	}
}
