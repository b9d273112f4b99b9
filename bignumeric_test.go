package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigNumericStringRoundTrip(t *testing.T) {
	type TC struct {
		name string
		in   string
		want string
	}

	tcs := []TC{
		{name: "zero", in: "0", want: "0"},
		{name: "integer", in: "42", want: "42"},
		{name: "negative", in: "-42", want: "-42"},
		{name: "fraction", in: "1.5", want: "1.5"},
		{name: "many fractional digits", in: "0.00000000000000000000000000000000000001", want: "0.00000000000000000000000000000000000001"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n, err := BigNumericFromString(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, n.String())
		})
	}
}

// TestBigNumericFromStringLenientRoundsSmallestUnitUp is
// TestNumericFromStringLenientRoundsSmallestUnitUp's BigNumeric
// counterpart: a literal with 38 zero kept fractional digits and a
// rounding-up demoted digit must round to the smallest representable
// unit, not to exact zero.
func TestBigNumericFromStringLenientRoundsSmallestUnitUp(t *testing.T) {
	n, err := BigNumericFromString("0." + repeatDigit('0', 38) + "5")
	require.NoError(t, err)
	require.Equal(t, "0."+repeatDigit('0', 37)+"1", n.String())
}

// TestBigNumericFromStringHugeExponentZeroNeverOverflows exercises
// spec.md's overflow guard directly: an exact-zero literal with an
// exponent far beyond either type's scale must still parse to zero,
// never rejected as overflow.
func TestBigNumericFromStringHugeExponentZeroNeverOverflows(t *testing.T) {
	n, err := NumericFromString("0e100")
	require.NoError(t, err)
	require.True(t, n.IsZero())

	bn, err := BigNumericFromString("0e100")
	require.NoError(t, err)
	require.True(t, bn.IsZero())
}

// TestBigNumericFromStringExponentWithinRange checks that promoting a
// literal's exponent by BigNumeric's 38 fractional digits before applying
// the parser's overflow cutoff does not falsely reject an exponent that is
// still far inside BigNumeric's MAX_SCALED range.
func TestBigNumericFromStringExponentWithinRange(t *testing.T) {
	n, err := BigNumericFromString("1e3")
	require.NoError(t, err)
	require.Equal(t, "1000", n.String())
}

func repeatDigit(d byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = d
	}
	return string(buf)
}

func TestBigNumericArithmetic(t *testing.T) {
	a, err := BigNumericFromString("2.5")
	require.NoError(t, err)
	b, err := BigNumericFromString("4")
	require.NoError(t, err)

	product, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "10", product.String())

	quotient, err := product.Div(b)
	require.NoError(t, err)
	require.Equal(t, "2.5", quotient.String())
}

func TestBigNumericOverflow(t *testing.T) {
	max, err := BigNumericFromPackedInt(maxBigNumericScaled)
	require.NoError(t, err)
	one, err := BigNumericFromString("1")
	require.NoError(t, err)

	_, err = max.Add(one)
	require.Error(t, err)
	require.True(t, Overflow.Has(err))
}

func TestBigNumericDivByZero(t *testing.T) {
	a, err := BigNumericFromString("1")
	require.NoError(t, err)

	_, err = a.Div(ZeroBig)
	require.Error(t, err)
	require.True(t, DivisionByZero.Has(err))
}
