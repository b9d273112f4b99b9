package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericStringRoundTrip(t *testing.T) {
	type TC struct {
		name string
		in   string
		want string
	}

	tcs := []TC{
		{name: "zero", in: "0", want: "0"},
		{name: "integer", in: "42", want: "42"},
		{name: "leading plus", in: "+42", want: "42"},
		{name: "negative", in: "-42", want: "-42"},
		{name: "fraction", in: "1.5", want: "1.5"},
		{name: "trailing zeros trimmed", in: "1.500000000", want: "1.5"},
		{name: "leading zero fraction", in: "0.5", want: "0.5"},
		{name: "negative fraction", in: "-0.000000001", want: "-0.000000001"},
		{name: "exponent positive", in: "1e2", want: "100"},
		{name: "exponent negative", in: "1500e-3", want: "1.5"},
		{name: "whitespace", in: "  3.14  ", want: "3.14"},
		{name: "max fractional digits", in: "1.123456789", want: "1.123456789"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n, err := NumericFromString(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, n.String())
		})
	}
}

func TestNumericFromStringInvalid(t *testing.T) {
	tcs := []string{
		"",
		"   ",
		"abc",
		"1.2.3",
		"1e",
		"1 2",
		"-",
		".",
	}

	for i, s := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, s), func(t *testing.T) {
			_, err := NumericFromString(s)
			require.Error(t, err)
			require.True(t, InvalidInput.Has(err))
		})
	}
}

func TestNumericFromStringStrictRejectsRounding(t *testing.T) {
	_, err := NumericFromStringStrict("1.1234567895")
	require.Error(t, err)
	require.True(t, InvalidInput.Has(err))

	n, err := NumericFromStringStrict("1.123456789")
	require.NoError(t, err)
	require.Equal(t, "1.123456789", n.String())
}

func TestNumericFromStringLenientRounds(t *testing.T) {
	n, err := NumericFromString("1.1234567895")
	require.NoError(t, err)
	require.Equal(t, "1.12345679", n.String())
}

// TestNumericFromStringLenientRoundsSmallestUnitUp pins down spec.md's
// scenario 2: a literal whose kept digits are all zero but whose demoted
// digit rounds up must not be shortcut to exact zero.
func TestNumericFromStringLenientRoundsSmallestUnitUp(t *testing.T) {
	n, err := NumericFromString("0.0000000005")
	require.NoError(t, err)
	require.Equal(t, "0.000000001", n.String())
}

func TestNumericAddSubOverflow(t *testing.T) {
	max, err := NumericFromString("99999999999999999999999999999.999999999")
	require.NoError(t, err)
	one, err := NumericFromString("1")
	require.NoError(t, err)

	_, err = max.Add(one)
	require.Error(t, err)
	require.True(t, Overflow.Has(err))

	sum, err := max.Sub(one)
	require.NoError(t, err)
	require.Equal(t, "99999999999999999999999999998.999999999", sum.String())
}

func TestNumericMulDivRoundTrip(t *testing.T) {
	a, err := NumericFromString("2.5")
	require.NoError(t, err)
	b, err := NumericFromString("4")
	require.NoError(t, err)

	product, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "10", product.String())

	quotient, err := product.Div(b)
	require.NoError(t, err)
	require.Equal(t, "2.5", quotient.String())
}

func TestNumericMulRoundsHalfAwayFromZero(t *testing.T) {
	a, err := NumericFromString("0.000000001")
	require.NoError(t, err)
	b, err := NumericFromString("0.5")
	require.NoError(t, err)

	z, err := a.Mul(b)
	require.NoError(t, err)
	// 0.0000000005 rounds away from zero to 0.000000001.
	require.Equal(t, "0.000000001", z.String())
}

func TestNumericDivByZero(t *testing.T) {
	a, err := NumericFromString("1")
	require.NoError(t, err)

	_, err = a.Div(Zero)
	require.Error(t, err)
	require.True(t, DivisionByZero.Has(err))

	_, err = a.IntegerDivide(Zero)
	require.Error(t, err)
	require.True(t, DivisionByZero.Has(err))

	_, err = a.Mod(Zero)
	require.Error(t, err)
	require.True(t, DivisionByZero.Has(err))
}

func TestNumericIntegerDivideTruncates(t *testing.T) {
	a, err := NumericFromString("7")
	require.NoError(t, err)
	b, err := NumericFromString("2")
	require.NoError(t, err)

	q, err := a.IntegerDivide(b)
	require.NoError(t, err)
	require.Equal(t, "3", q.String())

	negA, err := NumericFromString("-7")
	require.NoError(t, err)
	negQ, err := negA.IntegerDivide(b)
	require.NoError(t, err)
	require.Equal(t, "-3", negQ.String())
}

func TestNumericModFollowsDividendSign(t *testing.T) {
	a, err := NumericFromString("-7")
	require.NoError(t, err)
	b, err := NumericFromString("2")
	require.NoError(t, err)

	r, err := a.Mod(b)
	require.NoError(t, err)
	require.Equal(t, "-1", r.String())
}

func TestNumericAbsNeg(t *testing.T) {
	a, err := NumericFromString("-5.5")
	require.NoError(t, err)

	abs, err := a.Abs()
	require.NoError(t, err)
	require.Equal(t, "5.5", abs.String())

	neg, err := a.Neg()
	require.NoError(t, err)
	require.Equal(t, "5.5", neg.String())

	back, err := neg.Neg()
	require.NoError(t, err)
	require.True(t, back.Equal(a))
}

func TestNumericCmpAndEqual(t *testing.T) {
	a, err := NumericFromString("1.5")
	require.NoError(t, err)
	b, err := NumericFromString("1.50")
	require.NoError(t, err)
	c, err := NumericFromString("2")
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Cmp(b))
	require.Equal(t, -1, a.Cmp(c))
	require.Equal(t, 1, c.Cmp(a))
}
