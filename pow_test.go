package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericPowerIntegerExponents(t *testing.T) {
	type TC struct {
		name string
		base string
		exp  string
		want string
	}

	tcs := []TC{
		{name: "square", base: "2", exp: "2", want: "4"},
		{name: "cube", base: "2", exp: "3", want: "8"},
		{name: "zero exponent", base: "5", exp: "0", want: "1"},
		{name: "exponent one", base: "5", exp: "1", want: "5"},
		{name: "negative exponent", base: "2", exp: "-3", want: "0.125"},
		{name: "base one", base: "1", exp: "1000", want: "1"},
		{name: "negative base even exponent", base: "-2", exp: "2", want: "4"},
		{name: "negative base odd exponent", base: "-2", exp: "3", want: "-8"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			base, err := NumericFromString(tc.base)
			require.NoError(t, err)
			exp, err := NumericFromString(tc.exp)
			require.NoError(t, err)

			z, err := base.Power(exp)
			require.NoError(t, err)
			require.Equal(t, tc.want, z.String())
		})
	}
}

func TestNumericPowerNegativeBaseFractionalExponentRejected(t *testing.T) {
	base, err := NumericFromString("-2")
	require.NoError(t, err)
	exp, err := NumericFromString("0.5")
	require.NoError(t, err)

	_, err = base.Power(exp)
	require.Error(t, err)
	require.True(t, DisallowedPower.Has(err))
}

func TestNumericPowerFractionalExponentApproximate(t *testing.T) {
	base, err := NumericFromString("4")
	require.NoError(t, err)
	exp, err := NumericFromString("0.5")
	require.NoError(t, err)

	z, err := base.Power(exp)
	require.NoError(t, err)
	require.InDelta(t, 2.0, z.ToDouble(), 1e-6)
}

func TestNumericPowerZeroToNegativeIsError(t *testing.T) {
	exp, err := NumericFromString("-1")
	require.NoError(t, err)

	_, err = Zero.Power(exp)
	require.Error(t, err)
	require.True(t, DivisionByZero.Has(err))
}
