package numeric

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericDoubleRoundTrip(t *testing.T) {
	tcs := []string{"0", "1", "-1", "0.5", "3.14159265", "-123456789.987654321"}

	for i, s := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, s), func(t *testing.T) {
			n, err := NumericFromString(s)
			require.NoError(t, err)

			d := n.ToDouble()
			back, err := NumericFromDouble(d)
			require.NoError(t, err)

			// Round-tripping through float64 need not be exact for values
			// that don't have a terminating binary expansion, so compare
			// via the double representation rather than the decimal string.
			require.InDelta(t, d, back.ToDouble(), 1e-9)
		})
	}
}

func TestNumericDoubleExactValues(t *testing.T) {
	n, err := NumericFromString("0.5")
	require.NoError(t, err)
	require.Equal(t, 0.5, n.ToDouble())

	back, err := NumericFromDouble(0.5)
	require.NoError(t, err)
	require.Equal(t, "0.5", back.String())
}

func TestNumericFromDoubleRejectsNonFinite(t *testing.T) {
	_, err := NumericFromDouble(math.NaN())
	require.Error(t, err)
	require.True(t, OutOfRange.Has(err))
	require.Contains(t, err.Error(), "nan")

	_, err = NumericFromDouble(math.Inf(1))
	require.Error(t, err)
	require.True(t, OutOfRange.Has(err))
}

func TestBigNumericFromDoubleRejectsNonFiniteMentionsValue(t *testing.T) {
	_, err := BigNumericFromDouble(math.NaN())
	require.Error(t, err)
	require.True(t, OutOfRange.Has(err))
	require.Contains(t, err.Error(), "nan")
	require.NotContains(t, err.Error(), "-nan")
}

func TestNumericFromDoubleRejectsOutOfRange(t *testing.T) {
	_, err := NumericFromDouble(1e30)
	require.Error(t, err)
	require.True(t, OutOfRange.Has(err))
}

func TestBigNumericDoubleRoundTrip(t *testing.T) {
	n, err := BigNumericFromString("123.456")
	require.NoError(t, err)

	d := n.ToDouble()
	require.InDelta(t, 123.456, d, 1e-9)

	back, err := BigNumericFromDouble(d)
	require.NoError(t, err)
	require.InDelta(t, d, back.ToDouble(), 1e-9)
}
