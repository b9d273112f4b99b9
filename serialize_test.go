package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericBytesRoundTrip(t *testing.T) {
	tcs := []string{"0", "1", "-1", "128", "-129", "99999999999999999999999999999.999999999"}

	for i, s := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, s), func(t *testing.T) {
			n, err := NumericFromString(s)
			require.NoError(t, err)

			data := n.Bytes()
			require.NotEmpty(t, data)

			back, err := NumericFromBytes(data)
			require.NoError(t, err)
			require.True(t, n.Equal(back))
		})
	}
}

func TestNumericFromBytesRejectsEmpty(t *testing.T) {
	_, err := NumericFromBytes(nil)
	require.Error(t, err)
	require.True(t, InvalidEncoding.Has(err))
}

func TestBigNumericBytesRoundTrip(t *testing.T) {
	tcs := []string{"0", "1", "-1", "123.456"}

	for i, s := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, s), func(t *testing.T) {
			n, err := BigNumericFromString(s)
			require.NoError(t, err)

			data := n.Bytes()
			require.NotEmpty(t, data)

			back, err := BigNumericFromBytes(data)
			require.NoError(t, err)
			require.True(t, n.Equal(back))
		})
	}
}

func TestZeroEncodesAsSingleByte(t *testing.T) {
	require.Equal(t, []byte{0x00}, Zero.Bytes())
	require.Equal(t, []byte{0x00}, ZeroBig.Bytes())
}
