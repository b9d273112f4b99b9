package numeric

import "github.com/calebcase/numeric/fixed"

// numericScaleDigits and bigNumericScaleDigits are the fixed fractional
// digit counts (the S in "scale = 10^S") for the two decimal kinds.
const (
	numericScaleDigits    = 9
	bigNumericScaleDigits = 38
)

var (
	numericScale    = fixed.Int128FromInt64(1_000_000_000)
	numericScaleU   = fixed.Uint128FromUint64(1_000_000_000)
	numericScaleHalf = fixed.Uint128FromUint64(500_000_000)

	// maxNumericScaled is 10^38 - 1, the largest magnitude a Numeric's
	// underlying scaled integer may hold (spec.md §3).
	maxNumericScaled = mustInt128("99999999999999999999999999999999999999")
	minNumericScaled = mustNegInt128(maxNumericScaled)
)

var (
	// bigNumericScale is 10^38.
	bigNumericScale  = mustInt256("100000000000000000000000000000000000000")
	bigNumericScaleU = mustUint256("100000000000000000000000000000000000000")

	// maxBigNumericScaled is 2^255 - 1, the natural signed 256-bit bound.
	maxBigNumericScaled = fixed.Int256{
		^uint64(0), ^uint64(0), ^uint64(0), 0x7FFF_FFFF_FFFF_FFFF,
	}
	minBigNumericScaled, _ = maxBigNumericScaled.Neg()
)

func mustInt128(s string) fixed.Int128 {
	v, ok := fixed.Int128FromDecimalString(s)
	if !ok {
		panic("numeric: bad constant " + s)
	}
	return v
}

func mustNegInt128(v fixed.Int128) fixed.Int128 {
	z, _ := v.Neg()
	return z
}

func mustInt256(s string) fixed.Int256 {
	v, ok := fixed.Int256FromDecimalString(s)
	if !ok {
		panic("numeric: bad constant " + s)
	}
	return v
}

func mustUint256(s string) fixed.Uint256 {
	v, ok := fixed.Uint256FromDecimalString(s)
	if !ok {
		panic("numeric: bad constant " + s)
	}
	return v
}

var maxNumericScaledMag = maxNumericScaled.Abs()
var maxBigNumericScaledMag = maxBigNumericScaled.Abs()

