package numeric

import "github.com/calebcase/numeric/fixed"

// roundMode selects how Round/Trunc/Ceil/Floor dispose of the digits being
// dropped (spec.md §4.5).
type roundMode int

const (
	roundNearestAwayFromZero roundMode = iota
	roundTrunc
	roundCeil
	roundFloor
)

// pow10Uint128 computes 10^k as a Uint128, failing if it does not fit.
func pow10Uint128(k int) (fixed.Uint128, bool) {
	if k < 0 {
		return fixed.Uint128{}, false
	}
	z := fixed.Uint128FromUint64(1)
	ten := fixed.Uint128FromUint64(10)
	for i := 0; i < k; i++ {
		var overflow bool
		z, overflow = z.Mul(ten)
		if overflow {
			return fixed.Uint128{}, false
		}
	}
	return z, true
}

// pow10Uint256 computes 10^k as a Uint256, failing if it does not fit.
func pow10Uint256(k int) (fixed.Uint256, bool) {
	if k < 0 {
		return fixed.Uint256{}, false
	}
	z := fixed.Uint256FromUint64(1)
	ten := fixed.Uint256FromUint64(10)
	for i := 0; i < k; i++ {
		var overflow bool
		z, overflow = z.Mul(ten)
		if overflow {
			return fixed.Uint256{}, false
		}
	}
	return z, true
}
