package numeric

import (
	"strconv"
	"strings"

	"github.com/calebcase/numeric/fixed"
)

// parsedDecimal is the result of splitting a decimal literal into its
// syntactic pieces, per spec.md §4.2 step 1.
type parsedDecimal struct {
	negative bool
	intPart  string
	fracPart string
	exp      int64 // already parsed from the optional [eE][+-]?digits suffix
	hasExp   bool
}

// splitDecimalLiteral implements spec.md §4.2 step 1: strip surrounding
// whitespace, split into {negative, int_part, fract_part, exp_part}, and
// reject malformed literals (internal whitespace, no digits in the
// significand, or an empty exponent).
func splitDecimalLiteral(s string) (parsedDecimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return parsedDecimal{}, false
	}

	var pd parsedDecimal
	i := 0
	if s[i] == '+' || s[i] == '-' {
		pd.negative = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	pd.intPart = s[start:i]

	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		pd.fracPart = s[start:i]
	}

	if pd.intPart == "" && pd.fracPart == "" {
		return parsedDecimal{}, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expStart := i
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digitsStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == digitsStart {
			return parsedDecimal{}, false
		}
		expStr := s[expStart:i]
		exp, err := strconv.ParseInt(expStr, 10, 64)
		if err != nil {
			// Only overflow is possible here (the grammar already
			// validated the digits); saturate to the minimum or maximum
			// int64 by sign, per spec.md §4.2 step 2 and §9's documented
			// open question.
			if strings.HasPrefix(expStr, "-") {
				exp = minInt64
			} else {
				exp = maxInt64
			}
		}
		pd.exp = exp
		pd.hasExp = true
	}

	if i != len(s) {
		return parsedDecimal{}, false
	}

	return pd, true
}

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)

// uint256MaxDecimalDigits is the number of decimal digits in 2^256-1, the
// largest value fixed.Uint256 (the scratch width buildScaledMagnitude
// always computes in) can hold.
const uint256MaxDecimalDigits = 78

// buildScaledMagnitude implements spec.md §4.2 steps 2-4: fold the parsed
// significand and exponent into an unsigned scaled magnitude at the
// target's fixed fractional-digit count, applying half-away-from-zero
// rounding for digits shifted off the end. strict rejects any nonzero
// digit that would otherwise be silently rounded away by exponent
// shifting beyond the parsed digits; lenient allows it.
func buildScaledMagnitude(pd parsedDecimal, scaleDigits int, strict bool) (fixed.Uint256, bool) {
	exp := pd.exp
	if exp > 0 && maxInt64-exp < int64(scaleDigits) {
		exp = maxInt64
	} else if exp < 0 && exp < minInt64+int64(scaleDigits) {
		exp = minInt64
	} else {
		exp += int64(scaleDigits)
	}

	digits := pd.intPart + pd.fracPart
	intLen := len(pd.intPart)

	var roundUp bool
	var kept string

	if exp >= 0 {
		promote := int64(len(pd.fracPart))
		if exp < promote {
			promote = exp
		}
		kept = pd.intPart + pd.fracPart[:promote]
		rest := pd.fracPart[promote:]
		if len(rest) > 0 {
			roundUp = rest[0] >= '5'
			if strict && containsNonZero(rest) {
				return fixed.Uint256{}, false
			}
		}
		if !containsNonZero(kept) && !roundUp {
			// kept is exactly zero and nothing rounds it up: appending any
			// number of trailing zeros via shift leaves it exactly zero,
			// however large the exponent, so skip the shift loop entirely.
			return fixed.Uint256{}, true
		}
		shift := exp - promote
		if shift > uint256MaxDecimalDigits {
			// mag256 is always a Uint256 scratch value here regardless of
			// the target kind (Numeric or BigNumeric), so the cutoff is
			// derived from Uint256's own decimal capacity rather than a
			// constant tuned for one kind's scale. This only bounds how
			// many multiply iterations we attempt for absurd exponents;
			// true overflow of an in-range shift is still caught per
			// iteration by mulSmall256 below.
			return fixed.Uint256{}, false
		}
		mag256, ok := fixed.Uint256FromDecimalString(orZero(kept))
		if !ok {
			return fixed.Uint256{}, false
		}
		for s := int64(0); s < shift; s++ {
			if !mulSmall256(&mag256, 10) {
				return fixed.Uint256{}, false
			}
		}
		if roundUp {
			var one fixed.Uint256
			one[0] = 1
			var carry bool
			mag256, carry = mag256.Add(one)
			if carry {
				return fixed.Uint256{}, false
			}
		}
		return mag256, true
	}

	// exp < 0: keep only the first len(int_part)+exp digits of int_part.
	keepLen := int64(intLen) + exp
	if keepLen < 0 {
		keepLen = 0
	}
	if keepLen > int64(intLen) {
		keepLen = int64(intLen)
	}
	kept = pd.intPart[:keepLen]
	roundDigits := digits[keepLen:]
	if len(roundDigits) > 0 {
		roundUp = roundDigits[0] >= '5'
		if strict && containsNonZero(roundDigits) {
			return fixed.Uint256{}, false
		}
	}

	mag256, ok := fixed.Uint256FromDecimalString(orZero(kept))
	if !ok {
		return fixed.Uint256{}, false
	}
	if roundUp {
		var one fixed.Uint256
		one[0] = 1
		var carry bool
		mag256, carry = mag256.Add(one)
		if carry {
			return fixed.Uint256{}, false
		}
	}
	return mag256, true
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func containsNonZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return true
		}
	}
	return false
}

func mulSmall256(x *fixed.Uint256, m uint64) bool {
	full := fixed.ExtendMulUint256(*x, fixed.Uint256{m, 0, 0, 0})
	if !full.FitsUint256() {
		return false
	}
	*x = full.Lo256()
	return true
}
