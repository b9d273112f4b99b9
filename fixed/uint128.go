package fixed

// Uint128 is an unsigned 128-bit integer stored as 2 little-endian 64-bit
// words. It is the magnitude type behind Int128, the scaled-integer
// representation of Numeric (N38.9).
type Uint128 [2]uint64

// Uint128FromUint64 widens a uint64 into a Uint128.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{v, 0}
}

func (x Uint128) IsZero() bool { return isZeroWords(x[:]) }

func (x Uint128) Cmp(y Uint128) int { return cmpWords(x[:], y[:]) }

// Add returns x+y and reports whether the true sum overflowed 128 bits.
func (x Uint128) Add(y Uint128) (z Uint128, overflow bool) {
	carry := addWords(z[:], x[:], y[:])
	return z, carry != 0
}

// Sub returns x-y and reports whether x < y (borrow occurred).
func (x Uint128) Sub(y Uint128) (z Uint128, underflow bool) {
	borrow := subWords(z[:], x[:], y[:])
	return z, borrow != 0
}

// Mul returns the low 128 bits of x*y and reports whether the true product
// overflowed 128 bits.
func (x Uint128) Mul(y Uint128) (z Uint128, overflow bool) {
	wide := ExtendMulUint128(x, y)
	overflow = wide[2] != 0 || wide[3] != 0
	z[0], z[1] = wide[0], wide[1]
	return z, overflow
}

// ExtendMulUint128 computes the full, non-overflowing 256-bit product of x
// and y.
func ExtendMulUint128(x, y Uint128) Uint256 {
	var z Uint256
	mulWords(z[:], x[:], y[:])
	return z
}

// QuoRem computes x/y and x%y for y != 0.
func (x Uint128) QuoRem(y Uint128) (q, r Uint128, ok bool) {
	if y.IsZero() {
		return Uint128{}, Uint128{}, false
	}
	divModWords(q[:], r[:], append([]uint64(nil), x[:]...), y[:])
	return q, r, true
}

// QuoRemSmall divides by a single-word divisor; the fast, specialized path
// used for dividing by powers of ten.
func (x Uint128) QuoRemSmall(d uint64) (q Uint128, r uint64, ok bool) {
	if d == 0 {
		return Uint128{}, 0, false
	}
	tmp := x
	r = divSmallWords(q[:], tmp[:], d)
	return q, r, true
}

// QuoRoundAwayFromZero computes q = (x + y/2) / y for unsigned inputs, per
// the div_and_round_away_from_zero primitive.
func (x Uint128) QuoRoundAwayFromZero(y Uint128) (q Uint128, ok bool) {
	if y.IsZero() {
		return Uint128{}, false
	}
	half, _ := y.Shr(1)
	sum, carry := x.Add(half)
	if carry {
		// sum overflowed 128 bits; divide the wide sum instead.
		wide := Uint256{sum[0], sum[1], 1, 0}
		qw, _, _ := wide.QuoRem(Uint256{y[0], y[1], 0, 0})
		if qw[2] != 0 || qw[3] != 0 {
			return Uint128{}, false
		}
		return Uint128{qw[0], qw[1]}, true
	}
	q, _, ok = sum.QuoRem(y)
	return q, ok
}

func (x Uint128) Shl(n uint) (z Uint128, overflow bool) {
	if n >= 128 {
		return Uint128{}, !x.IsZero()
	}
	shlWords(z[:], x[:], n)
	back, _ := z.Shr(n)
	return z, back != x
}

func (x Uint128) Shr(n uint) (z Uint128, ok bool) {
	if n >= 128 {
		return Uint128{}, true
	}
	shrWords(z[:], x[:], n)
	return z, true
}

// MSB returns the index of the most significant set bit, or -1 for zero.
func (x Uint128) MSB() int { return msbIndexWords(x[:]) }

// String returns the unsigned decimal representation.
func (x Uint128) String() string {
	return string(appendDecimalWords(nil, x[:]))
}

// Uint128FromDecimalString parses an unsigned decimal digit string (no
// sign, no whitespace) into a Uint128, failing on overflow or non-digits.
func Uint128FromDecimalString(digits string) (Uint128, bool) {
	var x Uint128
	ok := parseDecimalWords(x[:], digits)
	return x, ok
}

// Bytes returns the minimum-length little-endian unsigned encoding.
func (x Uint128) Bytes() []byte { return bytesFromWords(x[:], false) }

// Uint128FromBytes decodes the minimum-length little-endian unsigned
// encoding produced by Bytes.
func Uint128FromBytes(data []byte) (Uint128, bool) {
	var x Uint128
	ok := wordsFromBytes(x[:], data)
	return x, ok
}
