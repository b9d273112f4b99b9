package fixed

// Uint256 is an unsigned 256-bit integer stored as 4 little-endian 64-bit
// words. It is both the magnitude type behind Int256 (the scaled-integer
// representation of BigNumeric, N76.38) and the wide scratch type used for
// 128x128 products computed while operating on Numeric values.
type Uint256 [4]uint64

func Uint256FromUint64(v uint64) Uint256 {
	return Uint256{v, 0, 0, 0}
}

func (x Uint256) IsZero() bool { return isZeroWords(x[:]) }

func (x Uint256) Cmp(y Uint256) int { return cmpWords(x[:], y[:]) }

func (x Uint256) Add(y Uint256) (z Uint256, overflow bool) {
	carry := addWords(z[:], x[:], y[:])
	return z, carry != 0
}

func (x Uint256) Sub(y Uint256) (z Uint256, underflow bool) {
	borrow := subWords(z[:], x[:], y[:])
	return z, borrow != 0
}

// Mul returns the low 256 bits of x*y and reports overflow.
func (x Uint256) Mul(y Uint256) (z Uint256, overflow bool) {
	wide := ExtendMulUint256(x, y)
	for i := 4; i < 8; i++ {
		if wide[i] != 0 {
			overflow = true
			break
		}
	}
	copy(z[:], wide[:4])
	return z, overflow
}

// ExtendMulUint256 computes the full, non-overflowing 512-bit product.
func ExtendMulUint256(x, y Uint256) Uint512 {
	var z Uint512
	mulWords(z[:], x[:], y[:])
	return z
}

func (x Uint256) QuoRem(y Uint256) (q, r Uint256, ok bool) {
	if y.IsZero() {
		return Uint256{}, Uint256{}, false
	}
	divModWords(q[:], r[:], append([]uint64(nil), x[:]...), y[:])
	return q, r, true
}

func (x Uint256) QuoRemSmall(d uint64) (q Uint256, r uint64, ok bool) {
	if d == 0 {
		return Uint256{}, 0, false
	}
	tmp := x
	r = divSmallWords(q[:], tmp[:], d)
	return q, r, true
}

// QuoRoundAwayFromZero computes q = (x + y/2) / y for unsigned inputs.
func (x Uint256) QuoRoundAwayFromZero(y Uint256) (q Uint256, ok bool) {
	if y.IsZero() {
		return Uint256{}, false
	}
	half, _ := y.Shr(1)
	sum, carry := x.Add(half)
	if carry {
		wide := Uint512{sum[0], sum[1], sum[2], sum[3], 1, 0, 0, 0}
		var yw Uint512
		copy(yw[:4], y[:])
		qw, _, _ := wide.QuoRem(yw)
		for i := 4; i < 8; i++ {
			if qw[i] != 0 {
				return Uint256{}, false
			}
		}
		copy(q[:], qw[:4])
		return q, true
	}
	q, _, ok = sum.QuoRem(y)
	return q, ok
}

func (x Uint256) Shl(n uint) (z Uint256, overflow bool) {
	if n >= 256 {
		return Uint256{}, !x.IsZero()
	}
	shlWords(z[:], x[:], n)
	back, _ := z.Shr(n)
	return z, back != x
}

func (x Uint256) Shr(n uint) (z Uint256, ok bool) {
	if n >= 256 {
		return Uint256{}, true
	}
	shrWords(z[:], x[:], n)
	return z, true
}

func (x Uint256) MSB() int { return msbIndexWords(x[:]) }

func (x Uint256) String() string {
	return string(appendDecimalWords(nil, x[:]))
}

func Uint256FromDecimalString(digits string) (Uint256, bool) {
	var x Uint256
	ok := parseDecimalWords(x[:], digits)
	return x, ok
}

func (x Uint256) Bytes() []byte { return bytesFromWords(x[:], false) }

func Uint256FromBytes(data []byte) (Uint256, bool) {
	var x Uint256
	ok := wordsFromBytes(x[:], data)
	return x, ok
}

// Lo128 returns the low 128 bits of x.
func (x Uint256) Lo128() Uint128 { return Uint128{x[0], x[1]} }

// FitsUint128 reports whether x's value fits in 128 bits.
func (x Uint256) FitsUint128() bool { return x[2] == 0 && x[3] == 0 }
