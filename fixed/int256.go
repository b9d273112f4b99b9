package fixed

// Int256 is a signed 256-bit integer stored two's complement across 4
// little-endian 64-bit words. It is the scaled-integer representation of
// BigNumeric (N76.38): the mathematical value is Int256 / 10^38.
type Int256 [4]uint64

func Int256FromInt64(v int64) Int256 {
	hi := uint64(0)
	if v < 0 {
		hi = ^uint64(0)
	}
	return Int256{uint64(v), hi, hi, hi}
}

// Int256FromInt128 sign-extends a 128-bit signed value into 256 bits.
func Int256FromInt128(x Int128) Int256 {
	hi := uint64(0)
	if x.IsNegative() {
		hi = ^uint64(0)
	}
	return Int256{x[0], x[1], hi, hi}
}

// NarrowToInt128 returns the low 128 bits of x along with whether the
// value actually fits in 128 bits (i.e. sign-extending back reproduces x).
func (x Int256) NarrowToInt128() (Int128, bool) {
	z := Int128{x[0], x[1]}
	return z, Int256FromInt128(z) == x
}

func (x Int256) IsNegative() bool { return isNegativeWords(x[:]) }

func (x Int256) IsZero() bool { return isZeroWords(x[:]) }

func (x Int256) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.IsNegative() {
		return -1
	}
	return 1
}

func (x Int256) Cmp(y Int256) int { return cmpWordsSigned(x[:], y[:]) }

// Abs returns the unsigned magnitude of x. Abs(MIN) equals 2^255, which
// fits exactly in Uint256.
func (x Int256) Abs() Uint256 {
	var m Uint256
	absWordsSigned(m[:], x[:])
	return m
}

func (x Int256) Neg() (z Int256, overflow bool) {
	overflow = negWords(z[:], x[:])
	return z, overflow
}

// Int256FromSignAndAbs builds a signed value from a sign flag and an
// unsigned magnitude, failing if the magnitude exceeds the signed range
// (the sole exception being the minimum value, whose magnitude is exactly
// 2^255).
func Int256FromSignAndAbs(negative bool, mag Uint256) (z Int256, ok bool) {
	const topBit = uint64(1) << 63
	tooBig := mag[3] > topBit || (mag[3] == topBit && (mag[0] != 0 || mag[1] != 0 || mag[2] != 0))
	if !negative && mag[3]&topBit != 0 {
		return Int256{}, false
	}
	if negative && tooBig {
		return Int256{}, false
	}
	z = Int256{mag[0], mag[1], mag[2], mag[3]}
	if negative {
		z, _ = z.Neg()
	}
	return z, true
}

func (x Int256) Add(y Int256) (z Int256, overflow bool) {
	addWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx == sy && sz != sx
	return z, overflow
}

func (x Int256) Sub(y Int256) (z Int256, overflow bool) {
	subWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx != sy && sz != sx
	return z, overflow
}

func (x Int256) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, 80)
	if x.IsNegative() {
		buf = append(buf, '-')
	}
	buf = appendDecimalWords(buf, x.Abs().Words())
	return string(buf)
}

// Words exposes the underlying little-endian magnitude words.
func (x Uint256) Words() []uint64 { return x[:] }

func (x Int256) Bytes() []byte { return bytesFromWordsSigned(x[:]) }

func Int256FromBytes(data []byte) (Int256, bool) {
	var x Int256
	ok := wordsFromBytesSigned(x[:], data)
	return x, ok
}

func Int256FromDecimalString(s string) (Int256, bool) {
	if s == "" {
		return Int256{}, false
	}
	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	mag, ok := Uint256FromDecimalString(s)
	if !ok {
		return Int256{}, false
	}
	return Int256FromSignAndAbs(negative, mag)
}
