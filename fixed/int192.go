package fixed

// Int192 is a signed 192-bit integer (3 little-endian 64-bit words). It is
// the Σx accumulator width shared by SumAgg, VarianceAgg and
// CovarianceAgg: wide enough that summing 2^63 Numeric magnitudes of size
// MAX_SCALED never overflows. BigNumeric sums use Int320.
type Int192 [3]uint64

func (x Int192) IsNegative() bool { return isNegativeWords(x[:]) }
func (x Int192) IsZero() bool     { return isZeroWords(x[:]) }

func (x Int192) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.IsNegative() {
		return -1
	}
	return 1
}

func (x Int192) Cmp(y Int192) int { return cmpWordsSigned(x[:], y[:]) }

func (x Int192) Abs() Uint192 {
	var m Uint192
	absWordsSigned(m[:], x[:])
	return m
}

func (x Int192) Neg() (z Int192, overflow bool) {
	overflow = negWords(z[:], x[:])
	return z, overflow
}

func (x Int192) Add(y Int192) (z Int192, overflow bool) {
	addWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx == sy && sz != sx
	return z, overflow
}

func (x Int192) Sub(y Int192) (z Int192, overflow bool) {
	subWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx != sy && sz != sx
	return z, overflow
}

// Int192FromInt128 sign-extends a 128-bit signed value (the natural width
// of a single Numeric addend) into 192 bits.
func Int192FromInt128(x Int128) Int192 {
	hi := uint64(0)
	if x.IsNegative() {
		hi = ^uint64(0)
	}
	return Int192{x[0], x[1], hi}
}

// NarrowToInt128 returns the low 128 bits along with whether x actually
// fits (used by SumAgg.Sum() to narrow the accumulator back to Numeric).
func (x Int192) NarrowToInt128() (Int128, bool) {
	z := Int128{x[0], x[1]}
	return z, Int192FromInt128(z) == x
}

// Uint192 is the unsigned magnitude counterpart of Int192.
type Uint192 [3]uint64

func (x Uint192) Words() []uint64 { return x[:] }

func (x Int192) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, 64)
	if x.IsNegative() {
		buf = append(buf, '-')
	}
	buf = appendDecimalWords(buf, x.Abs().Words())
	return string(buf)
}

func (x Int192) Bytes() []byte { return bytesFromWordsSigned(x[:]) }

func Int192FromBytes(data []byte) (Int192, bool) {
	var x Int192
	ok := wordsFromBytesSigned(x[:], data)
	return x, ok
}

// QuoRoundAwayFromZero divides the magnitude of x by count and rounds away
// from zero (half to greater magnitude), used by AVG. count must be
// positive.
func (x Int192) QuoRoundAwayFromZero(count Int192) (q Int192, ok bool) {
	if count.IsZero() || count.IsNegative() {
		return Int192{}, false
	}
	mag := x.Abs()
	cmag := count.Abs()
	var qmag Uint192
	var half Uint192
	shrWords(half[:], cmag[:], 1)
	sum, carry := addUint192(mag, half)
	if carry {
		return Int192{}, false
	}
	qw, _, divOk := quoRemUint192(sum, cmag)
	if !divOk {
		return Int192{}, false
	}
	qmag = qw
	return Int192FromSignAndAbs(x.IsNegative(), qmag)
}

func addUint192(x, y Uint192) (z Uint192, carry bool) {
	c := addWords(z[:], x[:], y[:])
	return z, c != 0
}

func quoRemUint192(x, y Uint192) (q, r Uint192, ok bool) {
	if isZeroWords(y[:]) {
		return Uint192{}, Uint192{}, false
	}
	divModWords(q[:], r[:], append([]uint64(nil), x[:]...), y[:])
	return q, r, true
}

// Int192FromSignAndAbs builds a signed 192-bit value from a sign flag and
// an unsigned magnitude.
func Int192FromSignAndAbs(negative bool, mag Uint192) (z Int192, ok bool) {
	const topBit = uint64(1) << 63
	tooBig := mag[2] > topBit || (mag[2] == topBit && (mag[0] != 0 || mag[1] != 0))
	if !negative && mag[2]&topBit != 0 {
		return Int192{}, false
	}
	if negative && tooBig {
		return Int192{}, false
	}
	z = Int192{mag[0], mag[1], mag[2]}
	if negative {
		z, _ = z.Neg()
	}
	return z, true
}
