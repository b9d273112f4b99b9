package fixed

// Int320 is a signed 320-bit integer (5 little-endian 64-bit words). It is
// the Σx², Σxy accumulator width used by VarianceAgg and CovarianceAgg (wide
// enough that the sum of 2^63 squared products of Numeric MAX_SCALED
// magnitudes never overflows), and the Σx width used by BigSumAgg,
// BigVarianceAgg and BigCovarianceAgg.
type Int320 [5]uint64

func (x Int320) IsNegative() bool { return isNegativeWords(x[:]) }
func (x Int320) IsZero() bool     { return isZeroWords(x[:]) }

func (x Int320) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.IsNegative() {
		return -1
	}
	return 1
}

func (x Int320) Cmp(y Int320) int { return cmpWordsSigned(x[:], y[:]) }

func (x Int320) Abs() Uint320 {
	var m Uint320
	absWordsSigned(m[:], x[:])
	return m
}

func (x Int320) Neg() (z Int320, overflow bool) {
	overflow = negWords(z[:], x[:])
	return z, overflow
}

func (x Int320) Add(y Int320) (z Int320, overflow bool) {
	addWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx == sy && sz != sx
	return z, overflow
}

func (x Int320) Sub(y Int320) (z Int320, overflow bool) {
	subWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx != sy && sz != sx
	return z, overflow
}

// Uint320 is the unsigned magnitude counterpart of Int320.
type Uint320 [5]uint64

func (x Uint320) Words() []uint64 { return x[:] }

func (x Int320) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, 96)
	if x.IsNegative() {
		buf = append(buf, '-')
	}
	buf = appendDecimalWords(buf, x.Abs().Words())
	return string(buf)
}

func (x Int320) Bytes() []byte { return bytesFromWordsSigned(x[:]) }

func Int320FromBytes(data []byte) (Int320, bool) {
	var x Int320
	ok := wordsFromBytesSigned(x[:], data)
	return x, ok
}

// Int320FromSignAndAbs builds a signed 320-bit value from a sign flag and
// an unsigned magnitude.
func Int320FromSignAndAbs(negative bool, mag Uint320) (z Int320, ok bool) {
	const topBit = uint64(1) << 63
	tooBig := mag[4] > topBit || (mag[4] == topBit && (mag[0] != 0 || mag[1] != 0 || mag[2] != 0 || mag[3] != 0))
	if !negative && mag[4]&topBit != 0 {
		return Int320{}, false
	}
	if negative && tooBig {
		return Int320{}, false
	}
	z = Int320{mag[0], mag[1], mag[2], mag[3], mag[4]}
	if negative {
		z, _ = z.Neg()
	}
	return z, true
}

// QuoRoundAwayFromZero divides the magnitude of x by count and rounds half
// away from zero, mirroring Int192's AVG primitive at the wider width
// BigSumAgg.Average uses for its Σx.
func (x Int320) QuoRoundAwayFromZero(count Int320) (q Int320, ok bool) {
	if count.IsZero() || count.IsNegative() {
		return Int320{}, false
	}
	mag := x.Abs()
	cmag := count.Abs()
	var half Uint320
	shrWords(half[:], cmag[:], 1)
	var sum Uint320
	carry := addWords(sum[:], mag[:], half[:])
	if carry != 0 {
		return Int320{}, false
	}
	var qw, rw Uint320
	divModWords(qw[:], rw[:], append([]uint64(nil), sum[:]...), cmag[:])
	return Int320FromSignAndAbs(x.IsNegative(), qw)
}

// Float64 converts x to the nearest float64, used by the variance and
// covariance terminal queries when folding wide numerators into a double.
func (x Int320) Float64() float64 {
	mag := x.Abs()
	f := 0.0
	for i := len(mag) - 1; i >= 0; i-- {
		f = f*18446744073709551616.0 + float64(mag[i])
	}
	if x.IsNegative() {
		f = -f
	}
	return f
}

// Float64 converts x to the nearest float64.
func (x Int192) Float64() float64 {
	mag := x.Abs()
	f := 0.0
	for i := len(mag) - 1; i >= 0; i-- {
		f = f*18446744073709551616.0 + float64(mag[i])
	}
	if x.IsNegative() {
		f = -f
	}
	return f
}
