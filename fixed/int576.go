package fixed

// Int576 is a signed 576-bit integer (9 little-endian 64-bit words). It is
// the Σx², Σxy accumulator width used by BigVarianceAgg and BigCovarianceAgg:
// a BigNumeric product is at most 512 bits, and 576 gives the extra 64 bits
// of headroom needed to sum up to 2^63 such products without overflow, the
// same margin Int320 gives Numeric's 256-bit products.
type Int576 [9]uint64

func (x Int576) IsNegative() bool { return isNegativeWords(x[:]) }
func (x Int576) IsZero() bool     { return isZeroWords(x[:]) }

func (x Int576) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.IsNegative() {
		return -1
	}
	return 1
}

func (x Int576) Cmp(y Int576) int { return cmpWordsSigned(x[:], y[:]) }

func (x Int576) Abs() Uint576 {
	var m Uint576
	absWordsSigned(m[:], x[:])
	return m
}

func (x Int576) Neg() (z Int576, overflow bool) {
	overflow = negWords(z[:], x[:])
	return z, overflow
}

func (x Int576) Add(y Int576) (z Int576, overflow bool) {
	addWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx == sy && sz != sx
	return z, overflow
}

func (x Int576) Sub(y Int576) (z Int576, overflow bool) {
	subWords(z[:], x[:], y[:])
	sx, sy, sz := isNegativeWords(x[:]), isNegativeWords(y[:]), isNegativeWords(z[:])
	overflow = sx != sy && sz != sx
	return z, overflow
}

// Uint576 is the unsigned magnitude counterpart of Int576.
type Uint576 [9]uint64

func (x Uint576) Words() []uint64 { return x[:] }

func (x Int576) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, 176)
	if x.IsNegative() {
		buf = append(buf, '-')
	}
	buf = appendDecimalWords(buf, x.Abs().Words())
	return string(buf)
}

func (x Int576) Bytes() []byte { return bytesFromWordsSigned(x[:]) }

func Int576FromBytes(data []byte) (Int576, bool) {
	var x Int576
	ok := wordsFromBytesSigned(x[:], data)
	return x, ok
}

// Int576FromSignAndAbs builds a signed 576-bit value from a sign flag and an
// unsigned magnitude.
func Int576FromSignAndAbs(negative bool, mag Uint576) (z Int576, ok bool) {
	const topBit = uint64(1) << 63
	restNonZero := mag[0] != 0 || mag[1] != 0 || mag[2] != 0 || mag[3] != 0 ||
		mag[4] != 0 || mag[5] != 0 || mag[6] != 0 || mag[7] != 0
	tooBig := mag[8] > topBit || (mag[8] == topBit && restNonZero)
	if !negative && mag[8]&topBit != 0 {
		return Int576{}, false
	}
	if negative && tooBig {
		return Int576{}, false
	}
	copy(z[:], mag[:])
	if negative {
		z, _ = z.Neg()
	}
	return z, true
}

// QuoRoundAwayFromZero divides the magnitude of x by count and rounds away
// from zero, mirroring Int320's AVG-style primitive at the wider width
// BigVarianceAgg and BigCovarianceAgg use for their squared/product moments.
func (x Int576) QuoRoundAwayFromZero(count Int576) (q Int576, ok bool) {
	if count.IsZero() || count.IsNegative() {
		return Int576{}, false
	}
	mag := x.Abs()
	cmag := count.Abs()
	var half Uint576
	shrWords(half[:], cmag[:], 1)
	var sum Uint576
	carry := addWords(sum[:], mag[:], half[:])
	if carry != 0 {
		return Int576{}, false
	}
	var qw, rw Uint576
	divModWords(qw[:], rw[:], append([]uint64(nil), sum[:]...), cmag[:])
	return Int576FromSignAndAbs(x.IsNegative(), qw)
}

// Float64 converts x to the nearest float64, used by the variance and
// covariance terminal queries when folding wide numerators into a double.
func (x Int576) Float64() float64 {
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
