package numeric

import (
	"encoding/binary"

	"github.com/calebcase/numeric/fixed"
)

// LegacySumEncoding is the pre-existing two-part N38.9 SUM aggregator
// format this package must keep reading and writing byte-for-byte so that
// already-persisted partial aggregates deserialize correctly (spec.md
// §4.7, §8.1). It represents the same 192-bit two's complement value as
// SumAgg's Σx accumulator, just split into a 128-bit low half and a
// 64-bit high half instead of stored as one Int192.
type LegacySumEncoding struct {
	Upper int64
	Lower fixed.Int128
}

// Bytes encodes l as 24 bytes: sum_lower_lo | sum_lower_hi | sum_upper,
// each an 8-byte little-endian word.
func (l LegacySumEncoding) Bytes() []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint64(buf[0:8], l.Lower[0])
	binary.LittleEndian.PutUint64(buf[8:16], l.Lower[1])
	binary.LittleEndian.PutUint64(buf[16:24], uint64(l.Upper))
	return buf
}

// LegacySumEncodingFromBytes decodes the format produced by Bytes.
func LegacySumEncodingFromBytes(data []byte) (LegacySumEncoding, error) {
	if len(data) != 24 {
		return LegacySumEncoding{}, errInvalidAggregatorEncoding(numericKind)
	}
	lo := binary.LittleEndian.Uint64(data[0:8])
	hi := binary.LittleEndian.Uint64(data[8:16])
	upper := int64(binary.LittleEndian.Uint64(data[16:24]))
	return LegacySumEncoding{Upper: upper, Lower: fixed.Int128{lo, hi}}, nil
}

// ToInt192 reconstructs the 192-bit signed accumulator value. The original
// encoder (numeric_value.cc's sum_upper_/sum_lower_ split) treats the two
// fields asymmetrically depending on whether the value overflowed 128 bits
// while it was being accumulated: when Upper is zero, the partial sum never
// overflowed and Lower alone carries the sign, so it must be sign-extended
// on its own into the wider word; when Upper is nonzero, it carries both the
// sign and the bits above 128, and Lower is placed as a plain unsigned word
// beneath it.
func (l LegacySumEncoding) ToInt192() fixed.Int192 {
	if l.Upper == 0 {
		return fixed.Int192FromInt128(l.Lower)
	}
	return fixed.Int192{l.Lower[0], l.Lower[1], uint64(l.Upper)}
}

// LegacySumEncodingFromInt192 splits a 192-bit accumulator into the legacy
// two-part form. Mirroring the original encoder, a value that fits in a
// signed 128-bit word (the common case: the running sum never overflowed
// Numeric's own width) is encoded with Upper=0 and that value carried
// as-is, sign and all, in Lower; only a value that genuinely needs the
// extra word is split as Upper carrying the sign plus the high bits and
// Lower placed beneath it unsigned.
func LegacySumEncodingFromInt192(x fixed.Int192) LegacySumEncoding {
	if lower, fits := x.NarrowToInt128(); fits {
		return LegacySumEncoding{Upper: 0, Lower: lower}
	}
	return LegacySumEncoding{Upper: int64(x[2]), Lower: fixed.Int128{x[0], x[1]}}
}

// MarshalLegacy encodes a's Σx accumulator in the legacy two-part format.
// The legacy format carries no count field; a round trip through it loses
// AVG's denominator.
func (a SumAgg) MarshalLegacy() []byte {
	return LegacySumEncodingFromInt192(a.sum).Bytes()
}

// UnmarshalLegacy decodes the legacy two-part format into a's Σx
// accumulator, leaving count untouched.
func (a *SumAgg) UnmarshalLegacy(data []byte) error {
	enc, err := LegacySumEncodingFromBytes(data)
	if err != nil {
		return err
	}
	a.sum = enc.ToInt192()
	return nil
}
