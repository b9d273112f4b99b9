package numeric

import (
	"encoding/binary"

	"github.com/calebcase/numeric/control"
	"github.com/calebcase/numeric/fixed"
)

// joinAggregatorComponents implements the self-describing concatenation
// wire format of spec.md §4.6: a single byte length prefix (0-127)
// precedes every FixedInt component except the last, which consumes the
// remainder. A trailing 8-byte little-endian count follows the
// components, since count is bookkeeping rather than one of the
// aggregator's FixedInt fields.
func joinAggregatorComponents(k kind, parts [][]byte, count int64) ([]byte, error) {
	var buf []byte
	for i, p := range parts {
		if i < len(parts)-1 {
			if len(p) > 127 {
				return nil, errInvalidAggregatorEncoding(k)
			}
			tag, err := control.Encode(uint8(len(p)))
			if err != nil {
				return nil, errInvalidAggregatorEncoding(k)
			}
			buf = append(buf, tag)
		}
		buf = append(buf, p...)
	}
	var countBytes [8]byte
	binary.LittleEndian.PutUint64(countBytes[:], uint64(count))
	return append(buf, countBytes[:]...), nil
}

// splitAggregatorComponents is joinAggregatorComponents' inverse. Input
// shorter than the count trailer, or a length prefix running past the end,
// is rejected; a truncation that only shortens the last component is not
// detected, since that component and the count take whatever bytes remain.
func splitAggregatorComponents(k kind, data []byte, n int) (comps [][]byte, count int64, err error) {
	if len(data) < 8 {
		return nil, 0, errInvalidAggregatorEncoding(k)
	}
	body := data[:len(data)-8]
	count = int64(binary.LittleEndian.Uint64(data[len(data)-8:]))
	comps = make([][]byte, 0, n)
	for i := 0; i < n-1; i++ {
		if len(body) < 1 {
			return nil, 0, errInvalidAggregatorEncoding(k)
		}
		tagType, l, err := control.Parse(body[0])
		if err != nil || tagType != control.Data || len(body) < 1+int(l) {
			return nil, 0, errInvalidAggregatorEncoding(k)
		}
		comps = append(comps, body[1:1+int(l)])
		body = body[1+int(l):]
	}
	comps = append(comps, body)
	return comps, count, nil
}

// MarshalBinary encodes a into the stable wire format.
func (a SumAgg) MarshalBinary() ([]byte, error) {
	return joinAggregatorComponents(numericKind, [][]byte{a.sum.Bytes()}, a.count)
}

// UnmarshalBinary decodes the format produced by MarshalBinary.
func (a *SumAgg) UnmarshalBinary(data []byte) error {
	comps, count, err := splitAggregatorComponents(numericKind, data, 1)
	if err != nil {
		return err
	}
	sum, ok := fixed.Int192FromBytes(comps[0])
	if !ok {
		return errInvalidAggregatorEncoding(numericKind)
	}
	a.sum, a.count = sum, count
	return nil
}

func (a BigSumAgg) MarshalBinary() ([]byte, error) {
	return joinAggregatorComponents(bigNumericKind, [][]byte{a.sum.Bytes()}, a.count)
}

func (a *BigSumAgg) UnmarshalBinary(data []byte) error {
	comps, count, err := splitAggregatorComponents(bigNumericKind, data, 1)
	if err != nil {
		return err
	}
	sum, ok := fixed.Int320FromBytes(comps[0])
	if !ok {
		return errInvalidAggregatorEncoding(bigNumericKind)
	}
	a.sum, a.count = sum, count
	return nil
}

func (a VarianceAgg) MarshalBinary() ([]byte, error) {
	return joinAggregatorComponents(numericKind, [][]byte{a.sumX.Bytes(), a.sumX2.Bytes()}, a.count)
}

func (a *VarianceAgg) UnmarshalBinary(data []byte) error {
	comps, count, err := splitAggregatorComponents(numericKind, data, 2)
	if err != nil {
		return err
	}
	sumX, ok := fixed.Int192FromBytes(comps[0])
	if !ok {
		return errInvalidAggregatorEncoding(numericKind)
	}
	sumX2, ok := fixed.Int320FromBytes(comps[1])
	if !ok {
		return errInvalidAggregatorEncoding(numericKind)
	}
	a.sumX, a.sumX2, a.count = sumX, sumX2, count
	return nil
}

func (a CovarianceAgg) MarshalBinary() ([]byte, error) {
	return joinAggregatorComponents(numericKind, [][]byte{
		a.sumX.Bytes(), a.sumY.Bytes(), a.sumX2.Bytes(), a.sumY2.Bytes(), a.sumXY.Bytes(),
	}, a.count)
}

func (a *CovarianceAgg) UnmarshalBinary(data []byte) error {
	comps, count, err := splitAggregatorComponents(numericKind, data, 5)
	if err != nil {
		return err
	}
	sumX, ok1 := fixed.Int192FromBytes(comps[0])
	sumY, ok2 := fixed.Int192FromBytes(comps[1])
	sumX2, ok3 := fixed.Int320FromBytes(comps[2])
	sumY2, ok4 := fixed.Int320FromBytes(comps[3])
	sumXY, ok5 := fixed.Int320FromBytes(comps[4])
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return errInvalidAggregatorEncoding(numericKind)
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY, a.count = sumX, sumY, sumX2, sumY2, sumXY, count
	return nil
}

// BigVarianceAgg and BigCovarianceAgg accumulate exact FixedInt moments the
// same way VarianceAgg/CovarianceAgg do (see their doc comments), so they
// share the same length-prefixed FixedInt wire scheme.

func (a BigVarianceAgg) MarshalBinary() []byte {
	data, err := joinAggregatorComponents(bigNumericKind, [][]byte{a.sumX.Bytes(), a.sumX2.Bytes()}, a.count)
	if err != nil {
		// sumX/sumX2 are fixed-width FixedInt encodings, always well under
		// the 127-byte inline length limit; joinAggregatorComponents can
		// only fail on an oversized component.
		panic(err)
	}
	return data
}

func (a *BigVarianceAgg) UnmarshalBinary(data []byte) error {
	comps, count, err := splitAggregatorComponents(bigNumericKind, data, 2)
	if err != nil {
		return err
	}
	sumX, ok := fixed.Int320FromBytes(comps[0])
	if !ok {
		return errInvalidAggregatorEncoding(bigNumericKind)
	}
	sumX2, ok := fixed.Int576FromBytes(comps[1])
	if !ok {
		return errInvalidAggregatorEncoding(bigNumericKind)
	}
	a.sumX, a.sumX2, a.count = sumX, sumX2, count
	return nil
}

func (a BigCovarianceAgg) MarshalBinary() []byte {
	data, err := joinAggregatorComponents(bigNumericKind, [][]byte{
		a.sumX.Bytes(), a.sumY.Bytes(), a.sumX2.Bytes(), a.sumY2.Bytes(), a.sumXY.Bytes(),
	}, a.count)
	if err != nil {
		panic(err)
	}
	return data
}

func (a *BigCovarianceAgg) UnmarshalBinary(data []byte) error {
	comps, count, err := splitAggregatorComponents(bigNumericKind, data, 5)
	if err != nil {
		return err
	}
	sumX, ok1 := fixed.Int320FromBytes(comps[0])
	sumY, ok2 := fixed.Int320FromBytes(comps[1])
	sumX2, ok3 := fixed.Int576FromBytes(comps[2])
	sumY2, ok4 := fixed.Int576FromBytes(comps[3])
	sumXY, ok5 := fixed.Int576FromBytes(comps[4])
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return errInvalidAggregatorEncoding(bigNumericKind)
	}
	a.sumX, a.sumY, a.sumX2, a.sumY2, a.sumXY, a.count = sumX, sumY, sumX2, sumY2, sumXY, count
	return nil
}
