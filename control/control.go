// Package control provides the single-byte tag scheme the aggregator wire
// format uses to length-prefix its FixedInt components (spec.md §4.6): a
// component's length (0-127) is packed into the top 7 bits of a byte whose
// low bit is set, so a reader can tell a length byte from raw payload data
// without any external framing.
package control

import "github.com/calebcase/oops"

// Error is this package's oops domain.
var Error = oops.Namespace("control")

// Type is the control byte's tag.
type Type = byte

// Control Block Types. Data is the only tag the aggregator wire format
// needs: an inline 0-127 length packed into the byte's top 7 bits.
var (
	Invalid Type = 0b0000_0000
	Data    Type = 0b0000_0001
)

const dataMask byte = 0b0000_0001

// Encode packs a length (0-127) into a Data-tagged control byte.
func Encode(length uint8) (byte, error) {
	if length > 127 {
		return 0, Error.New("length %d exceeds 7-bit data tag range", length)
	}
	return length<<1 | dataMask, nil
}

// Parse returns the control byte's type and the 7-bit value it carries.
func Parse(b byte) (t Type, value uint8, err error) {
	if b&dataMask == Data {
		return Data, b &^ dataMask >> 1, nil
	}
	return Invalid, 0, Error.New("invalid control byte: %08b", b)
}
