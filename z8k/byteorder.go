package z8k

import "encoding/binary"

// ByteOrder selects how multi-byte values are laid out in the
// register bank's backing store. The Z8000 defines its register file
// with big-endian semantics; on a little-endian host the index
// transforms below remap logical register numbers to physical storage
// slots so that the byte, word, and long views of the bank keep
// aliasing the bytes the CPU expects.
type ByteOrder int

// Supported byte orders.
const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// HostByteOrder is the byte order of the machine this process runs
// on, resolved once at startup. Register files default to it so that
// their storage matches what a typed overlay view would see.
var HostByteOrder = resolveHostByteOrder()

func resolveHostByteOrder() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234 {
		return BigEndian
	}
	return LittleEndian
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// WordPairIndex maps a logical word-register number to its physical
// word slot. On a little-endian host adjacent slots swap so that a
// long register still reads as (R(n)<<16) | R(n+1).
func (o ByteOrder) WordPairIndex(n int) int {
	if o == LittleEndian {
		return n ^ 1
	}
	return n
}

// ByteInLongIndex maps a logical byte position to its physical byte
// offset. The XOR keeps the byte inside the same long-register pair
// it occupies on big-endian storage, so RH(n)/RL(n) land on the bytes
// of R(n) rather than its pair partner.
func (o ByteOrder) ByteInLongIndex(n int) int {
	if o == LittleEndian {
		return n ^ 3
	}
	return n
}

// LongIndex maps a logical long-register slot to its physical slot.
// Long granularity already matches between the two orders, so this is
// the identity either way. It exists so every view of the bank goes
// through the same kind of transform.
func (o ByteOrder) LongIndex(n int) int {
	return n
}

// Binary returns the encoding/binary order that reads multi-byte
// values out of storage laid out under o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
