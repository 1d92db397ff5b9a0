// Package z8k provides the host-environment primitives a Z8000 CPU
// core and disassembler expect from their embedding environment:
// fixed-width type aliases, interrupt line and address-space
// constants, byte-order index transforms for the register bank, and
// device-callback plumbing.
package z8k

import "math/bits"

// Fixed-width integer aliases matching the register and bus widths
// the CPU core is written against.
type (
	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64
	S8  = int8
	S16 = int16
	S32 = int32
	S64 = int64
)

// Offs is a bus offset. A segmented Z8000 address is a 7-bit segment
// number plus a 16-bit offset, so 32 bits covers every space.
type Offs = uint32

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(v uint16) uint16 {
	return v>>8 | v<<8
}

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// Bit extracts bit n of v.
func Bit(v uint32, n int) int {
	return int(v>>uint(n)) & 1
}
