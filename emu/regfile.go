// Package emu provides the Z8000 register bank and the CPU state an
// external core component addresses into.
package emu

import (
	"github.com/sarchlab/z8ksim/z8k"
)

// WordRegCount is the number of word registers (R0-R15).
const WordRegCount = 16

// ByteRegCount is the number of byte registers (RH0-RH7, RL0-RL7).
const ByteRegCount = 16

// RegFile is the Z8000 general-purpose register bank.
// Sixteen word registers share one 32-byte store that the CPU also
// views as byte registers RH0-RL7, long registers RR0-RR14, and quad
// registers RQ0-RQ12. The views overlap: RH3 and RL3 are the two
// bytes of R3, RR2 is (R2<<16)|R3, RQ0 is (RR0<<32)|RR2.
//
// The store is laid out under a byte order, the host's by default.
// Every accessor remaps its logical register number through the z8k
// index transforms before touching storage, so all views observe the
// bytes the CPU's big-endian register semantics require on either
// layout. The bank itself never validates register numbers; passing
// one outside the views described above is the same bug as indexing
// past the end of an array.
type RegFile struct {
	data  [2 * WordRegCount]byte
	order z8k.ByteOrder
}

// RegFileOption configures a RegFile.
type RegFileOption func(*RegFile)

// WithByteOrder lays the backing store out under a specific byte
// order instead of the host's. Tests use this to exercise both
// layouts on one machine.
func WithByteOrder(order z8k.ByteOrder) RegFileOption {
	return func(r *RegFile) {
		r.order = order
	}
}

// NewRegFile creates a zeroed register bank.
func NewRegFile(opts ...RegFileOption) *RegFile {
	r := &RegFile{order: z8k.HostByteOrder}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Order returns the byte order the backing store is laid out under.
func (r *RegFile) Order() z8k.ByteOrder {
	return r.order
}

// Reset zeroes the whole bank.
func (r *RegFile) Reset() {
	r.data = [2 * WordRegCount]byte{}
}

// byteRegOffset converts a byte-register number to its big-endian
// storage offset. RH0-RH7 are numbers 0-7, RL0-RL7 are 8-15; byte
// register n addresses word register n&7.
func byteRegOffset(n int) int {
	return (n&7)<<1 | (n&8)>>3
}

// ReadByteReg reads byte register n (RH0-RH7 for n 0-7, RL0-RL7 for
// n 8-15).
func (r *RegFile) ReadByteReg(n int) uint8 {
	return r.data[r.order.ByteInLongIndex(byteRegOffset(n))]
}

// WriteByteReg writes byte register n.
func (r *RegFile) WriteByteReg(n int, v uint8) {
	r.data[r.order.ByteInLongIndex(byteRegOffset(n))] = v
}

// ReadWordReg reads word register Rn, n in 0-15.
func (r *RegFile) ReadWordReg(n int) uint16 {
	off := 2 * r.order.WordPairIndex(n)
	return r.order.Binary().Uint16(r.data[off : off+2])
}

// WriteWordReg writes word register Rn.
func (r *RegFile) WriteWordReg(n int, v uint16) {
	off := 2 * r.order.WordPairIndex(n)
	r.order.Binary().PutUint16(r.data[off:off+2], v)
}

// ReadLongReg reads long register RRn, n even in 0-14. The result is
// (R(n)<<16) | R(n+1).
func (r *RegFile) ReadLongReg(n int) uint32 {
	off := 4 * r.order.LongIndex(n>>1)
	return r.order.Binary().Uint32(r.data[off : off+4])
}

// WriteLongReg writes long register RRn.
func (r *RegFile) WriteLongReg(n int, v uint32) {
	off := 4 * r.order.LongIndex(n>>1)
	r.order.Binary().PutUint32(r.data[off:off+4], v)
}

// ReadQuadReg reads quad register RQn, n in {0, 4, 8, 12}. The result
// is (RR(n)<<32) | RR(n+2). Quad access has no transform of its own;
// it composes from the long view.
func (r *RegFile) ReadQuadReg(n int) uint64 {
	return uint64(r.ReadLongReg(n))<<32 | uint64(r.ReadLongReg(n+2))
}

// WriteQuadReg writes quad register RQn.
func (r *RegFile) WriteQuadReg(n int, v uint64) {
	r.WriteLongReg(n, uint32(v>>32))
	r.WriteLongReg(n+2, uint32(v))
}
