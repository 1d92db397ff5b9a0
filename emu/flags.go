package emu

// FCW is the Z8000 flag and control word. The upper byte holds
// control bits, the lower byte the condition flags.
type FCW uint16

// FCW bits.
const (
	FCWSeg  FCW = 0x8000 // segmented mode (Z8001 only)
	FCWSys  FCW = 0x4000 // system/normal mode
	FCWEPU  FCW = 0x2000 // extended processing unit present
	FCWVIE  FCW = 0x1000 // vectored interrupt enable
	FCWNVIE FCW = 0x0800 // non-vectored interrupt enable
	FCWC    FCW = 0x0080 // carry
	FCWZ    FCW = 0x0040 // zero
	FCWS    FCW = 0x0020 // sign
	FCWPV   FCW = 0x0010 // parity/overflow
	FCWDA   FCW = 0x0008 // decimal adjust
	FCWH    FCW = 0x0004 // half carry
)

// Test reports whether every bit in mask is set.
func (f FCW) Test(mask FCW) bool {
	return f&mask == mask
}

// Set sets the bits in mask.
func (f *FCW) Set(mask FCW) {
	*f |= mask
}

// Clear clears the bits in mask.
func (f *FCW) Clear(mask FCW) {
	*f &^= mask
}

// SegmentedMode reports whether the CPU runs segmented. This is the
// concrete answer behind the disassembler's configuration query, so
// FCW satisfies dasm.Config directly.
func (f FCW) SegmentedMode() bool {
	return f.Test(FCWSeg)
}

// SystemMode reports whether the CPU runs in system mode.
func (f FCW) SystemMode() bool {
	return f.Test(FCWSys)
}
