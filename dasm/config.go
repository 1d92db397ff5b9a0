// Package dasm declares the configuration surface a Z8000
// disassembler consumes from the CPU it decodes for.
package dasm

import (
	"fmt"

	"github.com/sarchlab/z8ksim/z8k"
)

// Config answers the questions a disassembler asks about the CPU's
// current operating mode. Implementations are read-only; the
// disassembler queries once per decode decision and never assumes a
// concrete type behind the interface.
type Config interface {
	// SegmentedMode reports whether segmented addressing is active.
	SegmentedMode() bool
}

// StaticConfig is a Config with a fixed answer, for disassembling
// without a live CPU attached.
type StaticConfig struct {
	Segmented bool
}

// SegmentedMode implements Config.
func (c StaticConfig) SegmentedMode() bool {
	return c.Segmented
}

// FormatAddress renders addr the way Z8000 listings print it: as
// <<seg>>%offset when cfg reports segmented addressing, as a plain
// 16-bit %offset otherwise. The % prefix is Zilog hex notation.
func FormatAddress(cfg Config, addr z8k.Offs) string {
	if cfg.SegmentedMode() {
		seg := addr >> 16 & 0x7f
		return fmt.Sprintf("<<%d>>%%%04x", seg, addr&0xffff)
	}
	return fmt.Sprintf("%%%04x", addr&0xffff)
}
