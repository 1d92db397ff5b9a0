package dasm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/z8ksim/dasm"
	"github.com/sarchlab/z8ksim/emu"
)

// The disassembler reads its mode through the Config interface only;
// a live FCW must be usable behind it without adaptation.
var _ dasm.Config = dasm.StaticConfig{}
var _ dasm.Config = emu.FCW(0)

var _ = Describe("StaticConfig", func() {
	It("should answer with its fixed mode", func() {
		Expect(dasm.StaticConfig{Segmented: true}.SegmentedMode()).To(BeTrue())
		Expect(dasm.StaticConfig{}.SegmentedMode()).To(BeFalse())
	})
})

var _ = Describe("FormatAddress", func() {
	Context("in non-segmented mode", func() {
		cfg := dasm.StaticConfig{}

		It("should print a plain 16-bit offset", func() {
			Expect(dasm.FormatAddress(cfg, 0x1000)).To(Equal("%1000"))
			Expect(dasm.FormatAddress(cfg, 0x00AB)).To(Equal("%00ab"))
		})

		It("should ignore segment bits", func() {
			Expect(dasm.FormatAddress(cfg, 0x7F_1000)).To(Equal("%1000"))
		})
	})

	Context("in segmented mode", func() {
		cfg := dasm.StaticConfig{Segmented: true}

		It("should print segment and offset", func() {
			Expect(dasm.FormatAddress(cfg, 0x02_1000)).To(Equal("<<2>>%1000"))
			Expect(dasm.FormatAddress(cfg, 0x7F_FFFF)).To(Equal("<<127>>%ffff"))
		})

		It("should print segment zero explicitly", func() {
			Expect(dasm.FormatAddress(cfg, 0x0042)).To(Equal("<<0>>%0042"))
		})
	})

	It("should consult the live FCW when used as the config", func() {
		var fcw emu.FCW
		Expect(dasm.FormatAddress(fcw, 0x02_1000)).To(Equal("%1000"))

		fcw.Set(emu.FCWSeg)
		Expect(dasm.FormatAddress(fcw, 0x02_1000)).To(Equal("<<2>>%1000"))
	})
})
