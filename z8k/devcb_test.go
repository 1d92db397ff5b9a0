package z8k_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/z8ksim/z8k"
)

var _ = Describe("Read16Array", func() {
	var array *z8k.Read16Array

	BeforeEach(func() {
		array = z8k.NewRead16Array(4)
	})

	It("should start unresolved", func() {
		Expect(array.Resolved()).To(BeFalse())
		Expect(array.Size()).To(Equal(4))
	})

	Describe("ResolveAllSafe", func() {
		It("should make every slot return the default for any parameter", func() {
			array.ResolveAllSafe(0xBEEF)

			Expect(array.Resolved()).To(BeTrue())
			for i := 0; i < array.Size(); i++ {
				for _, param := range []int{0, 1, 7, 0xFF} {
					Expect(array.Call(i, param)).To(Equal(uint16(0xBEEF)))
				}
			}
		})

		It("should leave bound slots alone", func() {
			array.Bind(2, func(param int) uint16 {
				return uint16(param) * 2
			})
			array.ResolveAllSafe(0xFFFF)

			Expect(array.Call(2, 21)).To(Equal(uint16(42)))
			Expect(array.Call(0, 21)).To(Equal(uint16(0xFFFF)))
		})
	})

	Describe("At", func() {
		It("should return a callable handler after resolution", func() {
			array.ResolveAllSafe(7)

			handler := array.At(3)
			Expect(handler).NotTo(BeNil())
			Expect(handler(99)).To(Equal(uint16(7)))
		})
	})
})

var _ = Describe("WriteLine", func() {
	var line *z8k.WriteLine

	BeforeEach(func() {
		line = z8k.NewWriteLine()
	})

	It("should start unresolved", func() {
		Expect(line.Resolved()).To(BeFalse())
	})

	Describe("ResolveSafe", func() {
		It("should accept and discard every line state when unbound", func() {
			line.ResolveSafe()

			Expect(line.Resolved()).To(BeTrue())
			for _, state := range []z8k.LineState{
				z8k.ClearLine, z8k.AssertLine, z8k.InputLineNMI,
			} {
				Expect(func() { line.Write(state) }).NotTo(Panic())
			}
		})

		It("should keep a bound handler", func() {
			var seen []z8k.LineState
			line.BindLine(func(state z8k.LineState) {
				seen = append(seen, state)
			})
			line.ResolveSafe()

			line.Write(z8k.AssertLine)
			line.Write(z8k.ClearLine)

			Expect(seen).To(Equal([]z8k.LineState{z8k.AssertLine, z8k.ClearLine}))
		})
	})
})

var _ = Describe("Line constants", func() {
	It("should keep the values the CPU core contract fixes", func() {
		Expect(int(z8k.ClearLine)).To(Equal(0))
		Expect(int(z8k.AssertLine)).To(Equal(1))
		Expect(int(z8k.InputLineNMI)).To(Equal(2))
	})

	It("should enumerate the four bus spaces", func() {
		Expect(int(z8k.ASProgram)).To(Equal(0))
		Expect(int(z8k.ASData)).To(Equal(1))
		Expect(int(z8k.ASIO)).To(Equal(2))
		Expect(int(z8k.ASOpcodes)).To(Equal(3))
	})
})
