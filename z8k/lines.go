package z8k

// LineState is a value driven onto a CPU input or output line.
type LineState int

// Line-state values. ClearLine and AssertLine are the two levels a
// line can carry; InputLineNMI identifies the non-maskable interrupt
// request. The numeric values are part of the contract with the CPU
// core and must not change.
const (
	ClearLine    LineState = 0
	AssertLine   LineState = 1
	InputLineNMI LineState = 2
)

// AddressSpace identifies one of the CPU's bus spaces.
type AddressSpace int

// Address spaces the Z8000 core addresses.
const (
	ASProgram AddressSpace = iota
	ASData
	ASIO
	ASOpcodes
)

func (s AddressSpace) String() string {
	switch s {
	case ASProgram:
		return "program"
	case ASData:
		return "data"
	case ASIO:
		return "io"
	case ASOpcodes:
		return "opcodes"
	}
	return "unknown"
}
