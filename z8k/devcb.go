package z8k

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Read16Handler services a 16-bit device read. The parameter carries
// whatever the core passes through, typically an address line state
// or a vector slot.
type Read16Handler func(param int) uint16

// WriteLineHandler receives a line-state change from the core.
type WriteLineHandler func(state LineState)

// Read16Array is a bank of read callbacks, indexed the way a CPU core
// indexes its device taps. The embedding machine binds real handlers
// to the slots it wires up; ResolveAllSafe must run once before first
// use and fills every remaining slot with a handler that returns a
// fixed default. After resolution every slot is callable.
type Read16Array struct {
	handlers []Read16Handler
	resolved bool
	logger   *log.Logger
}

// Read16ArrayOption configures a Read16Array.
type Read16ArrayOption func(*Read16Array)

// WithReadLogger attaches a logger used to report unbound slots
// during resolution.
func WithReadLogger(logger *log.Logger) Read16ArrayOption {
	return func(a *Read16Array) {
		a.logger = logger
	}
}

// NewRead16Array creates a callback bank with the given number of
// slots, all unbound.
func NewRead16Array(size int, opts ...Read16ArrayOption) *Read16Array {
	a := &Read16Array{
		handlers: make([]Read16Handler, size),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Bind installs a real handler on slot i. Must happen before
// ResolveAllSafe.
func (a *Read16Array) Bind(i int, fn Read16Handler) {
	a.handlers[i] = fn
}

// ResolveAllSafe fills every unbound slot with a handler returning
// def. Safe to call exactly once; later Bind calls are ignored by
// contract.
func (a *Read16Array) ResolveAllSafe(def uint16) {
	for i, fn := range a.handlers {
		if fn != nil {
			continue
		}
		if a.logger != nil {
			a.logger.Debug("read callback unbound, resolving to default",
				log.String("slot", fmt.Sprintf("%d", i)))
		}
		a.handlers[i] = func(int) uint16 { return def }
	}
	a.resolved = true
}

// Resolved reports whether ResolveAllSafe has run.
func (a *Read16Array) Resolved() bool {
	return a.resolved
}

// Size returns the number of slots.
func (a *Read16Array) Size() int {
	return len(a.handlers)
}

// At returns the handler on slot i. Calling it before ResolveAllSafe
// on an unbound slot is a caller bug, the same as calling through an
// unresolved callback in hardware terms.
func (a *Read16Array) At(i int) Read16Handler {
	return a.handlers[i]
}

// Call invokes slot i with param.
func (a *Read16Array) Call(i, param int) uint16 {
	return a.handlers[i](param)
}

// WriteLine is a single output line. The embedding machine binds a
// real handler; an unbound line resolves to a discard handler, which
// is the correct behavior for an unconnected pin.
type WriteLine struct {
	handler  WriteLineHandler
	resolved bool
	logger   *log.Logger
}

// WriteLineOption configures a WriteLine.
type WriteLineOption func(*WriteLine)

// WithLineLogger attaches a logger used to report an unbound line
// during resolution.
func WithLineLogger(logger *log.Logger) WriteLineOption {
	return func(w *WriteLine) {
		w.logger = logger
	}
}

// NewWriteLine creates an unbound output line.
func NewWriteLine(opts ...WriteLineOption) *WriteLine {
	w := &WriteLine{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// BindLine installs a real handler. Must happen before ResolveSafe.
func (w *WriteLine) BindLine(fn WriteLineHandler) {
	w.handler = fn
}

// ResolveSafe installs a discard handler if the line is unbound.
// Must run once before the first Write.
func (w *WriteLine) ResolveSafe() {
	if w.handler == nil {
		if w.logger != nil {
			w.logger.Debug("write line unbound, resolving to no-op")
		}
		w.handler = func(LineState) {}
	}
	w.resolved = true
}

// Resolved reports whether ResolveSafe has run.
func (w *WriteLine) Resolved() bool {
	return w.resolved
}

// Write drives state onto the line.
func (w *WriteLine) Write(state LineState) {
	w.handler(state)
}
