package mli

import (
	"time"

	"github.com/halfbit/prodos8emu/internal/cpu"
)

// mliCallFunc implements one MLI call's body. The dispatcher has already
// validated the parameter count by the time this runs.
type mliCallFunc func(d *Dispatcher, bus cpu.MLIBus, paramBlockAddr uint16) Code

type mliCall struct {
	paramCount byte
	fn         mliCallFunc
}

var callTable [256]*mliCall

// registerMLICall installs the handler for call number num. Panics on a
// duplicate registration, the same guard the opcode table uses.
func registerMLICall(num byte, paramCount byte, fn mliCallFunc) {
	if callTable[num] != nil {
		panic("mli: duplicate call registration")
	}
	callTable[num] = &mliCall{paramCount: paramCount, fn: fn}
}

// Dispatcher implements cpu.Dispatcher: it is the MLI's single entry
// point, invoked once per JSR $BF00 trap.
type Dispatcher struct {
	ctx *Context
	now func() time.Time
}

// NewDispatcher returns a Dispatcher rooted at volumesRoot, where each
// top-level directory is exposed as a ProDOS volume.
func NewDispatcher(volumesRoot string) *Dispatcher {
	return &Dispatcher{ctx: NewContext(volumesRoot), now: time.Now}
}

// Dispatch decodes the parameter count at paramBlockAddr, validates it
// against the call's declared arity, and runs the call. Unknown call
// numbers report ErrBadSystemCall; a parameter count mismatch reports
// ErrBadParameterCount, mirroring real ProDOS's own validation order.
func (d *Dispatcher) Dispatch(bus cpu.MLIBus, callNumber byte, paramBlockAddr uint16) byte {
	call := callTable[callNumber]
	if call == nil {
		return byte(ErrBadSystemCall)
	}
	got := bus.ReadByte(paramBlockAddr)
	if got != call.paramCount {
		return byte(ErrBadParameterCount)
	}
	return byte(call.fn(d, bus, paramBlockAddr))
}

// ShouldHalt reports whether QUIT has been called, so the CPU core can
// stop executing the way STP does. Checked via interface assertion after
// every trap rather than added to the cpu.Dispatcher contract itself.
func (d *Dispatcher) ShouldHalt() bool {
	return d.ctx.quit
}
