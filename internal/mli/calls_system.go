package mli

import "github.com/halfbit/prodos8emu/internal/cpu"

func init() {
	registerMLICall(0xD2, 2, setBuf)
	registerMLICall(0xD3, 2, getBuf)
	registerMLICall(0x82, 0, getTime)
	registerMLICall(0x40, 2, allocInterrupt)
	registerMLICall(0x41, 1, deallocInterrupt)
	registerMLICall(0x80, 3, readBlock)
	registerMLICall(0x81, 3, writeBlock)
	registerMLICall(0x65, 4, quit)
}

func setBuf(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	addr := bus.ReadWord(pb + 2)
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43) // BAD_REF_NUM
	}
	o.bufAddr = addr
	return ErrNone
}

func getBuf(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	bus.WriteWord(pb+2, o.bufAddr)
	return ErrNone
}

// systemDateAddr and systemTimeAddr are the fixed ProDOS global-page
// words the system clock is conventionally read from; GET_TIME writes the current date/time there directly rather
// than into the (zero-length) parameter block.
const (
	systemDateAddr = 0xBF90
	systemTimeAddr = 0xBF92
)

func getTime(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	now := d.now()
	bus.WriteWord(systemDateAddr, encodeDate(now))
	bus.WriteWord(systemTimeAddr, encodeTime(now))
	return ErrNone
}

func allocInterrupt(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	handlerAddr := bus.ReadWord(pb + 2)
	slot := d.ctx.allocInterrupt(handlerAddr)
	if slot == 0 {
		return Code(0x25) // INTERRUPT_TABLE_FULL
	}
	bus.WriteByte(pb+1, byte(slot))
	return ErrNone
}

func deallocInterrupt(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	slot := int(bus.ReadByte(pb + 1))
	if !d.ctx.deallocInterrupt(slot) {
		return Code(0x4A) // interrupt table entry not found
	}
	return ErrNone
}

// readBlock and writeBlock address storage by 512-byte block number on
// a physical device, a model this emulator does not implement: every
// file lives at a host path instead of a block offset on a unit number.
// Both report "not implemented" once the parameter count has been
// validated, rather than silently succeeding.
func readBlock(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	return ErrIOError
}

func writeBlock(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	return ErrIOError
}

// quit closes every open file and halts the CPU core, the supplemented
// ProDOS 8 system call real programs invoke on exit.
func quit(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	d.ctx.closeAll()
	d.ctx.quit = true
	return ErrNone
}
