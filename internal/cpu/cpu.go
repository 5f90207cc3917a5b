// Package cpu implements a cycle-counted WDC 65C02 core: the full legal
// opcode set, the Rockwell bit instructions (RMB/SMB/BBR/BBS), and a
// JSR $BF00 trap that hands control to an externally supplied dispatcher.
package cpu

import "log"

// resetVector is the address of the 16-bit reset vector, read on Reset.
const resetVector = 0xFFFC

// Registers holds the full 65C02 visible register file.
type Registers struct {
	PC uint16
	A  byte
	X  byte
	Y  byte
	S  byte
	P  byte
}

// CPU is a 65C02 core driven by a Bus. It is deterministic and has no
// host side effects of its own; the only ways it reaches outside its own
// state are bus accesses, the optional MLI Dispatcher, and the two
// optional debug sinks.
type CPU struct {
	reg    Registers
	bus    Bus
	mliBus MLIBus // non-nil when bus also implements MLIBus

	dispatcher Dispatcher

	mliLog  DebugSink
	coutLog DebugSink

	stopped bool // STP executed
	waiting bool // WAI executed, cleared by RequestInterrupt/NMI semantics are out of scope

	cycles uint64
}

// New returns a CPU wired to bus. If bus also implements MLIBus, the
// JSR $BF00 trap is usable; otherwise JSR $BF00 executes as an ordinary
// subroutine call even when a dispatcher is installed.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	if mb, ok := bus.(MLIBus); ok {
		c.mliBus = mb
	}
	return c
}

// SetDispatcher installs the MLI call dispatcher invoked by JSR $BF00.
func (c *CPU) SetDispatcher(d Dispatcher) { c.dispatcher = d }

// SetMLILog installs the optional MLI trap debug sink.
func (c *CPU) SetMLILog(sink DebugSink) { c.mliLog = sink }

// SetCOUTLog installs the optional character-output debug sink.
func (c *CPU) SetCOUTLog(sink DebugSink) { c.coutLog = sink }

// Registers returns a copy of the current register file.
func (c *CPU) Registers() Registers { return c.reg }

// SetRegisters overwrites the register file, for test setup and state
// restore.
func (c *CPU) SetRegisters(r Registers) { c.reg = r }

// Stopped reports whether STP has halted the core.
func (c *CPU) Stopped() bool { return c.stopped }

// Waiting reports whether WAI has parked the core awaiting an interrupt.
func (c *CPU) Waiting() bool { return c.waiting }

// Cycles returns the running total of bus cycles consumed since
// construction or the last Reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Reset loads PC from the reset vector, sets S to $FF, sets I and the
// unused flag, and clears the stopped/waiting latches.
func (c *CPU) Reset() {
	c.reg.S = 0xFF
	c.reg.P = flagI | flagU
	c.reg.PC = c.readWord(resetVector)
	if c.reg.PC == 0 {
		log.Printf("[prodos8] reset vector at $%04X reads $0000; bus may have no ROM loaded", resetVector)
	}
	c.stopped = false
	c.waiting = false
	c.cycles = 0
}

// readByte performs a soft-switch-qualified bus read.
func (c *CPU) readByte(addr uint16) byte {
	c.bus.SoftSwitch(addr, false)
	return c.bus.ReadByte(addr)
}

// writeByte performs a soft-switch-qualified bus write.
func (c *CPU) writeByte(addr uint16, v byte) {
	c.bus.SoftSwitch(addr, true)
	c.bus.WriteByte(addr, v)
}

func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.readByte(addr)
	hi := c.readByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// fetchPC reads the byte at PC and advances PC.
func (c *CPU) fetchPC() byte {
	v := c.readByte(c.reg.PC)
	c.reg.PC++
	return v
}

// fetchPCWord reads a little-endian word at PC and advances PC by two.
func (c *CPU) fetchPCWord() uint16 {
	lo := c.fetchPC()
	hi := c.fetchPC()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) push(v byte) {
	c.writeByte(0x0100|uint16(c.reg.S), v)
	c.reg.S--
}

func (c *CPU) pop() byte {
	c.reg.S++
	return c.readByte(0x0100 | uint16(c.reg.S))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(lo) | uint16(hi)<<8
}

// Step executes one instruction and returns the number of bus cycles it
// consumed. If the core is stopped it does nothing and returns 0.
func (c *CPU) Step() int {
	if c.stopped {
		return 0
	}

	before := c.cycles
	opcode := c.fetchPC()
	fn := opcodeTable[opcode]
	if fn == nil {
		c.execUndocumented(opcode)
	} else {
		fn(c)
	}
	return int(c.cycles - before)
}

// Run executes up to max instructions, stopping early if STP or WAI is
// executed, or immediately if the core is already stopped or waiting. It
// returns the number of instructions actually executed.
func (c *CPU) Run(max int) int {
	n := 0
	for n < max {
		if c.stopped || c.waiting {
			break
		}
		c.Step()
		n++
	}
	return n
}

// RequestInterrupt clears a WAI-induced wait, mirroring how an IRQ wakes
// a real 65C02 even with interrupts masked. Full IRQ/BRK vectoring into
// the interrupt handler is not implemented; callers that need it can
// synthesize a BRK by pushing PC/P and jumping to $FFFE directly.
func (c *CPU) RequestInterrupt() {
	c.waiting = false
}
