package cpu

func init() {
	registerControl()
}

// mliTrapAddress is the address JSR targets to invoke the Machine
// Language Interface dispatcher instead of a normal subroutine call.
const mliTrapAddress = 0xBF00

// coutVector is the classic Apple II character-output vector location in
// zero page. A JMP (indirect) through this exact pointer is understood to
// be a COUT call: the low seven bits of A are forwarded to the COUT
// debug sink in addition to the indirect jump executing normally.
const coutVector = 0x0036

func registerControl() {
	register(0x4C, func(c *CPU) { c.reg.PC = c.fetchPCWord(); c.cycles += 3 })
	register(0x6C, func(c *CPU) {
		ptr := c.fetchPCWord()
		if ptr == coutVector {
			c.emitCOUT()
		}
		c.reg.PC = c.readWord(ptr)
		c.cycles += 6
	})
	register(0x7C, func(c *CPU) {
		base := c.fetchPCWord()
		c.reg.PC = c.readWord(base + uint16(c.reg.X))
		c.cycles += 6
	})

	register(0x20, func(c *CPU) {
		target := c.fetchPCWord()
		if target == mliTrapAddress && c.dispatcher != nil && c.mliBus != nil {
			c.execMLITrap()
		} else {
			c.pushWord(c.reg.PC - 1)
			c.reg.PC = target
		}
		c.cycles += 6
	})

	register(0x60, func(c *CPU) {
		c.reg.PC = c.popWord() + 1
		c.cycles += 6
	})

	register(0x40, func(c *CPU) {
		c.reg.P = (c.pop() &^ flagB) | flagU
		c.reg.PC = c.popWord()
		c.cycles += 6
	})

	register(0x00, func(c *CPU) {
		c.fetchPC() // BRK's signature byte, conventionally ignored
		c.pushWord(c.reg.PC)
		c.push(c.reg.P | flagB | flagU)
		c.setFlag(flagI, true)
		c.setFlag(flagD, false)
		c.reg.PC = c.readWord(0xFFFE)
		c.cycles += 7
	})

	register(0xEA, func(c *CPU) { c.cycles += 2 })

	register(0xDB, func(c *CPU) { c.stopped = true; c.cycles += 3 })
	register(0xCB, func(c *CPU) { c.waiting = true; c.cycles += 3 })
}

// execMLITrap hands a JSR $BF00 call to the installed Dispatcher. The
// call number is the byte immediately following the JSR (at the return
// address on the stack in a real ProDOS system call, but here simply the
// byte at the current PC); the parameter block pointer follows it as two
// bytes. Both are consumed from the instruction stream, and PC ends up
// positioned after them, mirroring how a ProDOS MLI call site lays out
// "JSR $BF00 / DFB call / DA paramblock". The 0x20 handler only reaches
// here once it has already confirmed a dispatcher is installed; with none
// attached, JSR $BF00 behaves as an ordinary subroutine call instead.
func (c *CPU) execMLITrap() {
	callNumber := c.fetchPC()
	paramBlockAddr := c.fetchPCWord()

	result := c.dispatcher.Dispatch(c.mliBus, callNumber, paramBlockAddr)
	c.setFlag(flagC, result != 0)
	c.reg.A = result
	c.setNZ(result)
	c.setFlag(flagD, false) // ProDOS contract: every MLI call returns with decimal mode clear

	c.logMLITrap(callNumber, paramBlockAddr, result)

	if h, ok := c.dispatcher.(interface{ ShouldHalt() bool }); ok && h.ShouldHalt() {
		c.stopped = true
	}
}
