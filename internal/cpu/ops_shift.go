package cpu

func init() {
	registerShift()
}

func registerShift() {
	register(0x0A, func(c *CPU) { c.asl(operand{kind: operandAccumulator}); c.cycles += 2 })
	register(0x06, func(c *CPU) { c.asl(c.zp()); c.cycles += 5 })
	register(0x16, func(c *CPU) { c.asl(c.zpX()); c.cycles += 6 })
	register(0x0E, func(c *CPU) { c.asl(c.abs()); c.cycles += 6 })
	register(0x1E, func(c *CPU) { c.asl(c.absIndexed(c.reg.X, false)); c.cycles += 7 })

	register(0x4A, func(c *CPU) { c.lsr(operand{kind: operandAccumulator}); c.cycles += 2 })
	register(0x46, func(c *CPU) { c.lsr(c.zp()); c.cycles += 5 })
	register(0x56, func(c *CPU) { c.lsr(c.zpX()); c.cycles += 6 })
	register(0x4E, func(c *CPU) { c.lsr(c.abs()); c.cycles += 6 })
	register(0x5E, func(c *CPU) { c.lsr(c.absIndexed(c.reg.X, false)); c.cycles += 7 })

	register(0x2A, func(c *CPU) { c.rol(operand{kind: operandAccumulator}); c.cycles += 2 })
	register(0x26, func(c *CPU) { c.rol(c.zp()); c.cycles += 5 })
	register(0x36, func(c *CPU) { c.rol(c.zpX()); c.cycles += 6 })
	register(0x2E, func(c *CPU) { c.rol(c.abs()); c.cycles += 6 })
	register(0x3E, func(c *CPU) { c.rol(c.absIndexed(c.reg.X, false)); c.cycles += 7 })

	register(0x6A, func(c *CPU) { c.ror(operand{kind: operandAccumulator}); c.cycles += 2 })
	register(0x66, func(c *CPU) { c.ror(c.zp()); c.cycles += 5 })
	register(0x76, func(c *CPU) { c.ror(c.zpX()); c.cycles += 6 })
	register(0x6E, func(c *CPU) { c.ror(c.abs()); c.cycles += 6 })
	register(0x7E, func(c *CPU) { c.ror(c.absIndexed(c.reg.X, false)); c.cycles += 7 })

	register(0x1A, func(c *CPU) { c.inc(operand{kind: operandAccumulator}); c.cycles += 2 })
	register(0xE6, func(c *CPU) { c.inc(c.zp()); c.cycles += 5 })
	register(0xF6, func(c *CPU) { c.inc(c.zpX()); c.cycles += 6 })
	register(0xEE, func(c *CPU) { c.inc(c.abs()); c.cycles += 6 })
	register(0xFE, func(c *CPU) { c.inc(c.absIndexed(c.reg.X, false)); c.cycles += 7 })

	register(0x3A, func(c *CPU) { c.dec(operand{kind: operandAccumulator}); c.cycles += 2 })
	register(0xC6, func(c *CPU) { c.dec(c.zp()); c.cycles += 5 })
	register(0xD6, func(c *CPU) { c.dec(c.zpX()); c.cycles += 6 })
	register(0xCE, func(c *CPU) { c.dec(c.abs()); c.cycles += 6 })
	register(0xDE, func(c *CPU) { c.dec(c.absIndexed(c.reg.X, false)); c.cycles += 7 })
}

func (c *CPU) asl(o operand) {
	v := o.read(c)
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.setNZ(v)
	o.write(c, v)
}

func (c *CPU) lsr(o operand) {
	v := o.read(c)
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.setNZ(v)
	o.write(c, v)
}

func (c *CPU) rol(o operand) {
	v := o.read(c)
	carryIn := byte(0)
	if c.getFlag(flagC) {
		carryIn = 1
	}
	c.setFlag(flagC, v&0x80 != 0)
	v = (v << 1) | carryIn
	c.setNZ(v)
	o.write(c, v)
}

func (c *CPU) ror(o operand) {
	v := o.read(c)
	carryIn := byte(0)
	if c.getFlag(flagC) {
		carryIn = 0x80
	}
	c.setFlag(flagC, v&0x01 != 0)
	v = (v >> 1) | carryIn
	c.setNZ(v)
	o.write(c, v)
}

func (c *CPU) inc(o operand) {
	v := o.read(c) + 1
	c.setNZ(v)
	o.write(c, v)
}

func (c *CPU) dec(o operand) {
	v := o.read(c) - 1
	c.setNZ(v)
	o.write(c, v)
}
