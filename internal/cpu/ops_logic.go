package cpu

func init() {
	registerLogic()
}

func registerLogic() {
	register(0x29, func(c *CPU) { c.and(c.immediate()); c.cycles += 2 })
	register(0x25, func(c *CPU) { c.and(c.zp()); c.cycles += 3 })
	register(0x35, func(c *CPU) { c.and(c.zpX()); c.cycles += 4 })
	register(0x2D, func(c *CPU) { c.and(c.abs()); c.cycles += 4 })
	register(0x3D, func(c *CPU) { c.and(c.absIndexed(c.reg.X, true)); c.cycles += 4 })
	register(0x39, func(c *CPU) { c.and(c.absIndexed(c.reg.Y, true)); c.cycles += 4 })
	register(0x21, func(c *CPU) { c.and(c.indX()); c.cycles += 6 })
	register(0x31, func(c *CPU) { c.and(c.indY(true)); c.cycles += 5 })
	register(0x32, func(c *CPU) { c.and(c.zpInd()); c.cycles += 5 })

	register(0x09, func(c *CPU) { c.ora(c.immediate()); c.cycles += 2 })
	register(0x05, func(c *CPU) { c.ora(c.zp()); c.cycles += 3 })
	register(0x15, func(c *CPU) { c.ora(c.zpX()); c.cycles += 4 })
	register(0x0D, func(c *CPU) { c.ora(c.abs()); c.cycles += 4 })
	register(0x1D, func(c *CPU) { c.ora(c.absIndexed(c.reg.X, true)); c.cycles += 4 })
	register(0x19, func(c *CPU) { c.ora(c.absIndexed(c.reg.Y, true)); c.cycles += 4 })
	register(0x01, func(c *CPU) { c.ora(c.indX()); c.cycles += 6 })
	register(0x11, func(c *CPU) { c.ora(c.indY(true)); c.cycles += 5 })
	register(0x12, func(c *CPU) { c.ora(c.zpInd()); c.cycles += 5 })

	register(0x49, func(c *CPU) { c.eor(c.immediate()); c.cycles += 2 })
	register(0x45, func(c *CPU) { c.eor(c.zp()); c.cycles += 3 })
	register(0x55, func(c *CPU) { c.eor(c.zpX()); c.cycles += 4 })
	register(0x4D, func(c *CPU) { c.eor(c.abs()); c.cycles += 4 })
	register(0x5D, func(c *CPU) { c.eor(c.absIndexed(c.reg.X, true)); c.cycles += 4 })
	register(0x59, func(c *CPU) { c.eor(c.absIndexed(c.reg.Y, true)); c.cycles += 4 })
	register(0x41, func(c *CPU) { c.eor(c.indX()); c.cycles += 6 })
	register(0x51, func(c *CPU) { c.eor(c.indY(true)); c.cycles += 5 })
	register(0x52, func(c *CPU) { c.eor(c.zpInd()); c.cycles += 5 })

	register(0x24, func(c *CPU) { c.bit(c.zp(), true); c.cycles += 3 })
	register(0x2C, func(c *CPU) { c.bit(c.abs(), true); c.cycles += 4 })
	register(0x34, func(c *CPU) { c.bit(c.zpX(), true); c.cycles += 4 })
	register(0x3C, func(c *CPU) { c.bit(c.absIndexed(c.reg.X, true), true); c.cycles += 4 })
	register(0x89, func(c *CPU) { c.bit(c.immediate(), false); c.cycles += 2 })

	register(0x04, func(c *CPU) { c.tsb(c.zp()); c.cycles += 5 })
	register(0x0C, func(c *CPU) { c.tsb(c.abs()); c.cycles += 6 })
	register(0x14, func(c *CPU) { c.trb(c.zp()); c.cycles += 5 })
	register(0x1C, func(c *CPU) { c.trb(c.abs()); c.cycles += 6 })
}

func (c *CPU) and(o operand) { c.reg.A &= o.read(c); c.setNZ(c.reg.A) }
func (c *CPU) ora(o operand) { c.reg.A |= o.read(c); c.setNZ(c.reg.A) }
func (c *CPU) eor(o operand) { c.reg.A ^= o.read(c); c.setNZ(c.reg.A) }

// bit computes A & v without storing it. The immediate form only affects
// Z, not N/V, per the 65C02 datasheet; memoryForm selects the other two.
func (c *CPU) bit(o operand, memoryForm bool) {
	v := o.read(c)
	c.setFlag(flagZ, c.reg.A&v == 0)
	if memoryForm {
		c.setFlag(flagN, v&0x80 != 0)
		c.setFlag(flagV, v&0x40 != 0)
	}
}

func (c *CPU) tsb(o operand) {
	v := o.read(c)
	c.setFlag(flagZ, c.reg.A&v == 0)
	o.write(c, v|c.reg.A)
}

func (c *CPU) trb(o operand) {
	v := o.read(c)
	c.setFlag(flagZ, c.reg.A&v == 0)
	o.write(c, v&^c.reg.A)
}
