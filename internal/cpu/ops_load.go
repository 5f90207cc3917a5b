package cpu

func init() {
	registerLoadStore()
}

func registerLoadStore() {
	register(0xA9, func(c *CPU) { c.lda(c.immediate()); c.cycles += 2 })
	register(0xA5, func(c *CPU) { c.lda(c.zp()); c.cycles += 3 })
	register(0xB5, func(c *CPU) { c.lda(c.zpX()); c.cycles += 4 })
	register(0xAD, func(c *CPU) { c.lda(c.abs()); c.cycles += 4 })
	register(0xBD, func(c *CPU) { c.lda(c.absIndexed(c.reg.X, true)); c.cycles += 4 })
	register(0xB9, func(c *CPU) { c.lda(c.absIndexed(c.reg.Y, true)); c.cycles += 4 })
	register(0xA1, func(c *CPU) { c.lda(c.indX()); c.cycles += 6 })
	register(0xB1, func(c *CPU) { c.lda(c.indY(true)); c.cycles += 5 })
	register(0xB2, func(c *CPU) { c.lda(c.zpInd()); c.cycles += 5 })

	register(0xA2, func(c *CPU) { c.ldx(c.immediate()); c.cycles += 2 })
	register(0xA6, func(c *CPU) { c.ldx(c.zp()); c.cycles += 3 })
	register(0xB6, func(c *CPU) { c.ldx(c.zpY()); c.cycles += 4 })
	register(0xAE, func(c *CPU) { c.ldx(c.abs()); c.cycles += 4 })
	register(0xBE, func(c *CPU) { c.ldx(c.absIndexed(c.reg.Y, true)); c.cycles += 4 })

	register(0xA0, func(c *CPU) { c.ldy(c.immediate()); c.cycles += 2 })
	register(0xA4, func(c *CPU) { c.ldy(c.zp()); c.cycles += 3 })
	register(0xB4, func(c *CPU) { c.ldy(c.zpX()); c.cycles += 4 })
	register(0xAC, func(c *CPU) { c.ldy(c.abs()); c.cycles += 4 })
	register(0xBC, func(c *CPU) { c.ldy(c.absIndexed(c.reg.X, true)); c.cycles += 4 })

	register(0x85, func(c *CPU) { c.sta(c.zp()); c.cycles += 3 })
	register(0x95, func(c *CPU) { c.sta(c.zpX()); c.cycles += 4 })
	register(0x8D, func(c *CPU) { c.sta(c.abs()); c.cycles += 4 })
	register(0x9D, func(c *CPU) { c.sta(c.absIndexed(c.reg.X, false)); c.cycles += 5 })
	register(0x99, func(c *CPU) { c.sta(c.absIndexed(c.reg.Y, false)); c.cycles += 5 })
	register(0x81, func(c *CPU) { c.sta(c.indX()); c.cycles += 6 })
	register(0x91, func(c *CPU) { c.sta(c.indY(false)); c.cycles += 6 })
	register(0x92, func(c *CPU) { c.sta(c.zpInd()); c.cycles += 5 })

	register(0x86, func(c *CPU) { c.stx(c.zp()); c.cycles += 3 })
	register(0x96, func(c *CPU) { c.stx(c.zpY()); c.cycles += 4 })
	register(0x8E, func(c *CPU) { c.stx(c.abs()); c.cycles += 4 })

	register(0x84, func(c *CPU) { c.sty(c.zp()); c.cycles += 3 })
	register(0x94, func(c *CPU) { c.sty(c.zpX()); c.cycles += 4 })
	register(0x8C, func(c *CPU) { c.sty(c.abs()); c.cycles += 4 })

	register(0x64, func(c *CPU) { c.stz(c.zp()); c.cycles += 3 })
	register(0x74, func(c *CPU) { c.stz(c.zpX()); c.cycles += 4 })
	register(0x9C, func(c *CPU) { c.stz(c.abs()); c.cycles += 4 })
	register(0x9E, func(c *CPU) { c.stz(c.absIndexed(c.reg.X, false)); c.cycles += 5 })
}

func (c *CPU) lda(o operand) { c.reg.A = o.read(c); c.setNZ(c.reg.A) }
func (c *CPU) ldx(o operand) { c.reg.X = o.read(c); c.setNZ(c.reg.X) }
func (c *CPU) ldy(o operand) { c.reg.Y = o.read(c); c.setNZ(c.reg.Y) }
func (c *CPU) sta(o operand) { o.write(c, c.reg.A) }
func (c *CPU) stx(o operand) { o.write(c, c.reg.X) }
func (c *CPU) sty(o operand) { o.write(c, c.reg.Y) }
func (c *CPU) stz(o operand) { o.write(c, 0) }
