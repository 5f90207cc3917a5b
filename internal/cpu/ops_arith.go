package cpu

func init() {
	registerArith()
}

func registerArith() {
	register(0x69, func(c *CPU) { c.adc(c.immediate().read(c)); c.cycles += 2 })
	register(0x65, func(c *CPU) { c.adc(c.zp().read(c)); c.cycles += 3 })
	register(0x75, func(c *CPU) { c.adc(c.zpX().read(c)); c.cycles += 4 })
	register(0x6D, func(c *CPU) { c.adc(c.abs().read(c)); c.cycles += 4 })
	register(0x7D, func(c *CPU) { c.adc(c.absIndexed(c.reg.X, true).read(c)); c.cycles += 4 })
	register(0x79, func(c *CPU) { c.adc(c.absIndexed(c.reg.Y, true).read(c)); c.cycles += 4 })
	register(0x61, func(c *CPU) { c.adc(c.indX().read(c)); c.cycles += 6 })
	register(0x71, func(c *CPU) { c.adc(c.indY(true).read(c)); c.cycles += 5 })
	register(0x72, func(c *CPU) { c.adc(c.zpInd().read(c)); c.cycles += 5 })

	register(0xE9, func(c *CPU) { c.sbc(c.immediate().read(c)); c.cycles += 2 })
	register(0xE5, func(c *CPU) { c.sbc(c.zp().read(c)); c.cycles += 3 })
	register(0xF5, func(c *CPU) { c.sbc(c.zpX().read(c)); c.cycles += 4 })
	register(0xED, func(c *CPU) { c.sbc(c.abs().read(c)); c.cycles += 4 })
	register(0xFD, func(c *CPU) { c.sbc(c.absIndexed(c.reg.X, true).read(c)); c.cycles += 4 })
	register(0xF9, func(c *CPU) { c.sbc(c.absIndexed(c.reg.Y, true).read(c)); c.cycles += 4 })
	register(0xE1, func(c *CPU) { c.sbc(c.indX().read(c)); c.cycles += 6 })
	register(0xF1, func(c *CPU) { c.sbc(c.indY(true).read(c)); c.cycles += 5 })
	register(0xF2, func(c *CPU) { c.sbc(c.zpInd().read(c)); c.cycles += 5 })

	register(0xC9, func(c *CPU) { c.cmp(c.reg.A, c.immediate().read(c)); c.cycles += 2 })
	register(0xC5, func(c *CPU) { c.cmp(c.reg.A, c.zp().read(c)); c.cycles += 3 })
	register(0xD5, func(c *CPU) { c.cmp(c.reg.A, c.zpX().read(c)); c.cycles += 4 })
	register(0xCD, func(c *CPU) { c.cmp(c.reg.A, c.abs().read(c)); c.cycles += 4 })
	register(0xDD, func(c *CPU) { c.cmp(c.reg.A, c.absIndexed(c.reg.X, true).read(c)); c.cycles += 4 })
	register(0xD9, func(c *CPU) { c.cmp(c.reg.A, c.absIndexed(c.reg.Y, true).read(c)); c.cycles += 4 })
	register(0xC1, func(c *CPU) { c.cmp(c.reg.A, c.indX().read(c)); c.cycles += 6 })
	register(0xD1, func(c *CPU) { c.cmp(c.reg.A, c.indY(true).read(c)); c.cycles += 5 })
	register(0xD2, func(c *CPU) { c.cmp(c.reg.A, c.zpInd().read(c)); c.cycles += 5 })

	register(0xE0, func(c *CPU) { c.cmp(c.reg.X, c.immediate().read(c)); c.cycles += 2 })
	register(0xE4, func(c *CPU) { c.cmp(c.reg.X, c.zp().read(c)); c.cycles += 3 })
	register(0xEC, func(c *CPU) { c.cmp(c.reg.X, c.abs().read(c)); c.cycles += 4 })

	register(0xC0, func(c *CPU) { c.cmp(c.reg.Y, c.immediate().read(c)); c.cycles += 2 })
	register(0xC4, func(c *CPU) { c.cmp(c.reg.Y, c.zp().read(c)); c.cycles += 3 })
	register(0xCC, func(c *CPU) { c.cmp(c.reg.Y, c.abs().read(c)); c.cycles += 4 })
}
