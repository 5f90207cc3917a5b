package cpu

func init() {
	registerTransfer()
}

func registerTransfer() {
	register(0xAA, func(c *CPU) { c.reg.X = c.reg.A; c.setNZ(c.reg.X); c.cycles += 2 })
	register(0x8A, func(c *CPU) { c.reg.A = c.reg.X; c.setNZ(c.reg.A); c.cycles += 2 })
	register(0xA8, func(c *CPU) { c.reg.Y = c.reg.A; c.setNZ(c.reg.Y); c.cycles += 2 })
	register(0x98, func(c *CPU) { c.reg.A = c.reg.Y; c.setNZ(c.reg.A); c.cycles += 2 })
	register(0xBA, func(c *CPU) { c.reg.X = c.reg.S; c.setNZ(c.reg.X); c.cycles += 2 })
	register(0x9A, func(c *CPU) { c.reg.S = c.reg.X; c.cycles += 2 }) // TXS does not affect flags

	register(0xE8, func(c *CPU) { c.reg.X++; c.setNZ(c.reg.X); c.cycles += 2 })
	register(0xCA, func(c *CPU) { c.reg.X--; c.setNZ(c.reg.X); c.cycles += 2 })
	register(0xC8, func(c *CPU) { c.reg.Y++; c.setNZ(c.reg.Y); c.cycles += 2 })
	register(0x88, func(c *CPU) { c.reg.Y--; c.setNZ(c.reg.Y); c.cycles += 2 })
}
