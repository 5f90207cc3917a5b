package cpu

func init() {
	registerStack()
}

func registerStack() {
	register(0x48, func(c *CPU) { c.push(c.reg.A); c.cycles += 3 })
	register(0x68, func(c *CPU) { c.reg.A = c.pop(); c.setNZ(c.reg.A); c.cycles += 4 })
	register(0x08, func(c *CPU) { c.push(c.reg.P | flagB | flagU); c.cycles += 3 })
	register(0x28, func(c *CPU) {
		c.reg.P = (c.pop() &^ flagB) | flagU
		c.cycles += 4
	})
	register(0xDA, func(c *CPU) { c.push(c.reg.X); c.cycles += 3 })
	register(0xFA, func(c *CPU) { c.reg.X = c.pop(); c.setNZ(c.reg.X); c.cycles += 4 })
	register(0x5A, func(c *CPU) { c.push(c.reg.Y); c.cycles += 3 })
	register(0x7A, func(c *CPU) { c.reg.Y = c.pop(); c.setNZ(c.reg.Y); c.cycles += 4 })
}
