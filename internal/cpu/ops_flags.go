package cpu

func init() {
	registerFlagOps()
}

func registerFlagOps() {
	register(0x18, func(c *CPU) { c.setFlag(flagC, false); c.cycles += 2 })
	register(0x38, func(c *CPU) { c.setFlag(flagC, true); c.cycles += 2 })
	register(0x58, func(c *CPU) { c.setFlag(flagI, false); c.cycles += 2 })
	register(0x78, func(c *CPU) { c.setFlag(flagI, true); c.cycles += 2 })
	register(0xB8, func(c *CPU) { c.setFlag(flagV, false); c.cycles += 2 })
	register(0xD8, func(c *CPU) { c.setFlag(flagD, false); c.cycles += 2 })
	register(0xF8, func(c *CPU) { c.setFlag(flagD, true); c.cycles += 2 })
}
