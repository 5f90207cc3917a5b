package cpu

func init() {
	registerBranches()
}

func registerBranches() {
	register(0x10, func(c *CPU) { c.branch(!c.getFlag(flagN)) })
	register(0x30, func(c *CPU) { c.branch(c.getFlag(flagN)) })
	register(0x50, func(c *CPU) { c.branch(!c.getFlag(flagV)) })
	register(0x70, func(c *CPU) { c.branch(c.getFlag(flagV)) })
	register(0x90, func(c *CPU) { c.branch(!c.getFlag(flagC)) })
	register(0xB0, func(c *CPU) { c.branch(c.getFlag(flagC)) })
	register(0xD0, func(c *CPU) { c.branch(!c.getFlag(flagZ)) })
	register(0xF0, func(c *CPU) { c.branch(c.getFlag(flagZ)) })
	register(0x80, func(c *CPU) { c.branch(true) }) // BRA

	for n := byte(0); n < 8; n++ {
		bit := n
		register(bit<<4|0x0F, func(c *CPU) { c.bitBranch(bit, false) })
		register(bit<<4|0x8F, func(c *CPU) { c.bitBranch(bit, true) })
	}
}

// branch implements the relative branch family: 2 cycles if not taken, 3
// if taken on the same page, 4 if taken across a page boundary.
func (c *CPU) branch(take bool) {
	offset := int8(c.fetchPC())
	c.cycles += 2
	if !take {
		return
	}
	c.cycles++
	base := c.reg.PC
	target := uint16(int32(base) + int32(offset))
	if pageCross(base, target) {
		c.cycles++
	}
	c.reg.PC = target
}

// bitBranch implements BBRn/BBSn: test bit n of a zero-page operand, then
// branch relative if it matches set (BBS) or clear (BBR).
func (c *CPU) bitBranch(bit byte, set bool) {
	zpAddr := uint16(c.fetchPC())
	v := c.readByte(zpAddr)
	offset := int8(c.fetchPC())
	c.cycles += 5

	bitSet := v&(1<<bit) != 0
	if bitSet != set {
		return
	}
	base := c.reg.PC
	target := uint16(int32(base) + int32(offset))
	c.cycles++
	if pageCross(base, target) {
		c.cycles++
	}
	c.reg.PC = target
}
