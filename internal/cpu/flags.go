package cpu

// Status register bits, in their classic 6502 positions.
const (
	flagC uint8 = 1 << iota // carry
	flagZ                   // zero
	flagI                   // IRQ disable
	flagD                   // decimal mode
	flagB                   // break (only meaningful on the stack image)
	flagU                   // unused, always read as 1
	flagV                   // overflow
	flagN                   // negative
)

func (c *CPU) getFlag(f uint8) bool { return c.reg.P&f != 0 }

func (c *CPU) setFlag(f uint8, v bool) {
	if v {
		c.reg.P |= f
	} else {
		c.reg.P &^= f
	}
}

// setNZ sets the N and Z flags from v, the standard side effect of every
// load, transfer and most read-modify-write instructions.
func (c *CPU) setNZ(v byte) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

// adc performs binary or BCD addition with carry, setting N Z C V per the
// 65C02 decimal-mode rules (unlike the NMOS 6502, N Z and V are also
// corrected in decimal mode).
func (c *CPU) adc(v byte) {
	a := c.reg.A
	carryIn := uint16(0)
	if c.getFlag(flagC) {
		carryIn = 1
	}

	if c.getFlag(flagD) {
		lo := (a & 0x0F) + (v & 0x0F) + byte(carryIn)
		hi := (a >> 4) + (v >> 4)
		if lo > 9 {
			lo += 6
			hi++
		}
		halfResult := (hi << 4) | (lo & 0x0F)
		overflow := (a^v)&0x80 == 0 && (a^halfResult)&0x80 != 0
		if hi > 9 {
			hi += 6
		}
		result := (hi << 4) | (lo & 0x0F)
		c.setFlag(flagC, hi > 15)
		c.setFlag(flagV, overflow)
		c.setNZ(result)
		c.reg.A = result
		return
	}

	sum := uint16(a) + uint16(v) + carryIn
	result := byte(sum)
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagV, (a^v)&0x80 == 0 && (a^result)&0x80 != 0)
	c.setNZ(result)
	c.reg.A = result
}

// sbc performs binary or BCD subtraction with borrow.
func (c *CPU) sbc(v byte) {
	a := c.reg.A
	borrowIn := uint16(0)
	if !c.getFlag(flagC) {
		borrowIn = 1
	}

	bin := int16(a) - int16(v) - int16(borrowIn)
	binResult := byte(bin)
	c.setFlag(flagC, bin >= 0)
	c.setFlag(flagV, (a^v)&0x80 != 0 && (a^binResult)&0x80 != 0)
	c.setNZ(binResult)

	if !c.getFlag(flagD) {
		c.reg.A = binResult
		return
	}

	lo := int16(a&0x0F) - int16(v&0x0F) - int16(borrowIn)
	hi := int16(a>>4) - int16(v>>4)
	if lo < 0 {
		lo -= 6
		hi--
	}
	if hi < 0 {
		hi -= 6
	}
	c.reg.A = byte(hi<<4) | byte(lo&0x0F)
}

// cmp performs a CMP/CPX/CPY-style unsigned comparison, setting N Z C.
func (c *CPU) cmp(reg, v byte) {
	result := reg - v
	c.setFlag(flagC, reg >= v)
	c.setNZ(result)
}
