package cpu

func init() {
	registerRockwellBit()
}

// registerRockwellBit installs RMB0-7 and SMB0-7: clear or set bit n of a
// zero-page byte, where n is encoded in the opcode's high nibble (bit =
// high nibble & 7, SMB selected by the high bit of the opcode).
func registerRockwellBit() {
	for n := byte(0); n < 8; n++ {
		bit := n
		rmbOpcode := bit<<4 | 0x07
		smbOpcode := rmbOpcode | 0x80
		register(rmbOpcode, func(c *CPU) {
			o := c.zp()
			o.write(c, o.read(c)&^(1<<bit))
			c.cycles += 5
		})
		register(smbOpcode, func(c *CPU) {
			o := c.zp()
			o.write(c, o.read(c)|(1<<bit))
			c.cycles += 5
		})
	}
}
