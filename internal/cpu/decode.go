package cpu

// opFunc executes one decoded instruction against c, including charging
// c.cycles for the access. Dispatch is a fixed-size array of opFunc
// indexed by opcode rather than a giant switch.
type opFunc func(*CPU)

var opcodeTable [256]opFunc

func register(opcode byte, fn opFunc) {
	if opcodeTable[opcode] != nil {
		panic("cpu: duplicate opcode registration")
	}
	opcodeTable[opcode] = fn
}

// execUndocumented runs the fixed-width, fixed-cycle NOP behavior WDC
// documents for every opcode left unassigned by the families above.
func (c *CPU) execUndocumented(opcode byte) {
	switch opcode {
	case 0x02, 0x22, 0x42, 0x62, 0x82, 0xC2, 0xE2:
		c.fetchPC()
		c.cycles += 2
	case 0x44:
		c.fetchPC()
		c.cycles += 3
	case 0x54, 0xD4, 0xF4:
		c.fetchPC()
		c.cycles += 4
	case 0x5C:
		c.fetchPCWord()
		c.cycles += 8
	case 0xDC, 0xFC:
		c.fetchPCWord()
		c.cycles += 4
	default:
		c.cycles += 1
	}
}
