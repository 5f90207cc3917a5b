// Package memory implements the emulated 64 KiB banked address space: 16
// fixed 4 KiB banks with Language-Card routing for $D000-$FFFF.
package memory

// bankSize is the fixed size of every bank in the address space.
const bankSize = 4096

// bankCount is the number of banks composing the 64 KiB address space.
const bankCount = 16

// Bank identifiers for the fixed regions. Banks 0-11 are plain RAM;
// bank 12 is RAM shared with the soft-switch hook; banks 13-15 are
// routed through the Language Card.
const (
	bankLCLow  = 13 // $D000-$DFFF
	bankLCHigh = 14 // $E000-$EFFF
	bankTop    = 15 // $F000-$FFFF
)

// romSize is the fixed size of the $D000-$FFFF ROM image.
const romSize = 0x3000 // 12 KiB

// Memory is the emulated 64 KiB address space with Language-Card
// bank-switching for $D000-$FFFF and soft-switch interception for
// $C080-$C08F.
//
// Bus access always goes through Read/Write; the CPU core is expected to
// call Memory.SoftSwitch for every access in $C080-$C08F before the bus
// transaction.
type Memory struct {
	banks [bankCount][bankSize]byte // banks 0-12: main RAM; 13-15: unused backing for LC banks

	rom [romSize]byte // fixed $D000-$FFFF ROM image, zero until loaded

	lcBank1 [bankSize]byte // $D000-$DFFF, LC bank select = 1
	lcBank2 [bankSize]byte // $D000-$DFFF, LC bank select = 2
	lcHigh  [0x2000]byte   // $E000-$FFFF, shared RAM bank

	lc languageCard
}

// New returns a zero-initialized Memory instance.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset zeroes the Language-Card soft-switch state. Main RAM and LC RAM
// are left untouched by Reset (only construction zero-initializes them);
// the ROM image, once loaded, is never reset.
func (m *Memory) Reset() {
	m.lc.reset()
}

// LoadROM copies a 12 KiB ROM image into the fixed $D000-$FFFF backing
// store. Shorter images are zero-padded at the end; longer images panic,
// since that indicates a programmer error in the caller (the ROM loader
// collaborator is responsible for validating image size before calling
// this).
func (m *Memory) LoadROM(image []byte) {
	if len(image) > romSize {
		panic("memory: ROM image larger than 12 KiB")
	}
	copy(m.rom[:], image)
}

// bankIndex and offset split a 16-bit address into its bank and
// within-bank offset.
func bankIndex(addr uint16) int     { return int(addr >> 12) }
func bankOffset(addr uint16) uint16 { return addr & 0x0FFF }

// ReadByte returns the byte at addr, routed by bank. It does not itself
// interpret $C080-$C08F as soft switches — callers that want that
// interception must call SoftSwitch first, as the CPU core does.
func (m *Memory) ReadByte(addr uint16) byte {
	bi := bankIndex(addr)
	off := bankOffset(addr)

	switch bi {
	case bankLCLow:
		if m.lc.readEnabled {
			if m.lc.bank1Selected {
				return m.lcBank1[off]
			}
			return m.lcBank2[off]
		}
		return m.rom[off]
	case bankLCHigh, bankTop:
		if m.lc.readEnabled {
			return m.lcHigh[addr-0xE000]
		}
		return m.rom[addr-0xD000]
	default:
		return m.banks[bi][off]
	}
}

// WriteByte stores v at addr, routed by bank.
func (m *Memory) WriteByte(addr uint16, v byte) {
	bi := bankIndex(addr)
	off := bankOffset(addr)

	switch bi {
	case bankLCLow:
		if !m.lc.writeEnabled {
			return
		}
		if m.lc.bank1Selected {
			m.lcBank1[off] = v
		} else {
			m.lcBank2[off] = v
		}
	case bankLCHigh, bankTop:
		if !m.lc.writeEnabled {
			return
		}
		m.lcHigh[addr-0xE000] = v
	default:
		m.banks[bi][off] = v
	}
}

// ReadWord returns the 16-bit little-endian value at addr, wrapping
// modulo 65536 at the top of memory.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.ReadByte(addr)
	hi := m.ReadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord stores a 16-bit little-endian value at addr, wrapping modulo
// 65536 at the top of memory.
func (m *Memory) WriteWord(addr uint16, v uint16) {
	m.WriteByte(addr, byte(v))
	m.WriteByte(addr+1, byte(v>>8))
}

// ReadWord24 returns the 24-bit little-endian value at addr (used by the
// MLI for MARK/EOF fields), wrapping modulo 65536.
func (m *Memory) ReadWord24(addr uint16) uint32 {
	b0 := m.ReadByte(addr)
	b1 := m.ReadByte(addr + 1)
	b2 := m.ReadByte(addr + 2)
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
}

// WriteWord24 stores a 24-bit little-endian value at addr, wrapping
// modulo 65536.
func (m *Memory) WriteWord24(addr uint16, v uint32) {
	m.WriteByte(addr, byte(v))
	m.WriteByte(addr+1, byte(v>>8))
	m.WriteByte(addr+2, byte(v>>16))
}

// ReadBytes copies len(b) bytes starting at addr into b.
func (m *Memory) ReadBytes(addr uint16, b []byte) {
	for i := range b {
		b[i] = m.ReadByte(addr + uint16(i))
	}
}

// WriteBytes copies b into memory starting at addr.
func (m *Memory) WriteBytes(addr uint16, b []byte) {
	for i, v := range b {
		m.WriteByte(addr+uint16(i), v)
	}
}

// SoftSwitch applies the Language-Card soft-switch semantics for an
// access to addr if addr falls in $C080-$C08F. isWrite distinguishes a
// write access (which always clears the write-enable latch) from a read
// access (which may arm or complete it). It is a no-op outside
// $C080-$C08F.
func (m *Memory) SoftSwitch(addr uint16, isWrite bool) {
	if addr < 0xC080 || addr > 0xC08F {
		return
	}
	m.lc.apply(addr, isWrite)
}

// LCReadEnabled reports whether $D000-$FFFF reads currently see LC RAM
// (true) or ROM (false). Exposed for debug/test use.
func (m *Memory) LCReadEnabled() bool { return m.lc.readEnabled }

// LCWriteEnabled reports whether $D000-$FFFF writes currently reach LC
// RAM. Exposed for debug/test use.
func (m *Memory) LCWriteEnabled() bool { return m.lc.writeEnabled }

// LCBank1Selected reports whether LC bank 1 (true) or bank 2 (false) is
// currently selected for $D000-$DFFF. Exposed for debug/test use.
func (m *Memory) LCBank1Selected() bool { return m.lc.bank1Selected }
