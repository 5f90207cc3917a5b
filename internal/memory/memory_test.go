package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainRAMRoundTrip(t *testing.T) {
	m := New()
	for _, addr := range []uint16{0x0000, 0x0200, 0x1FFF, 0xBFFF, 0xC000, 0xC07F, 0xC090, 0xCFFF} {
		m.WriteByte(addr, 0x5A)
		assert.Equal(t, byte(0x5A), m.ReadByte(addr), "addr %#04x", addr)
	}
}

func TestWordWrapAtTopOfMemory(t *testing.T) {
	m := New()
	m.WriteWord(0xFFFF, 0xABCD)
	assert.Equal(t, byte(0xCD), m.ReadByte(0xFFFF))
	assert.Equal(t, byte(0xAB), m.ReadByte(0x0000))
	assert.Equal(t, uint16(0xABCD), m.ReadWord(0xFFFF))
}

func TestWordCrossesBankBoundary(t *testing.T) {
	m := New()
	m.WriteWord(0x0FFF, 0x1234)
	assert.Equal(t, byte(0x34), m.ReadByte(0x0FFF))
	assert.Equal(t, byte(0x12), m.ReadByte(0x1000))
}

func TestReadROMWhenLCReadDisabled(t *testing.T) {
	m := New()
	rom := make([]byte, romSize)
	rom[0x2FFC] = 0x62
	rom[0x2FFD] = 0xFA
	m.LoadROM(rom)

	require.False(t, m.LCReadEnabled())
	assert.Equal(t, uint16(0xFA62), m.ReadWord(0xFFFC))
}

func TestLCWriteRequiresTwoQualifyingReads(t *testing.T) {
	m := New()
	rom := make([]byte, romSize)
	rom[0x0000] = 0x11
	m.LoadROM(rom)

	// cmd=11 (k=0x0B): LC read enabled, write-enable attempt.
	m.SoftSwitch(0xC08B, false)
	assert.True(t, m.LCReadEnabled())
	assert.False(t, m.LCWriteEnabled(), "write should not yet be enabled after one read")

	m.SoftSwitch(0xC08B, false)
	assert.True(t, m.LCWriteEnabled(), "write should be enabled after two qualifying reads")

	m.WriteByte(0xD000, 0xAA)
	assert.Equal(t, byte(0xAA), m.ReadByte(0xD000))

	m.SoftSwitch(0xC08A, false) // cmd=10: ROM read, write protected -- clears state
	assert.False(t, m.LCReadEnabled())
	assert.Equal(t, byte(0x11), m.ReadByte(0xD000))
}

func TestLCWriteLatchClearedByInterveningWrite(t *testing.T) {
	m := New()
	m.SoftSwitch(0xC08B, false) // arm latch
	m.SoftSwitch(0xC08B, true)  // write access clears latch and disables write
	m.SoftSwitch(0xC08B, false) // only one qualifying read since the write
	assert.False(t, m.LCWriteEnabled())
}

func TestLCBankSelect(t *testing.T) {
	m := New()
	m.SoftSwitch(0xC08B, false) // k=0x0B: bit3 set -> bank 1
	m.SoftSwitch(0xC08B, false)
	assert.True(t, m.LCBank1Selected())
	m.WriteByte(0xD000, 0x01)

	m.SoftSwitch(0xC083, false) // k=0x03: bit3 clear -> bank 2, cmd=11
	m.SoftSwitch(0xC083, false)
	assert.False(t, m.LCBank1Selected())
	m.WriteByte(0xD000, 0x02)

	m.SoftSwitch(0xC08B, false)
	m.SoftSwitch(0xC08B, false)
	assert.Equal(t, byte(0x01), m.ReadByte(0xD000), "bank 1 contents must be independent of bank 2")
}

func TestResetClearsLCState(t *testing.T) {
	m := New()
	m.SoftSwitch(0xC08B, false)
	m.SoftSwitch(0xC08B, false)
	require.True(t, m.LCWriteEnabled())

	m.Reset()
	assert.False(t, m.LCReadEnabled())
	assert.False(t, m.LCWriteEnabled())
	assert.True(t, m.LCBank1Selected())
}

func TestLoadROMPanicsOnOversizedImage(t *testing.T) {
	m := New()
	assert.Panics(t, func() {
		m.LoadROM(make([]byte, romSize+1))
	})
}
