package mli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatBus is a 64 KiB byte array implementing cpu.MLIBus, used to drive
// the dispatcher the same way a CPU's JSR $BF00 trap would.
type flatBus struct {
	mem [65536]byte
}

func (b *flatBus) ReadByte(addr uint16) byte         { return b.mem[addr] }
func (b *flatBus) WriteByte(addr uint16, v byte)     { b.mem[addr] = v }
func (b *flatBus) SoftSwitch(uint16, bool)           {}
func (b *flatBus) ReadWord(addr uint16) uint16       { return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8 }
func (b *flatBus) WriteWord(addr uint16, v uint16) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
}
func (b *flatBus) ReadWord24(addr uint16) uint32 {
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 | uint32(b.mem[addr+2])<<16
}
func (b *flatBus) WriteWord24(addr uint16, v uint32) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
	b.mem[addr+2] = byte(v >> 16)
}
func (b *flatBus) ReadBytes(addr uint16, dst []byte) {
	for i := range dst {
		dst[i] = b.mem[int(addr)+i]
	}
}
func (b *flatBus) WriteBytes(addr uint16, src []byte) {
	for i, v := range src {
		b.mem[int(addr)+i] = v
	}
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *flatBus, string) {
	t.Helper()
	root := t.TempDir()
	d := NewDispatcher(root)
	return d, &flatBus{}, root
}

// dispatch is a small helper that lays out a counted-parameter-count
// byte at pb before calling the registered call's handler, mirroring
// what Dispatcher.Dispatch does for a real JSR $BF00 trap.
func dispatch(d *Dispatcher, bus *flatBus, callNumber byte, pb uint16, paramCount byte) Code {
	bus.mem[pb] = paramCount
	return Code(d.Dispatch(bus, callNumber, pb))
}

func TestSetGetPrefixRoundTrip(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "TESTVOL"), 0o755))

	const pb = 0x0300
	const strAddr = 0x0400
	bus.WriteWord(pb+1, strAddr)
	writeCountedString(bus, strAddr, "TESTVOL")

	code := dispatch(d, bus, 0xC6, pb, 1)
	require.Equal(t, ErrNone, code)
	assert.Equal(t, "/TESTVOL", d.ctx.Prefix)

	writeCountedString(bus, strAddr, "SUBDIR")
	code = dispatch(d, bus, 0xC6, pb, 1)
	require.Equal(t, ErrNone, code)
	assert.Equal(t, "/TESTVOL/SUBDIR", d.ctx.Prefix)

	const outAddr = 0x0500
	bus.WriteWord(pb+1, outAddr)
	code = dispatch(d, bus, 0xC7, pb, 1)
	require.Equal(t, ErrNone, code)
	got, ok := readCountedString(bus, outAddr)
	require.True(t, ok)
	assert.Equal(t, "/TESTVOL/SUBDIR", got)
}

func TestAccessCodecRoundTrip(t *testing.T) {
	for _, b := range []byte{0xC3, 0xE3, 0x00, 0xFF &^ 0x18, 0x80} {
		s := formatAccess(b)
		got, ok := parseAccess(s)
		require.True(t, ok, "access byte %#02x formatted as %q should reparse", b, s)
		assert.Equal(t, b, got)
	}
}

func TestAccessParseRejectsMalformedString(t *testing.T) {
	_, ok := parseAccess("garbage!")
	assert.False(t, ok)
	_, ok = parseAccess("dnb--iwr") // reserved positions must be '.'
	assert.False(t, ok)
}

func TestCreateAndGetFileInfoRoundTrip(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "TESTVOL"), 0o755))

	const pb = 0x0300
	const strAddr = 0x0400
	bus.WriteWord(pb+1, strAddr)
	writeCountedString(bus, strAddr, "/TESTVOL/HELLO.TXT")
	bus.WriteByte(pb+3, defaultAccess)
	bus.WriteByte(pb+4, 0x04) // TXT file type
	bus.WriteWord(pb+5, 0x0000)
	bus.WriteByte(pb+7, 0x01) // seedling
	bus.WriteWord(pb+8, 0)
	bus.WriteWord(pb+10, 0)

	code := dispatch(d, bus, 0xC0, pb, 7)
	require.Equal(t, ErrNone, code)

	host := filepath.Join(root, "TESTVOL", "HELLO.TXT")
	_, err := os.Stat(host)
	require.NoError(t, err)

	code = dispatch(d, bus, 0xC0, pb, 7)
	assert.Equal(t, Code(0x47), code, "creating the same path twice should fail with DUPLICATE_FILENAME")

	getPB := uint16(0x0340)
	bus.WriteWord(getPB+1, strAddr)
	code = dispatch(d, bus, 0xC4, getPB, 10)
	require.Equal(t, ErrNone, code)
	assert.Equal(t, byte(0x04), bus.ReadByte(getPB+4))
	assert.Equal(t, byte(0x01), bus.ReadByte(getPB+7))
}

func TestOpenNewlineReadSplitsOnCR(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	volDir := filepath.Join(root, "TESTVOL")
	require.NoError(t, os.MkdirAll(volDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(volDir, "TEXT"), []byte("LINE1\rLINE2\r"), 0o644))

	const pb = 0x0300
	const strAddr = 0x0400
	const ioBuf = 0x0600
	bus.WriteWord(pb+1, strAddr)
	writeCountedString(bus, strAddr, "/TESTVOL/TEXT")
	bus.WriteWord(pb+3, ioBuf)
	code := dispatch(d, bus, 0xC8, pb, 3)
	require.Equal(t, ErrNone, code)
	refNum := bus.ReadByte(pb + 5)
	require.NotZero(t, refNum)

	nlPB := uint16(0x0340)
	bus.WriteByte(nlPB+1, refNum)
	bus.WriteByte(nlPB+2, 0xFF)
	bus.WriteByte(nlPB+3, 0x0D)
	code = dispatch(d, bus, 0xC9, nlPB, 3)
	require.Equal(t, ErrNone, code)

	const dataBuf = 0x0700
	rdPB := uint16(0x0380)
	bus.WriteByte(rdPB+1, refNum)
	bus.WriteWord(rdPB+2, dataBuf)
	bus.WriteWord(rdPB+4, 80)
	code = dispatch(d, bus, 0xCA, rdPB, 4)
	require.Equal(t, ErrNone, code)
	n := bus.ReadWord(rdPB + 6)
	line1 := make([]byte, n)
	bus.ReadBytes(dataBuf, line1)
	assert.Equal(t, "LINE1\r", string(line1))

	code = dispatch(d, bus, 0xCA, rdPB, 4)
	require.Equal(t, ErrNone, code)
	n = bus.ReadWord(rdPB + 6)
	line2 := make([]byte, n)
	bus.ReadBytes(dataBuf, line2)
	assert.Equal(t, "LINE2\r", string(line2))
}

func TestCloseZeroClosesAllOpenFiles(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	volDir := filepath.Join(root, "TESTVOL")
	require.NoError(t, os.MkdirAll(volDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(volDir, "A"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(volDir, "B"), []byte("b"), 0o644))

	openOne := func(name string) byte {
		const pb = 0x0300
		const strAddr = 0x0400
		bus.WriteWord(pb+1, strAddr)
		writeCountedString(bus, strAddr, "/TESTVOL/"+name)
		bus.WriteWord(pb+3, 0x0600)
		code := dispatch(d, bus, 0xC8, pb, 3)
		require.Equal(t, ErrNone, code)
		return bus.ReadByte(pb + 5)
	}
	refA := openOne("A")
	refB := openOne("B")
	require.NotEqual(t, refA, refB)

	closePB := uint16(0x0340)
	bus.WriteByte(closePB+1, 0)
	code := dispatch(d, bus, 0xCC, closePB, 1)
	require.Equal(t, ErrNone, code)

	assert.Nil(t, d.ctx.lookup(int(refA)))
	assert.Nil(t, d.ctx.lookup(int(refB)))
}

func TestOnLineListsVolumesWithTerminator(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	for _, name := range []string{"ALPHA", "BETA", "GAMMA"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}

	const pb = 0x0300
	const buf = 0x0500
	bus.WriteByte(pb+1, 0) // unit_number 0: list every online volume
	bus.WriteWord(pb+2, buf)
	code := dispatch(d, bus, 0xC5, pb, 2)
	require.Equal(t, ErrNone, code)

	off := uint16(buf)
	var names []string
	for {
		rec0 := bus.ReadByte(off)
		n := rec0 & 0x0F
		if n == 0 {
			break
		}
		name := make([]byte, n)
		bus.ReadBytes(off+1, name)
		names = append(names, string(name))
		off += 16
	}
	assert.ElementsMatch(t, []string{"ALPHA", "BETA", "GAMMA"}, names)
}

func TestOnLineSpecificUnitTranslatesSlotDriveAndReportsOutOfRange(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ALPHA"), 0o755))

	const pb = 0x0300
	const buf = 0x0500

	// index 1 == (slot-1)*2+drive for slot=1, drive=1: unit_number with
	// slot bits (4-6) = 1, drive bit (7) = 0.
	bus.WriteByte(pb+1, 0x10)
	bus.WriteWord(pb+2, buf)
	code := dispatch(d, bus, 0xC5, pb, 2)
	require.Equal(t, ErrNone, code)
	rec0 := bus.ReadByte(buf)
	nameLen := rec0 & 0x0F
	name := make([]byte, nameLen)
	bus.ReadBytes(buf+1, name)
	assert.Equal(t, "ALPHA", string(name))

	// slot=2, drive=1 -> index 3, with only one volume online.
	bus.WriteByte(pb+1, 0x20)
	code = dispatch(d, bus, 0xC5, pb, 2)
	assert.Equal(t, Code(0x28), code)
}

func TestValidateFullPathRejectsBadComponents(t *testing.T) {
	assert.True(t, validateFullPath("/TESTVOL/SUBDIR/FILE.TXT"))
	assert.False(t, validateFullPath("testvol/file")) // missing leading slash, lowercase
	assert.False(t, validateFullPath("/1BAD/FILE"))   // component must start with a letter
}

func TestQuitClosesFilesAndHaltsDispatcher(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	volDir := filepath.Join(root, "TESTVOL")
	require.NoError(t, os.MkdirAll(volDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(volDir, "A"), []byte("a"), 0o644))

	const pb = 0x0300
	const strAddr = 0x0400
	bus.WriteWord(pb+1, strAddr)
	writeCountedString(bus, strAddr, "/TESTVOL/A")
	bus.WriteWord(pb+3, 0x0600)
	code := dispatch(d, bus, 0xC8, pb, 3)
	require.Equal(t, ErrNone, code)
	refNum := bus.ReadByte(pb + 5)

	assert.False(t, d.ShouldHalt())
	code = dispatch(d, bus, 0x65, pb, 4)
	require.Equal(t, ErrNone, code)

	assert.True(t, d.ShouldHalt())
	assert.Nil(t, d.ctx.lookup(int(refNum)))
}

func TestDispatchUnknownCallNumberReportsBadSystemCall(t *testing.T) {
	d, bus, _ := newTestDispatcher(t)
	got := d.Dispatch(bus, 0xEE, 0x0300)
	assert.Equal(t, byte(ErrBadSystemCall), got)
}

func TestDispatchParameterCountMismatchReportsBadParameterCount(t *testing.T) {
	d, bus, root := newTestDispatcher(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "TESTVOL"), 0o755))

	const pb = 0x0300
	bus.mem[pb] = 3 // SET_PREFIX ($C6) wants exactly 1 parameter
	got := d.Dispatch(bus, 0xC6, pb)
	assert.Equal(t, byte(ErrBadParameterCount), got)
}
