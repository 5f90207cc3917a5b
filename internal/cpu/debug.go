package cpu

import "fmt"

// DebugSink receives one append-only text line per event. Both the MLI
// trap log and the COUT log are optional and set externally; a nil sink
// means the corresponding events are simply not recorded.
type DebugSink interface {
	WriteLine(line string)
}

// mliCallNames maps MLI call numbers to their symbolic names, used only
// for log formatting; the dispatcher owns the actual call semantics.
var mliCallNames = map[byte]string{
	0x80: "READ_BLOCK",
	0x81: "WRITE_BLOCK",
	0x82: "GET_TIME",
	0x40: "ALLOC_INTERRUPT",
	0x41: "DEALLOC_INTERRUPT",
	0xC0: "CREATE",
	0xC1: "DESTROY",
	0xC2: "RENAME",
	0xC3: "SET_FILE_INFO",
	0xC4: "GET_FILE_INFO",
	0xC5: "ON_LINE",
	0xC6: "SET_PREFIX",
	0xC7: "GET_PREFIX",
	0xC8: "OPEN",
	0xC9: "NEWLINE",
	0xCA: "READ",
	0xCB: "WRITE",
	0xCC: "CLOSE",
	0xCD: "FLUSH",
	0xCE: "SET_MARK",
	0xCF: "GET_MARK",
	0xD0: "SET_EOF",
	0xD1: "GET_EOF",
	0xD2: "SET_BUF",
	0xD3: "GET_BUF",
	0x65: "QUIT",
}

// pathnameFirstParam is the set of calls whose first parameter is a
// pathname pointer, used to decide whether the MLI log line should
// include the decoded pathname literal.
var pathnameFirstParam = map[byte]bool{
	0xC0: true, // CREATE
	0xC1: true, // DESTROY
	0xC2: true, // RENAME (old path)
	0xC3: true, // SET_FILE_INFO
	0xC4: true, // GET_FILE_INFO
	0xC6: true, // SET_PREFIX
	0xC8: true, // OPEN
}

// errorCodeNames maps common ProDOS error result codes to names for log
// formatting. 0 ("no error") is included for symmetry.
var errorCodeNames = map[byte]string{
	0x00: "NO_ERROR",
	0x01: "BAD_SYSTEM_CALL",
	0x04: "BAD_PARAMETER_COUNT",
	0x25: "INTERRUPT_TABLE_FULL",
	0x27: "IO_ERROR",
	0x28: "NO_DEVICE_CONNECTED",
	0x2B: "DISK_SWITCHED",
	0x40: "INVALID_PATH_SYNTAX",
	0x42: "FILE_TABLE_FULL",
	0x43: "BAD_REF_NUM",
	0x44: "VOLUME_DIR_NOT_FOUND",
	0x45: "FILE_NOT_FOUND",
	0x46: "FILE_NOT_FOUND",
	0x47: "DUPLICATE_FILENAME",
	0x48: "VOLUME_FULL",
	0x49: "VERSION_ERROR",
	0x4A: "BAD_PATH_SYNTAX",
	0x4B: "UNSUPPORTED_STORAGE_TYPE",
	0x4C: "END_OF_FILE",
	0x4D: "POSITION_OUT_OF_RANGE",
	0x4E: "ACCESS_ERROR",
	0x50: "FILE_IS_OPEN",
	0x51: "DIR_STRUCT_DAMAGED",
	0x52: "NOT_PRODOS_VOLUME",
	0x53: "INVALID_SYNTAX",
	0x55: "VOLUME_NOT_FOUND",
	0x56: "FILE_ALREADY_OPEN",
	0x57: "DIR_COUNT_EXCEEDED",
	0x5A: "DAMAGED_BITMAP",
	0x5C: "PATH_TOO_LONG",
	0x5D: "NOT_LOGGED_IN",
	0x5E: "VOLUME_ALREADY_ON_LINE",
	0x5F: "INVALID_FSSC",
	0x60: "DEVICE_OFF_LINE",
	0xAD: "POSITION_OUT_OF_RANGE",
}

func callName(n byte) string {
	if name, ok := mliCallNames[n]; ok {
		return name
	}
	return "UNKNOWN"
}

func errorName(n byte) string {
	if name, ok := errorCodeNames[n]; ok {
		return name
	}
	return "UNKNOWN"
}

// decodePathname best-effort decodes a ProDOS counted-string pathname
// starting at addr, for log display only. It does not validate the
// result the way the MLI path resolver does.
func (c *CPU) decodePathname(addr uint16) string {
	n := c.mliBus.ReadByte(addr)
	if n == 0 || n > 64 {
		return ""
	}
	buf := make([]byte, n)
	c.mliBus.ReadBytes(addr+1, buf)
	for i, b := range buf {
		buf[i] = b & 0x7F
	}
	return string(buf)
}

// cEscapes gives the named C-style escape for control characters that
// have one; everything else falls back to \xHH.
var cEscapes = map[byte]string{
	0x07: `\a`,
	0x08: `\b`,
	0x09: `\t`,
	0x0B: `\v`,
	0x0C: `\f`,
	0x0D: `\n`, // $0D is the Apple II's newline
	0x1B: `\e`,
}

// emitCOUT writes one line to the COUT debug sink for a single character
// event: the low seven bits of A, rendered as-is if printable or as a
// C-style escape otherwise.
func (c *CPU) emitCOUT() {
	if c.coutLog == nil {
		return
	}
	ch := c.reg.A & 0x7F

	if ch >= 0x20 && ch < 0x7F {
		c.coutLog.WriteLine(string(ch))
		return
	}
	if esc, ok := cEscapes[ch]; ok {
		c.coutLog.WriteLine(esc)
		return
	}
	c.coutLog.WriteLine(fmt.Sprintf(`\x%02X`, ch))
}

// logMLITrap writes one line to the MLI debug sink describing a
// completed trap: call number, symbolic name, parameter-block address,
// result code and name, and (for calls that take one) the pathname.
func (c *CPU) logMLITrap(callNumber byte, paramBlockAddr uint16, result byte) {
	if c.mliLog == nil {
		return
	}
	line := fmt.Sprintf("MLI $%02X %s pb=$%04X -> $%02X %s",
		callNumber, callName(callNumber), paramBlockAddr, result, errorName(result))
	if pathnameFirstParam[callNumber] {
		pathAddr := c.mliBus.ReadWord(paramBlockAddr + 1)
		if path := c.decodePathname(pathAddr); path != "" {
			line += " path=" + path
		}
	}
	c.mliLog.WriteLine(line)
}
