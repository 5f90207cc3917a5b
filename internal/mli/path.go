package mli

import (
	"path/filepath"
	"strings"

	"github.com/halfbit/prodos8emu/internal/cpu"
)

const (
	maxCountedString = 64
	maxResolvedPath  = 128
	maxPrefix        = 64
)

// readCountedString decodes a ProDOS counted string (length byte, then
// that many characters) at addr: strips the high bit from every
// character and upper-cases letters, per the path model's normalization
// rule. Returns false if the length exceeds maxCountedString.
func readCountedString(bus cpu.MLIBus, addr uint16) (string, bool) {
	n := bus.ReadByte(addr)
	if int(n) > maxCountedString {
		return "", false
	}
	raw := make([]byte, n)
	bus.ReadBytes(addr+1, raw)
	for i, b := range raw {
		b &= 0x7F
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		raw[i] = b
	}
	return string(raw), true
}

// writeCountedString stores s at addr as a ProDOS counted string. The
// caller is responsible for ensuring s fits the destination buffer.
func writeCountedString(bus cpu.MLIBus, addr uint16, s string) {
	bus.WriteByte(addr, byte(len(s)))
	bus.WriteBytes(addr+1, []byte(s))
}

// validComponent reports whether s is 1-15 characters, starts with A-Z,
// and every subsequent character is A-Z, 0-9, or '.'.
func validComponent(s string) bool {
	if len(s) < 1 || len(s) > 15 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		isUpper := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		if !isUpper && !isDigit && c != '.' {
			return false
		}
	}
	return true
}

// validateFullPath checks that s begins with '/', is no longer than
// maxResolvedPath, and every component satisfies validComponent.
func validateFullPath(s string) bool {
	if len(s) == 0 || s[0] != '/' || len(s) > maxResolvedPath {
		return false
	}
	parts := strings.Split(s[1:], "/")
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if !validComponent(p) {
			return false
		}
	}
	return true
}

// resolvePath normalizes raw (as read from a parameter block) against
// the context's current prefix: a path already beginning with '/' is
// used as-is; otherwise it is joined to the prefix. Returns the resolved
// full path, or $40 (invalid path syntax) if it fails validateFullPath.
func resolvePath(ctx *Context, raw string) (string, Code) {
	var full string
	if strings.HasPrefix(raw, "/") {
		full = raw
	} else {
		if ctx.Prefix == "" {
			full = "/" + raw
		} else if strings.HasSuffix(ctx.Prefix, "/") {
			full = ctx.Prefix + raw
		} else {
			full = ctx.Prefix + "/" + raw
		}
	}
	if !validateFullPath(full) {
		return "", 0x40
	}
	return full, ErrNone
}

// mapToHost maps a validated full ProDOS path to a host filesystem path
// under volumesRoot, defensively rejecting '.' and '..' segments even
// though validateFullPath's component rules already exclude them.
func mapToHost(volumesRoot, fullPath string) (string, Code) {
	parts := strings.Split(strings.TrimPrefix(fullPath, "/"), "/")
	segs := make([]string, 0, len(parts)+1)
	segs = append(segs, volumesRoot)
	for _, p := range parts {
		if p == "." || p == ".." {
			return "", 0x40
		}
		segs = append(segs, p)
	}
	return filepath.Join(segs...), ErrNone
}

// parentAndName returns the full path's parent directory ("/" for a
// top-level volume entry) and its final component name.
func parentAndName(fullPath string) (string, string) {
	idx := strings.LastIndex(fullPath, "/")
	if idx <= 0 {
		return "/", fullPath[idx+1:]
	}
	return fullPath[:idx], fullPath[idx+1:]
}
