package mli

import "github.com/halfbit/prodos8emu/internal/cpu"

func init() {
	registerMLICall(0xC6, 1, setPrefix)
	registerMLICall(0xC7, 1, getPrefix)
}

// setPrefix changes the current prefix to the pathname given in the
// parameter block, resolved against the existing prefix if it is not
// already fully qualified.
func setPrefix(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	strAddr := bus.ReadWord(pb + 1)
	raw, ok := readCountedString(bus, strAddr)
	if !ok {
		return 0x40
	}
	full, code := resolvePath(d.ctx, raw)
	if code != ErrNone {
		return code
	}
	if len(full) > maxPrefix {
		return 0x40
	}
	d.ctx.Prefix = full
	return ErrNone
}

// getPrefix writes the current prefix as a counted string into the
// buffer named by the parameter block.
func getPrefix(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	strAddr := bus.ReadWord(pb + 1)
	prefix := d.ctx.Prefix
	if prefix == "" {
		prefix = "/"
	}
	if len(prefix) > maxResolvedPath {
		return 0x40
	}
	writeCountedString(bus, strAddr, prefix)
	return ErrNone
}
