// Package system provides the host-side glue around the emulator core:
// loading a ROM image and a system file into a Memory, converting text
// between ProDOS and host conventions, and unpacking a disk image onto
// the host filesystem. None of this is guest-visible; it runs before the
// CPU starts or entirely outside it.
package system

// Config is the plain flag-populated configuration cmd/prodos8emu wires
// together before constructing the emulator core. No config-file or
// env-var layer: every field except LoadAddr and Entry is set directly
// from a CLI flag; those two have no flag and keep DefaultLoadAddr and
// DefaultEntry.
type Config struct {
	ROMPath         string
	VolumesRoot     string
	SystemPath      string
	LoadAddr        uint16
	Entry           uint16
	MaxInstructions int
	MLILogPath      string
	COUTLogPath     string
}

// DefaultLoadAddr and DefaultEntry are the conventional ProDOS 8 system
// program load address and entry point; a "SYS" file is always entered
// at $2000.
const (
	DefaultLoadAddr        = 0x2000
	DefaultEntry           = 0x2000
	DefaultMaxInstructions = 50_000_000
)
