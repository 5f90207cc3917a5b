package system

import (
	"fmt"
	"os"

	"github.com/halfbit/prodos8emu/internal/memory"
)

// systemFileCeiling is the top of RAM a ProDOS 8 system file may occupy;
// $C000 and above is I/O and Language-Card territory, never a valid load
// destination.
const systemFileCeiling = 0xC000

// jmpOpcode is the expected first byte of a ProDOS 8 system file: every
// well-formed one begins with a JMP to its own entry point.
const jmpOpcode = 0x4C

// LoadSystemFile reads the system file at path and copies it into mem
// starting at loadAddr, after validating that it looks like a real
// ProDOS 8 system program: it must begin with a JMP opcode, the load
// address must sit below $C000, and the whole image must fit between
// loadAddr and $BFFF without spilling into I/O space.
func LoadSystemFile(mem *memory.Memory, path string, loadAddr uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("system: reading system file %q: %w", path, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("system: system file %q is empty", path)
	}
	if data[0] != jmpOpcode {
		return fmt.Errorf("system: system file %q does not start with a JMP opcode ($4C), got $%02X", path, data[0])
	}
	if loadAddr >= systemFileCeiling {
		return fmt.Errorf("system: load address $%04X is not below $%04X", loadAddr, systemFileCeiling)
	}
	if uint32(loadAddr)+uint32(len(data)) > systemFileCeiling {
		return fmt.Errorf("system: system file %q (%d bytes at $%04X) does not fit below $%04X", path, len(data), loadAddr, systemFileCeiling)
	}
	mem.WriteBytes(loadAddr, data)
	return nil
}
