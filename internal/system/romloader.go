package system

import (
	"fmt"
	"os"

	"github.com/halfbit/prodos8emu/internal/memory"
)

// maxROMSize is the fixed size of the $D000-$FFFF ROM image Memory
// accepts; LoadROMFile rejects anything larger before it ever reaches
// Memory.LoadROM; shorter images are zero-padded.
const maxROMSize = 0x3000

// LoadROMFile reads the ROM image at path and installs it into mem. A
// missing file, an unreadable file, or an oversized image is an
// ordinary configuration error, not a panic: the caller (cmd/prodos8emu)
// is expected to print it and exit, not crash.
func LoadROMFile(mem *memory.Memory, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("system: reading ROM image %q: %w", path, err)
	}
	if len(data) > maxROMSize {
		return fmt.Errorf("system: ROM image %q is %d bytes, larger than the %d-byte $D000-$FFFF window", path, len(data), maxROMSize)
	}
	mem.LoadROM(data)
	return nil
}
