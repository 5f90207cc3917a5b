package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfbit/prodos8emu/internal/memory"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadSystemFileCopiesIntoMemory(t *testing.T) {
	data := []byte{0x4C, 0x00, 0x20, 0xEA, 0xEA}
	path := writeTempFile(t, data)

	mem := memory.New()
	require.NoError(t, LoadSystemFile(mem, path, 0x2000))
	for i, b := range data {
		assert.Equal(t, b, mem.ReadByte(0x2000+uint16(i)))
	}
}

func TestLoadSystemFileRejectsNonJMPOpcode(t *testing.T) {
	path := writeTempFile(t, []byte{0xEA, 0xEA})
	mem := memory.New()
	err := LoadSystemFile(mem, path, 0x2000)
	assert.Error(t, err)
}

func TestLoadSystemFileRejectsEmptyFile(t *testing.T) {
	path := writeTempFile(t, nil)
	mem := memory.New()
	err := LoadSystemFile(mem, path, 0x2000)
	assert.Error(t, err)
}

func TestLoadSystemFileRejectsLoadAddressAtOrAboveIOSpace(t *testing.T) {
	path := writeTempFile(t, []byte{0x4C, 0x00, 0xC0})
	mem := memory.New()
	err := LoadSystemFile(mem, path, 0xC000)
	assert.Error(t, err)
}

func TestLoadSystemFileRejectsImageThatWouldSpillIntoIOSpace(t *testing.T) {
	data := make([]byte, 0x20)
	data[0] = 0x4C
	path := writeTempFile(t, data)
	mem := memory.New()
	err := LoadSystemFile(mem, path, 0xBFF0)
	assert.Error(t, err)
}

func TestLoadROMFileInstallsImage(t *testing.T) {
	data := make([]byte, 0x100)
	data[0] = 0x42
	path := writeTempFile(t, data)

	mem := memory.New()
	require.NoError(t, LoadROMFile(mem, path))
	assert.Equal(t, byte(0x42), mem.ReadByte(0xD000), "LC read is off after New, so $D000 shows ROM offset 0")
}

func TestLoadROMFileRejectsOversizedImage(t *testing.T) {
	path := writeTempFile(t, make([]byte, maxROMSize+1))
	mem := memory.New()
	err := LoadROMFile(mem, path)
	assert.Error(t, err)
}

func TestLoadROMFileReportsMissingFile(t *testing.T) {
	mem := memory.New()
	err := LoadROMFile(mem, filepath.Join(t.TempDir(), "missing.rom"))
	assert.Error(t, err)
}
