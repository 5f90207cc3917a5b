package system

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirEntry struct {
	name        string
	storageType byte
	fileType    byte
	keyPointer  uint16
	eof         uint32
	access      byte
	auxType     uint16
}

// buildDirBlock writes a single 512-byte ProDOS directory block: a
// header entry at slot 0 (storage type storageVolumeHdr or storageSubdir,
// chosen by the caller via headerStorageType) followed by one entry per
// fakeDirEntry, with no sibling block (next pointer left zero).
func buildDirBlock(headerName string, headerStorageType byte, entries []fakeDirEntry) []byte {
	b := make([]byte, diskBlockSize)
	writeEntry := func(slot int, e fakeDirEntry) {
		off := 4 + slot*dirEntryLength
		b[off] = e.storageType<<4 | byte(len(e.name))
		copy(b[off+1:], e.name)
		b[off+16] = e.fileType
		binary.LittleEndian.PutUint16(b[off+17:], e.keyPointer)
		b[off+21] = byte(e.eof)
		b[off+22] = byte(e.eof >> 8)
		b[off+23] = byte(e.eof >> 16)
		b[off+30] = e.access
		binary.LittleEndian.PutUint16(b[off+31:], e.auxType)
	}
	writeEntry(0, fakeDirEntry{name: headerName, storageType: headerStorageType})
	for i, e := range entries {
		writeEntry(i+1, e)
	}
	return b
}

func TestUnpackVolumeReconstructsFilesAndSubdirectories(t *testing.T) {
	const (
		blockHello   = 4
		blockSubdir  = 5
		blockWorld   = 6
		numBlocks    = 7
	)
	image := make([]byte, numBlocks*diskBlockSize)

	volDir := buildDirBlock("TESTVOL", storageVolumeHdr, []fakeDirEntry{
		{name: "HELLO", storageType: storageSeedling, fileType: 0x04, keyPointer: blockHello, eof: 11, access: defaultAccessForTest},
		{name: "SUBDIR", storageType: storageSubdir, fileType: 0x0F, keyPointer: blockSubdir, access: defaultAccessForTest},
	})
	copy(image[volumeDirBlock*diskBlockSize:], volDir)

	helloData := make([]byte, diskBlockSize)
	copy(helloData, []byte("HELLO WORLD"))
	copy(image[blockHello*diskBlockSize:], helloData)

	subDir := buildDirBlock("SUBDIR", storageSubdir, []fakeDirEntry{
		{name: "WORLD", storageType: storageSeedling, fileType: 0x04, keyPointer: blockWorld, eof: 11, access: defaultAccessForTest},
	})
	copy(image[blockSubdir*diskBlockSize:], subDir)

	worldData := make([]byte, diskBlockSize)
	copy(worldData, []byte("NESTED FILE"))
	copy(image[blockWorld*diskBlockSize:], worldData)

	imagePath := filepath.Join(t.TempDir(), "disk.po")
	require.NoError(t, os.WriteFile(imagePath, image, 0o644))
	destDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, UnpackVolume(imagePath, destDir))

	helloContent, err := os.ReadFile(filepath.Join(destDir, "hello"))
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", string(helloContent))

	worldContent, err := os.ReadFile(filepath.Join(destDir, "subdir", "world"))
	require.NoError(t, err)
	assert.Equal(t, "NESTED FILE", string(worldContent))
}

func TestUnpackVolumeRejectsNonBlockAlignedImage(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "disk.po")
	require.NoError(t, os.WriteFile(imagePath, make([]byte, diskBlockSize*3+1), 0o644))
	err := UnpackVolume(imagePath, filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)
}

func TestUnpackVolumeRejectsMissingVolumeHeader(t *testing.T) {
	image := make([]byte, 4*diskBlockSize) // block 2 left all zero: storage type 0, not 0x0F
	imagePath := filepath.Join(t.TempDir(), "disk.po")
	require.NoError(t, os.WriteFile(imagePath, image, 0o644))
	err := UnpackVolume(imagePath, filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)
}

// defaultAccessForTest stands in for mli's default access byte without
// importing the mli package from here; the test checks file contents
// only, not the metadata written for them.
const defaultAccessForTest = 0xC3
