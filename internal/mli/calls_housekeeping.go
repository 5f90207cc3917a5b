package mli

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/halfbit/prodos8emu/internal/cpu"
)

func init() {
	registerMLICall(0xC0, 7, create)
	registerMLICall(0xC1, 1, destroy)
	registerMLICall(0xC2, 2, rename)
	registerMLICall(0xC3, 7, setFileInfo)
	registerMLICall(0xC4, 10, getFileInfo)
	registerMLICall(0xC5, 2, onLine)
}

// isVolumeRoot reports whether host is a direct child of volumesRoot,
// i.e. a ProDOS volume's own top-level directory rather than a
// subdirectory within one.
func isVolumeRoot(volumesRoot, host string) bool {
	return filepath.Dir(filepath.Clean(host)) == filepath.Clean(volumesRoot)
}

func resolveToHost(d *Dispatcher, bus cpu.MLIBus, pathPtr uint16) (full, host string, code Code) {
	raw, ok := readCountedString(bus, pathPtr)
	if !ok {
		return "", "", 0x40
	}
	full, code = resolvePath(d.ctx, raw)
	if code != ErrNone {
		return "", "", code
	}
	host, code = mapToHost(d.ctx.VolumesRoot, full)
	return full, host, code
}

// create makes a new empty file or directory at the given pathname with
// the attributes named in the parameter block, failing with the
// call's own "file already exists" code if the target is already there.
func create(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	pathPtr := bus.ReadWord(pb + 1)
	access := bus.ReadByte(pb + 3)
	fileType := bus.ReadByte(pb + 4)
	auxType := bus.ReadWord(pb + 5)
	storageType := bus.ReadByte(pb + 7)
	createDate := bus.ReadWord(pb + 8)
	createTime := bus.ReadWord(pb + 10)

	if storageType != 0x01 && storageType != 0x0D {
		return Code(0x4B) // UNSUPPORTED_STORAGE_TYPE
	}

	_, host, code := resolveToHost(d, bus, pathPtr)
	if code != ErrNone {
		return code
	}
	if _, err := os.Lstat(host); err == nil {
		return Code(0x47) // DUPLICATE_FILENAME
	}
	if _, err := os.Lstat(filepath.Dir(host)); err != nil {
		return Code(0x44) // VOLUME_DIR_NOT_FOUND: parent directory missing
	}

	isDir := storageType == 0x0D
	var err error
	if isDir {
		err = os.Mkdir(host, 0o755)
	} else {
		var f *os.File
		f, err = os.Create(host)
		if err == nil {
			f.Close()
		}
	}
	if err != nil {
		return errnoToCode(err)
	}

	created := resolveDateTime(createDate, createTime, d.now())
	m := metadata{
		Access:      access,
		FileType:    fileType,
		AuxType:     auxType,
		StorageType: storageType,
		Created:     created,
	}
	return writeMetadata(host, m)
}

// destroy removes the file or (empty) directory at the given pathname.
func destroy(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	pathPtr := bus.ReadWord(pb + 1)
	_, host, code := resolveToHost(d, bus, pathPtr)
	if code != ErrNone {
		return code
	}
	if _, err := os.Lstat(host); err != nil {
		return Code(0x46) // FILE_NOT_FOUND
	}
	if err := os.Remove(host); err != nil {
		return errnoToCode(err)
	}
	return ErrNone
}

// rename moves the file or directory at the old pathname to the new
// name, which must resolve within the same directory.
func rename(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	oldPtr := bus.ReadWord(pb + 1)
	newPtr := bus.ReadWord(pb + 3)
	oldFull, oldHost, code := resolveToHost(d, bus, oldPtr)
	if code != ErrNone {
		return code
	}
	newFull, newHost, code := resolveToHost(d, bus, newPtr)
	if code != ErrNone {
		return code
	}
	oldParent, _ := parentAndName(oldFull)
	newParent, _ := parentAndName(newFull)
	if oldParent != newParent {
		return 0x40 // cross-directory moves are not allowed
	}
	if _, err := os.Lstat(oldHost); err != nil {
		return Code(0x45) // FILE_NOT_FOUND
	}
	if _, err := os.Lstat(newHost); err == nil {
		return Code(0x47) // DUPLICATE_FILENAME
	}
	if err := os.Rename(oldHost, newHost); err != nil {
		return errnoToCode(err)
	}
	return ErrNone
}

// setFileInfo updates the mutable attributes of an existing file or
// directory: access, file type, aux type, and modification date/time.
func setFileInfo(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	pathPtr := bus.ReadWord(pb + 1)
	access := bus.ReadByte(pb + 3)
	fileType := bus.ReadByte(pb + 4)
	auxType := bus.ReadWord(pb + 5)
	modDate := bus.ReadWord(pb + 9)
	modTime := bus.ReadWord(pb + 11)

	_, host, code := resolveToHost(d, bus, pathPtr)
	if code != ErrNone {
		return code
	}
	info, err := os.Lstat(host)
	if err != nil {
		return Code(0x45) // FILE_NOT_FOUND
	}
	m := readMetadata(host, info.IsDir())
	m.Access = access
	m.FileType = fileType
	m.AuxType = auxType
	if code := writeMetadata(host, m); code != ErrNone {
		return code
	}
	modified := resolveDateTime(modDate, modTime, d.now())
	if err := os.Chtimes(host, modified, modified); err != nil {
		return errnoToCode(err)
	}
	return ErrNone
}

// getFileInfo reports the full attribute set of an existing file or
// directory back into the parameter block.
func getFileInfo(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	pathPtr := bus.ReadWord(pb + 1)
	_, host, code := resolveToHost(d, bus, pathPtr)
	if code != ErrNone {
		return code
	}
	info, err := os.Lstat(host)
	if err != nil {
		return Code(0x45) // FILE_NOT_FOUND
	}
	m := readMetadata(host, info.IsDir())
	storageType := m.StorageType
	if isVolumeRoot(d.ctx.VolumesRoot, host) {
		// A volume's top-level directory is always a volume header, by
		// structural position, regardless of whatever storage_type
		// xattr happens to be cached on it.
		storageType = 0x0F
	}

	bus.WriteByte(pb+3, m.Access)
	bus.WriteByte(pb+4, m.FileType)
	bus.WriteWord(pb+5, m.AuxType)
	bus.WriteByte(pb+7, storageType)
	blocks := (info.Size() + blockSize - 1) / blockSize
	if blocks == 0 {
		blocks = 1
	}
	bus.WriteWord(pb+8, uint16(blocks))
	bus.WriteWord(pb+10, encodeDate(info.ModTime().UTC()))
	bus.WriteWord(pb+12, encodeTime(info.ModTime().UTC()))
	bus.WriteWord(pb+14, encodeDate(m.Created))
	bus.WriteWord(pb+16, encodeTime(m.Created))
	return ErrNone
}

// onLine lists available volumes: every top-level directory under the
// volumes root, each assigned a synthesized slot/drive pair by its
// position (index = (slot-1)*2+drive, slot 1-7 and drive 1-2, 14 volumes
// total) since there is no real Apple II slot/drive to report. A zero
// unit_number lists every online volume; a nonzero one names a single
// slot/drive to report, translated to the same index scheme, reporting
// $28 if it names a slot/drive with no volume behind it.
func onLine(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	unitNum := bus.ReadByte(pb + 1)
	bufAddr := bus.ReadWord(pb + 2)

	entries, err := os.ReadDir(d.ctx.VolumesRoot)
	if err != nil {
		entries = nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, filepath.Base(e.Name()))
		}
	}
	sort.Strings(names)

	const maxOnLineVolumes = 14
	if len(names) > maxOnLineVolumes {
		names = names[:maxOnLineVolumes]
	}

	// writeRecord packs byte 0 as drive(bit7)/slot(bits4-6)/name-length
	// (bits0-3), per the (slot-1)*2+drive index scheme (1-based index).
	writeRecord := func(off uint16, index int, name string) uint16 {
		idx0 := index - 1
		slot := idx0/2 + 1
		drive := idx0%2 + 1
		if len(name) > 15 {
			name = name[:15]
		}
		rec := make([]byte, 16)
		rec[0] = byte(drive-1)<<7 | byte(slot)<<4 | byte(len(name))
		copy(rec[1:], name)
		bus.WriteBytes(off, rec)
		return off + 16
	}

	if unitNum == 0 {
		off := bufAddr
		for i, name := range names {
			off = writeRecord(off, i+1, name)
		}
		bus.WriteByte(off, 0) // zero-length terminator record
		return ErrNone
	}

	slot := int((unitNum >> 4) & 0x07)
	drive := 1
	if unitNum&0x80 != 0 {
		drive = 2
	}
	index := (slot-1)*2 + drive
	if slot < 1 || index < 1 || index > len(names) {
		return Code(0x28) // NO_DEVICE_CONNECTED: slot/drive has no volume behind it
	}
	off := writeRecord(bufAddr, index, names[index-1])
	bus.WriteByte(off, 0)
	return ErrNone
}
