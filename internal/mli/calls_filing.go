package mli

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/halfbit/prodos8emu/internal/cpu"
)

func init() {
	registerMLICall(0xC8, 3, open)
	registerMLICall(0xC9, 3, newline)
	registerMLICall(0xCA, 4, read)
	registerMLICall(0xCB, 4, write)
	registerMLICall(0xCC, 1, closeCall)
	registerMLICall(0xCD, 1, flush)
	registerMLICall(0xCE, 2, setMark)
	registerMLICall(0xCF, 2, getMark)
	registerMLICall(0xD0, 2, setEOF)
	registerMLICall(0xD1, 2, getEOF)
}

// open allocates a reference number and attaches it to a host file, or
// to a freshly synthesized directory listing if the pathname names a
// directory.
func open(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	pathPtr := bus.ReadWord(pb + 1)
	bufAddr := bus.ReadWord(pb + 3)

	fullPath, host, code := resolveToHost(d, bus, pathPtr)
	if code != ErrNone {
		return code
	}
	info, err := os.Lstat(host)
	if err != nil {
		return Code(0x45) // FILE_NOT_FOUND
	}
	m := readMetadata(host, info.IsDir())
	if m.Access&0x01 == 0 {
		return Code(0x4E) // ACCESS_ERROR: read access required
	}

	refNum := d.ctx.allocRefNum()
	if refNum == 0 {
		return Code(0x42) // FILE_TABLE_FULL
	}

	entry := &openFile{hostPath: host, bufAddr: bufAddr}
	if info.IsDir() {
		entry.isDir = true
		entry.dirBlock = buildDirectoryListing(host, fullPath, info, d.now())
	} else {
		f, err := os.OpenFile(host, os.O_RDWR, 0o644)
		if err != nil && errors.Is(err, fs.ErrPermission) {
			f, err = os.OpenFile(host, os.O_RDONLY, 0o644)
		}
		if err != nil {
			return errnoToCode(err)
		}
		entry.f = f
	}
	d.ctx.files[refNum] = entry
	bus.WriteByte(pb+5, byte(refNum))
	return ErrNone
}

// buildDirectoryListing reads the host directory at host and produces
// the synthesized block image a directory OPEN+READ exposes.
func buildDirectoryListing(host, fullPath string, info os.FileInfo, now time.Time) []byte {
	children, err := os.ReadDir(host)
	if err != nil {
		children = nil
	}
	entries := make([]dirEntry, 0, len(children))
	for _, c := range children {
		childInfo, err := c.Info()
		if err != nil {
			continue
		}
		m := readMetadata(filepath.Join(host, c.Name()), c.IsDir())
		entries = append(entries, dirEntry{
			name:        c.Name(),
			storageType: m.StorageType,
			fileType:    m.FileType,
			auxType:     m.AuxType,
			eof:         uint32(childInfo.Size()),
			created:     m.Created,
			modified:    childInfo.ModTime().UTC(),
			access:      m.Access,
		})
	}
	_, name := parentAndName(fullPath)
	if name == "" {
		name = "/"
	}
	isVolumeHeader := fullPath == "/" || len(fullPath) > 0 && fullPath[1:] != "" && !containsSlashAfterFirst(fullPath)
	return buildDirectoryBlocks(name, isVolumeHeader, entries, now)
}

func containsSlashAfterFirst(p string) bool {
	for i := 1; i < len(p); i++ {
		if p[i] == '/' {
			return true
		}
	}
	return false
}

func newline(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	mask := bus.ReadByte(pb + 2)
	ch := bus.ReadByte(pb + 3)
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43) // BAD_REF_NUM
	}
	o.newlineEnabled = true
	o.newlineMask = mask
	o.newlineChar = ch
	return ErrNone
}

// read transfers up to the requested count of bytes starting at the
// file's mark, or fewer if newline-mode splitting or end-of-file stops
// it short, advancing the mark by however much was actually read.
func read(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	dataBuf := bus.ReadWord(pb + 2)
	reqCount := bus.ReadWord(pb + 4)

	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43) // BAD_REF_NUM
	}

	var src []byte
	if o.isDir {
		src = o.dirBlock
	} else {
		if _, err := o.f.Seek(int64(o.mark), io.SeekStart); err != nil {
			return errnoToCode(err)
		}
		buf := make([]byte, reqCount)
		n, err := o.f.Read(buf)
		if err != nil && err != io.EOF {
			return errnoToCode(err)
		}
		src = buf[:n]
	}
	if o.isDir {
		if int(o.mark) >= len(src) {
			src = nil
		} else {
			end := int(o.mark) + int(reqCount)
			if end > len(src) {
				end = len(src)
			}
			src = src[o.mark:end]
		}
	}

	n := len(src)
	if o.newlineEnabled {
		for i, b := range src {
			if b&o.newlineMask == o.newlineChar&o.newlineMask {
				n = i + 1
				break
			}
		}
	}
	if n == 0 && reqCount == 0 {
		bus.WriteWord(pb+6, 0)
		return ErrNone
	}
	bus.WriteBytes(dataBuf, src[:n])
	o.mark += uint32(n)
	bus.WriteWord(pb+6, uint16(n))
	if n == 0 {
		return Code(0x4C) // END_OF_FILE: nothing left to transfer
	}
	return ErrNone
}

// write transfers the requested count of bytes from the data buffer
// into the file starting at its mark, advancing the mark afterward.
func write(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	dataBuf := bus.ReadWord(pb + 2)
	reqCount := bus.ReadWord(pb + 4)

	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	if o.isDir {
		return Code(0x4E) // ACCESS_ERROR, directories are read-only listings
	}
	buf := make([]byte, reqCount)
	bus.ReadBytes(dataBuf, buf)
	if _, err := o.f.Seek(int64(o.mark), io.SeekStart); err != nil {
		return errnoToCode(err)
	}
	n, err := o.f.Write(buf)
	if err != nil {
		return errnoToCode(err)
	}
	o.mark += uint32(n)
	bus.WriteWord(pb+6, uint16(n))
	return ErrNone
}

func closeCall(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	if refNum == 0 {
		d.ctx.closeAll()
		return ErrNone
	}
	if d.ctx.lookup(refNum) == nil {
		return Code(0x43)
	}
	d.ctx.closeRef(refNum)
	return ErrNone
}

func flush(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	if refNum == 0 {
		for i := 1; i <= maxOpenFiles; i++ {
			if o := d.ctx.files[i]; o != nil && o.f != nil {
				o.f.Sync()
			}
		}
		return ErrNone
	}
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	if o.f != nil {
		o.f.Sync()
	}
	return ErrNone
}

func setMark(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	mark := bus.ReadWord24(pb + 2)
	if mark > uint32(o.size()) {
		return Code(0xAD) // POSITION_OUT_OF_RANGE
	}
	o.mark = mark
	return ErrNone
}

func getMark(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	bus.WriteWord24(pb+2, o.mark)
	return ErrNone
}

func setEOF(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	if o.isDir {
		return Code(0x4E)
	}
	eof := bus.ReadWord24(pb + 2)
	if err := o.f.Truncate(int64(eof)); err != nil {
		return errnoToCode(err)
	}
	return ErrNone
}

func getEOF(d *Dispatcher, bus cpu.MLIBus, pb uint16) Code {
	refNum := int(bus.ReadByte(pb + 1))
	o := d.ctx.lookup(refNum)
	if o == nil {
		return Code(0x43)
	}
	bus.WriteWord24(pb+2, uint32(o.size()))
	return ErrNone
}
