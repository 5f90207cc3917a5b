package mli

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/xattr"
)

// xattrNamespace prefixes every metadata key this dispatcher persists,
// keeping it out of the way of any other extended attributes a host
// file might carry.
const xattrNamespace = "user.prodos8emu."

// metadata is the set of ProDOS fields with no host filesystem
// equivalent, persisted one attribute per field.
type metadata struct {
	Access      byte
	FileType    byte
	AuxType     uint16
	StorageType byte
	Created     time.Time
}

// defaultMetadata returns the fallback metadata for a file or directory
// when nothing is stored yet, using mtime (or now) for Created.
func defaultMetadata(isDir bool, mtimeOrNow time.Time) metadata {
	m := metadata{
		Access:  defaultAccess,
		Created: mtimeOrNow,
	}
	if isDir {
		m.FileType = 0x0F
		m.StorageType = 0x0D
	} else {
		m.FileType = 0x06
		m.StorageType = 0x01
	}
	return m
}

func getXattrString(path, key string) (string, bool) {
	v, err := xattr.Get(path, xattrNamespace+key)
	if err != nil {
		return "", false
	}
	return string(v), true
}

func setXattrString(path, key, value string) error {
	return xattr.Set(path, xattrNamespace+key, []byte(value))
}

// readMetadata loads the per-field xattrs for path, substituting
// per-field defaults for anything missing or malformed.
func readMetadata(path string, isDir bool) metadata {
	info, statErr := os.Stat(path)
	mtimeOrNow := time.Now().UTC()
	if statErr == nil {
		mtimeOrNow = info.ModTime().UTC()
	}
	m := defaultMetadata(isDir, mtimeOrNow)

	if s, ok := getXattrString(path, "access"); ok {
		if b, ok := parseAccess(s); ok {
			m.Access = b
		}
	}
	if s, ok := getXattrString(path, "file_type"); ok {
		if b, ok := parseHexByte(s); ok {
			m.FileType = b
		}
	}
	if s, ok := getXattrString(path, "aux_type"); ok {
		if v, ok := parseHexWordLE(s); ok {
			m.AuxType = v
		}
	}
	if s, ok := getXattrString(path, "storage_type"); ok {
		if b, ok := parseHexByte(s); ok {
			m.StorageType = b
		}
	}
	if s, ok := getXattrString(path, "created"); ok {
		if t, err := time.Parse("2006-01-02T15:04:05Z", s); err == nil {
			m.Created = t
		}
	}
	return m
}

// ApplyMetadata persists a ProDOS attribute set as host xattrs on path.
// Exported for system.UnpackVolume, the one other caller that needs to
// attach ProDOS-only metadata to a host file from outside this package.
func ApplyMetadata(path string, access, fileType byte, auxType uint16, storageType byte, created time.Time) error {
	code := writeMetadata(path, metadata{
		Access:      access,
		FileType:    fileType,
		AuxType:     auxType,
		StorageType: storageType,
		Created:     created,
	})
	if code != ErrNone {
		return fmt.Errorf("mli: writing metadata for %q: %s", path, code)
	}
	return nil
}

// writeMetadata persists every field of m as a host xattr on path.
func writeMetadata(path string, m metadata) Code {
	fields := map[string]string{
		"access":       formatAccess(m.Access),
		"file_type":    fmt.Sprintf("%02x", m.FileType),
		"aux_type":     fmt.Sprintf("%02x%02x", byte(m.AuxType), byte(m.AuxType>>8)),
		"storage_type": fmt.Sprintf("%02x", m.StorageType),
		"created":      m.Created.UTC().Format("2006-01-02T15:04:05Z"),
	}
	for key, value := range fields {
		if err := setXattrString(path, key, value); err != nil {
			return errnoToCode(err)
		}
	}
	return ErrNone
}

func parseHexByte(s string) (byte, bool) {
	if len(s) != 2 {
		return 0, false
	}
	var v byte
	for _, c := range []byte(s) {
		d, ok := hexDigit(c)
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func parseHexWordLE(s string) (uint16, bool) {
	if len(s) != 4 {
		return 0, false
	}
	lo, ok := parseHexByte(s[0:2])
	if !ok {
		return 0, false
	}
	hi, ok := parseHexByte(s[2:4])
	if !ok {
		return 0, false
	}
	return uint16(lo) | uint16(hi)<<8, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}
