//go:build linux

package walker

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
)

// rawDirent is one parsed record from a directory's raw getdents64(2)
// output — name, inode, and the d_type the kernel already knows,
// without a stat(2) call.
type rawDirent struct {
	ino  uint64
	typ  entrystore.Type
	name string
}

// linux_dirent64 field widths, from <linux/dirent.h>: an 8-byte ino,
// an 8-byte off (unused here), a 2-byte reclen, a 1-byte type, then
// the NUL-terminated name filling out the rest of the record.
const (
	direntInoOff    = 0
	direntReclenOff = 16
	direntTypeOff   = 18
	direntNameOff   = 19
)

// d_type values from <dirent.h>. DT_UNKNOWN is the whole reason this
// file parses getdents64 output by hand instead of trusting a higher
// level API: we need to observe it, not have it silently resolved out
// from under us.
const (
	dtUnknown = 0
	dtFifo    = 1
	dtChr     = 2
	dtDir     = 4
	dtBlk     = 6
	dtReg     = 8
	dtLnk     = 10
	dtSock    = 12
)

func typeFromDType(t byte) entrystore.Type {
	switch t {
	case dtReg:
		return entrystore.Regular
	case dtDir:
		return entrystore.Directory
	case dtLnk:
		return entrystore.Symlink
	case dtFifo, dtChr, dtBlk, dtSock:
		return entrystore.Other
	default:
		return entrystore.Unknown
	}
}

// parseDirents decodes a buffer filled by unix.Getdents into the
// records it contains. A record whose reclen would run past the end
// of buf, or whose own reclen is zero, indicates a truncated or
// corrupt buffer.
func parseDirents(buf []byte) ([]rawDirent, error) {
	var out []rawDirent
	off := 0
	for off < len(buf) {
		if off+direntNameOff > len(buf) {
			return nil, fmt.Errorf("getdents64: short record header")
		}
		ino := binary.LittleEndian.Uint64(buf[off+direntInoOff : off+direntInoOff+8])
		reclen := int(binary.LittleEndian.Uint16(buf[off+direntReclenOff : off+direntReclenOff+2]))
		if reclen <= 0 || off+reclen > len(buf) {
			return nil, fmt.Errorf("getdents64: corrupt record (reclen=%d)", reclen)
		}
		typ := buf[off+direntTypeOff]
		nameBytes := buf[off+direntNameOff : off+reclen]
		if n := bytes.IndexByte(nameBytes, 0); n >= 0 {
			nameBytes = nameBytes[:n]
		}
		// ino == 0 marks a deleted entry the kernel hasn't reused yet
		// (getdents(2)); skip it like readdir(3) does.
		if ino != 0 {
			out = append(out, rawDirent{ino: ino, typ: typeFromDType(typ), name: string(nameBytes)})
		}
		off += reclen
	}
	return out, nil
}

// readDirRaw reads every entry of the already-open directory f via
// getdents64(2), preserving DT_UNKNOWN instead of silently resolving
// it the way a higher-level directory-reading API might.
func readDirRaw(f *os.File) ([]rawDirent, error) {
	var all []rawDirent
	buf := make([]byte, 64*1024)
	for {
		n, err := unix.Getdents(int(f.Fd()), buf)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return all, nil
		}
		ents, err := parseDirents(buf[:n])
		if err != nil {
			return nil, err
		}
		all = append(all, ents...)
	}
}

func fstatDevice(f *os.File) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return 0, err
	}
	return uint64(st.Dev), nil
}

func lstatEntry(path string) (ino uint64, typ entrystore.Type, err error) {
	var st unix.Stat_t
	if err = unix.Lstat(path, &st); err != nil {
		return 0, entrystore.Unknown, err
	}
	return st.Ino, typeFromStatMode(st.Mode), nil
}

func typeFromStatMode(mode uint32) entrystore.Type {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return entrystore.Regular
	case unix.S_IFDIR:
		return entrystore.Directory
	case unix.S_IFLNK:
		return entrystore.Symlink
	default:
		return entrystore.Other
	}
}
