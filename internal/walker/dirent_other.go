//go:build !linux

package walker

import (
	"os"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
)

// rawDirent mirrors the Linux variant's shape, but on non-Linux
// platforms every entry is fully resolved at read time (see
// readDirRaw below), so typ is never entrystore.Unknown through this
// path.
type rawDirent struct {
	ino  uint64
	typ  entrystore.Type
	name string
}

// readDirRaw falls back to os.File.Readdir, which stats every entry
// itself — there is no portable equivalent of Linux's getdents64
// d_type outside this package's real target platform. This tool's
// Non-goals already scope it to Linux-family filesystems (spec.md §1);
// this file exists only so the module still builds elsewhere, the
// same way backend/local keeps a *_other.go stub alongside its
// Linux-specific files.
func readDirRaw(f *os.File) ([]rawDirent, error) {
	infos, err := f.Readdir(-1)
	if err != nil {
		return nil, err
	}
	out := make([]rawDirent, 0, len(infos))
	for _, fi := range infos {
		out = append(out, rawDirent{ino: 0, typ: typeFromFileMode(fi.Mode()), name: fi.Name()})
	}
	return out, nil
}

func typeFromFileMode(m os.FileMode) entrystore.Type {
	switch {
	case m&os.ModeSymlink != 0:
		return entrystore.Symlink
	case m.IsDir():
		return entrystore.Directory
	case m.IsRegular():
		return entrystore.Regular
	default:
		return entrystore.Other
	}
}

func fstatDevice(f *os.File) (uint64, error) {
	if _, err := f.Stat(); err != nil {
		return 0, err
	}
	return 0, nil
}

func lstatEntry(path string) (ino uint64, typ entrystore.Type, err error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return 0, entrystore.Unknown, err
	}
	return 0, typeFromFileMode(fi.Mode()), nil
}
