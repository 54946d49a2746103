// Package extentmap implements the Extent Mapper (C5): for each
// regular-file Entry it registers one or more Extent records,
// following the FIEMAP -> FIBMAP -> size-fallback cascade (spec.md
// §4.4), stopping at the first step that succeeds.
package extentmap

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/andikleen/fastwalk-go/internal/diag"
	"github.com/andikleen/fastwalk-go/internal/entrystore"
	"github.com/andikleen/fastwalk-go/internal/extentstore"
)

// maxFiemapExtents is the N in "ask the kernel for up to N extents",
// fixed at 100 per spec.md §4.4 and §6.
const maxFiemapExtents = 100

// Mapper maps regular-file entries to their physical extents.
type Mapper struct {
	Extents *extentstore.Store
	Diag    *diag.Reporter

	// Readahead selects how many FIEMAP extents get registered: all of
	// them in readahead mode, only the first one in print mode (§4.4
	// step 1).
	Readahead bool
}

// New builds a Mapper over the given Extent Store and diagnostic
// reporter.
func New(extents *extentstore.Store, d *diag.Reporter, readahead bool) *Mapper {
	return &Mapper{Extents: extents, Diag: d, Readahead: readahead}
}

// Map maps one regular-file entry. On any failure along the cascade it
// reports the failure and leaves the entry's ExtentCount at zero — the
// scheduler then treats it as "nothing to read" (§4.4 step 3).
func (m *Mapper) Map(e *entrystore.Entry) {
	f, err := os.OpenFile(e.Name, os.O_RDONLY, 0)
	if err != nil {
		m.Diag.Errorf(e.Name, "%v", err)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		m.Diag.Errorf(e.Name, "%v", err)
		return
	}
	size := uint64(fi.Size())
	fd := int(f.Fd())

	if m.fiemap(e, fd, size) {
		return
	}
	m.fibmap(e, fd, size)
}

// fiemap attempts the FIEMAP path. It returns true iff the ioctl
// itself succeeded — even if it mapped zero extents — because success
// (however sparse) stops the cascade; only an ioctl failure falls
// through to FIBMAP.
func (m *Mapper) fiemap(e *entrystore.Entry, fd int, size uint64) bool {
	extents, err := ioctlFiemap(fd, size, maxFiemapExtents)
	if err != nil {
		return false
	}

	regCount := len(extents)
	if !m.Readahead && regCount > 1 {
		regCount = 1
	}
	for i := 0; i < regCount; i++ {
		disk := extents[i].physical
		if extents[i].flags&fiemapExtentUnknown != 0 {
			m.Diag.WarnOnce("disk-unknown", fmt.Sprintf("%s: disk location unknown", e.Name))
			disk = 0
		}
		m.Extents.Append(&extentstore.Extent{
			Disk:   disk,
			Offset: extents[i].logical,
			Length: extents[i].length,
			Entry:  e,
		})
		e.ExtentCount++
		if i == 0 {
			e.DiskHint = disk
		}
	}
	return true
}

// fibmap attempts the FIBMAP path, including the EPERM fallback that
// uses file size as a weak disk-hint proxy (spec.md §4.4 step 2 and
// §9's Open Question 1 — preserved deliberately, see DESIGN.md).
func (m *Mapper) fibmap(e *entrystore.Entry, fd int, size uint64) {
	block, err := ioctlFibmap(fd)
	if err == nil {
		m.register(e, block, size)
		return
	}

	if errors.Is(err, unix.EPERM) {
		m.Diag.WarnOnce("no-fiemap-no-root", fmt.Sprintf("%s: no FIEMAP and no root: no disk data sorting", e.Name))
		m.register(e, size, size)
		return
	}

	m.Diag.Errorf(e.Name, "%v", err)
}

func (m *Mapper) register(e *entrystore.Entry, disk, size uint64) {
	m.Extents.Append(&extentstore.Extent{Disk: disk, Offset: 0, Length: size, Entry: e})
	e.ExtentCount = 1
	e.DiskHint = disk
}
