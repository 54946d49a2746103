//go:build !linux

package extentmap

import "errors"

// errFiemapUnsupported is returned unconditionally outside Linux. This
// tool's Non-goals already scope it to Linux-family filesystems that
// expose FIEMAP or FIBMAP (spec.md §1); this file exists only so the
// module still builds elsewhere, matching the per-OS split
// backend/local uses for its own Linux-only files.
var errFiemapUnsupported = errors.New("fiemap: not supported on this platform")

// fiemapExtentUnknown mirrors FIEMAP_EXTENT_UNKNOWN so mapper.go's flag
// check compiles here too; ioctlFiemap on this platform never returns
// extents, so the value itself is never tested.
const fiemapExtentUnknown = 0x00000002

type fiemapExtentRaw struct {
	logical  uint64
	physical uint64
	length   uint64
	flags    uint32
}

var ioctlFiemap = func(fd int, size uint64, maxExtents int) ([]fiemapExtentRaw, error) {
	return nil, errFiemapUnsupported
}

var ioctlFibmap = func(fd int) (uint64, error) {
	return 0, errFiemapUnsupported
}
