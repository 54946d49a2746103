//go:build linux

package extentmap

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FS_IOC_FIEMAP and FIBMAP, computed from <linux/fs.h> / <linux/fiemap.h>
// the way _IOWR('f', 11, struct fiemap) and _IO(0x00, 1) expand: Go has
// no cgo here, so these are the resulting constants rather than the
// macro invocations.
const (
	fsIocFiemap = 0xC020660B
	fibmapIoctl = 0x00000001

	fiemapExtentUnknown = 0x00000002

	// sizeof(struct fiemap) and sizeof(struct fiemap_extent) on the
	// Linux uapi, both already 64-bit aligned with no implicit padding.
	fiemapHeaderSize = 32
	fiemapExtentSize = 56
)

// fiemapExtentRaw is one decoded `struct fiemap_extent` record.
type fiemapExtentRaw struct {
	logical  uint64
	physical uint64
	length   uint64
	flags    uint32
}

// ioctlFiemap issues FS_IOC_FIEMAP on fd asking for up to maxExtents
// extents covering [0, size). A function variable so tests can
// substitute a fake — there is no way to deterministically exercise
// the success/UNKNOWN-flag/failure branches in a test sandbox without
// real FIEMAP-capable storage otherwise.
var ioctlFiemap = func(fd int, size uint64, maxExtents int) ([]fiemapExtentRaw, error) {
	buf := make([]byte, fiemapHeaderSize+maxExtents*fiemapExtentSize)
	binary.LittleEndian.PutUint64(buf[0:8], 0)                     // fm_start
	binary.LittleEndian.PutUint64(buf[8:16], size)                 // fm_length
	binary.LittleEndian.PutUint32(buf[16:20], 0)                   // fm_flags
	binary.LittleEndian.PutUint32(buf[20:24], 0)                   // fm_mapped_extents (out)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(maxExtents))  // fm_extent_count
	binary.LittleEndian.PutUint32(buf[28:32], 0)                   // fm_reserved

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(fsIocFiemap), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return nil, errno
	}

	mapped := binary.LittleEndian.Uint32(buf[20:24])
	if int(mapped) > maxExtents {
		mapped = uint32(maxExtents)
	}
	out := make([]fiemapExtentRaw, 0, mapped)
	for i := uint32(0); i < mapped; i++ {
		off := fiemapHeaderSize + int(i)*fiemapExtentSize
		out = append(out, fiemapExtentRaw{
			logical:  binary.LittleEndian.Uint64(buf[off : off+8]),
			physical: binary.LittleEndian.Uint64(buf[off+8 : off+16]),
			length:   binary.LittleEndian.Uint64(buf[off+16 : off+24]),
			// fe_reserved64[2] (16 bytes) sits between fe_length and
			// fe_flags in struct fiemap_extent.
			flags: binary.LittleEndian.Uint32(buf[off+40 : off+44]),
		})
	}
	return out, nil
}

// ioctlFibmap issues FIBMAP for logical block 0 and returns the
// physical block number it maps to.
var ioctlFibmap = func(fd int) (uint64, error) {
	block := uint32(0)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(fibmapIoctl), uintptr(unsafe.Pointer(&block)))
	if errno != 0 {
		return 0, errno
	}
	return uint64(block), nil
}
