//go:build linux

package pipeline

import "syscall"

// doReadahead issues readahead(2) directly via syscall.Syscall, the
// same way backend/local/readahead_linux.go does it — neither stdlib
// nor x/sys/unix wraps this call. A function variable so tests can
// substitute a fake and assert call order/arguments without real
// block-backed files.
var doReadahead = func(fd int, offset, length uint64) error {
	_, _, errno := syscall.Syscall(syscall.SYS_READAHEAD, uintptr(fd), uintptr(offset), uintptr(length))
	if errno != 0 {
		return errno
	}
	return nil
}
