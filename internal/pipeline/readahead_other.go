//go:build !linux

package pipeline

import "errors"

var errReadaheadUnsupported = errors.New("readahead: not supported on this platform")

var doReadahead = func(fd int, offset, length uint64) error {
	return errReadaheadUnsupported
}
