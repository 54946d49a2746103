package pipeline

import (
	"github.com/andikleen/fastwalk-go/internal/runctx"
)

// RunReadahead is the readahead-mode branch of C8: sort the Extent
// Store by physical address, then for each extent in order obtain an
// FD Pool slot for its Entry, issue readahead over its byte range, and
// release the slot once the Entry's extent-count reaches zero.
func RunReadahead(ctx *runctx.Context) error {
	ctx.Extents.SortByDisk()

	for _, ext := range ctx.Extents.All() {
		e := ext.Entry

		f, err := ctx.Pool.Get(e)
		if err != nil {
			ctx.Diag.Errorf(e.Name, "%v", err)
			continue
		}

		if err := doReadahead(int(f.Fd()), ext.Offset, ext.Length); err != nil {
			ctx.Diag.Errorf(e.Name, "readahead: %v", err)
		}

		e.ExtentCount--
		if e.ExtentCount <= 0 {
			ctx.Pool.Release(e)
		}
	}
	return nil
}
