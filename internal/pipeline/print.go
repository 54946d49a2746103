package pipeline

import (
	"bufio"
	"io"
	"os"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
	"github.com/andikleen/fastwalk-go/internal/runctx"
)

// RunPrint is the print-mode branch of C8: sort by disk-hint (which the
// Extent Mapper already set to each entry's first extent physical
// address; entries with no extents keep 0) and emit the name of each
// regular entry, one per line.
func RunPrint(ctx *runctx.Context) error {
	return printTo(ctx, os.Stdout)
}

func printTo(ctx *runctx.Context, w io.Writer) error {
	ctx.Entries.SortByDiskHint()

	bw := bufio.NewWriter(w)
	for _, e := range ctx.Entries.All() {
		if e.Type != entrystore.Regular {
			continue
		}
		if _, err := bw.WriteString(e.Name); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
