// Package pipeline implements the Pipeline Driver (C7) and the two
// terminal passes it branches into, the Printer and the Readahead
// Scheduler (C8).
package pipeline

import (
	"fmt"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
	"github.com/andikleen/fastwalk-go/internal/extentmap"
	"github.com/andikleen/fastwalk-go/internal/runctx"
	"github.com/andikleen/fastwalk-go/internal/walker"
)

// Run drives the full pipeline over one or more roots: walk, resolve,
// map extents, then either print or schedule readahead, in the pass
// order spec.md §4.6 fixes.
func Run(ctx *runctx.Context, roots []string) error {
	w := walker.New(ctx.Entries, ctx.Skip, ctx.Diag)

	anyUnknown := false
	for _, root := range roots {
		ctx.Diag.Debugf("walk start: %s", root)
		found, err := w.Walk(root)
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}
		ctx.Diag.Debugf("walk done: %s (%d entries so far)", root, ctx.Entries.Len())
		if found {
			anyUnknown = true
		}
	}

	ctx.Entries.SortByInode()
	if anyUnknown {
		ctx.Diag.Debugf("resolving unknown types (%d entries before resolve)", ctx.Entries.Len())
		w.Resolve()
		ctx.Diag.Debugf("resolve done (%d entries after resolve)", ctx.Entries.Len())
	}

	mapper := extentmap.New(ctx.Extents, ctx.Diag, ctx.Readahead)
	mapped := 0
	for _, e := range ctx.Entries.All() {
		if e.Type != entrystore.Regular {
			continue
		}
		mapper.Map(e)
		mapped++
	}
	ctx.Diag.Debugf("mapped %d regular files to %d extents", mapped, ctx.Extents.Len())

	if ctx.Readahead {
		return RunReadahead(ctx)
	}
	return RunPrint(ctx)
}
