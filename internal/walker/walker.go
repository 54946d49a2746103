// Package walker implements the Tree Walker (C3) and the Type
// Resolver (C4): depth-first enumeration of one or more directory
// trees into an Entry Store, and the DT_UNKNOWN repair loop that
// brings every entry to a definite type.
package walker

import (
	"fmt"
	"os"

	"github.com/andikleen/fastwalk-go/internal/diag"
	"github.com/andikleen/fastwalk-go/internal/entrystore"
	"github.com/andikleen/fastwalk-go/internal/skipset"
)

// Walker holds the shared state a walk needs: where discovered entries
// land, which simple names to ignore, and where to report per-path
// failures. It replaces the teacher's and the original C's
// process-wide globals with an explicit, testable collaborator
// (Design Notes §9).
type Walker struct {
	Entries *entrystore.Store
	Skip    *skipset.Set
	Diag    *diag.Reporter
}

// New builds a Walker over the given Entry Store, skip set, and
// diagnostic reporter.
func New(entries *entrystore.Store, skip *skipset.Set, d *diag.Reporter) *Walker {
	return &Walker{Entries: entries, Skip: skip, Diag: d}
}

// frame is one level of the explicit directory stack Walk maintains in
// place of call recursion, so depth is bounded by heap, not by the
// goroutine stack (Design Notes §9, "bounded iterative walker").
type frame struct {
	path    string
	device  uint64
	entries []rawDirent
	idx     int
}

// Walk discovers every non-skipped object reachable from root,
// appending a record for each non-directory child to the Entry Store.
// It returns true iff at least one child was registered with type
// Unknown, anywhere in the subtree — callers OR this across multiple
// roots the same way the original recursive walk ORs its return value
// up through each recursive call.
//
// If root itself can't be opened or stat'd, the failure is reported
// and Walk returns (false, nil): the root simply contributes nothing,
// it does not abort a multi-root run (spec.md §4.2's failure policy).
func (w *Walker) Walk(root string) (foundUnknown bool, err error) {
	top, ferr := w.openFrame(root)
	if ferr != nil {
		w.Diag.Errorf(root, "%v", ferr)
		return false, nil
	}

	stack := []frame{top}
	for len(stack) > 0 {
		cur := &stack[len(stack)-1]
		if cur.idx >= len(cur.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		de := cur.entries[cur.idx]
		cur.idx++

		if w.Skip.Contains(de.name) {
			continue
		}
		childPath := cur.path + "/" + de.name

		if de.typ == entrystore.Directory {
			child, ferr := w.openFrame(childPath)
			if ferr != nil {
				w.Diag.Errorf(childPath, "%v", ferr)
				continue
			}
			stack = append(stack, child)
			continue
		}

		w.Entries.Append(&entrystore.Entry{
			Name:   childPath,
			Inode:  de.ino,
			Device: cur.device,
			Type:   de.typ,
		})
		if de.typ == entrystore.Unknown {
			foundUnknown = true
		}
	}
	return foundUnknown, nil
}

// openFrame opens dir, stats it for its device id, and reads its
// entries, releasing the directory descriptor before returning on
// every path — scoped acquisition, guaranteed release, matching
// backend/local.List's defer-based cleanup.
func (w *Walker) openFrame(dir string) (f frame, err error) {
	fd, err := os.Open(dir)
	if err != nil {
		return frame{}, err
	}
	defer fd.Close()

	dev, err := fstatDevice(fd)
	if err != nil {
		return frame{}, err
	}

	ents, err := readDirRaw(fd)
	if err != nil {
		return frame{}, fmt.Errorf("reading %s: %w", dir, err)
	}

	return frame{path: dir, device: dev, entries: ents}, nil
}
