package walker

import (
	"sort"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
)

// Resolve is the Type Resolver (C4): it repeatedly sorts the Entry
// Store by inode (so the stat sequence touches the inode table in
// roughly on-disk order) and stats every entry still marked Unknown in
// the range newly added since the last sweep, until a full sweep
// appends nothing new.
//
// Entries that turn out to be directories are re-walked in place —
// their children land at the end of the store, to be swept on the
// next iteration — and are then dropped from the store themselves,
// restoring I-E3 (directories are traversed, never emitted) for
// entries that had to be provisionally stored because their type
// wasn't knowable at append time.
//
// Resolve should only be called when a prior Walk reported
// foundUnknown. Called with nothing Unknown in the store it changes no
// entry, but it still emits the one-time dt_type warning.
func (w *Walker) Resolve() {
	w.Diag.WarnOnce("dt-type", "file system does not support dt_type")

	start := 0
	for {
		end := w.Entries.Len()
		// Take the entries added since the last sweep before the
		// store-wide sort moves them out of [start, end).
		pending := append([]*entrystore.Entry(nil), w.Entries.All()[start:end]...)
		w.Entries.SortByInode()
		sort.Slice(pending, func(i, j int) bool { return pending[i].Inode < pending[j].Inode })

		for _, e := range pending {
			if e.Type != entrystore.Unknown {
				continue
			}
			ino, typ, err := lstatEntry(e.Name)
			if err != nil {
				w.Diag.Errorf(e.Name, "%v", err)
				continue
			}
			e.Inode = ino
			e.Type = typ
			if e.Type == entrystore.Directory {
				if _, werr := w.Walk(e.Name); werr != nil {
					w.Diag.Errorf(e.Name, "%v", werr)
				}
			}
		}

		if w.Entries.Len() == end {
			break
		}
		start = end
	}

	w.Entries.RemoveWhere(func(e *entrystore.Entry) bool {
		return e.Type == entrystore.Directory
	})
}
