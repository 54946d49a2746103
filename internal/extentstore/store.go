package extentstore

import "sort"

// Store is the Extent Store (C2): an append-only growable set of
// *Extent, mirroring entrystore.Store's pointer-stable design so that
// sorting the Extent Store never disturbs the Entry Store, and vice
// versa — the two are reordered independently (§4.1).
type Store struct {
	extents []*Extent
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Append adds e to the store.
func (s *Store) Append(e *Extent) *Extent {
	s.extents = append(s.extents, e)
	return e
}

// Len returns the number of extents currently in the store.
func (s *Store) Len() int {
	return len(s.extents)
}

// All returns the backing slice for iteration. Callers must not retain
// or mutate the slice header; use Append.
func (s *Store) All() []*Extent {
	return s.extents
}

// SortByDisk sorts ascending by physical address, the ordering the
// readahead scheduler issues calls in (§4.6 step 5, §4.7, P3).
func (s *Store) SortByDisk() {
	sort.Slice(s.extents, func(i, j int) bool {
		return s.extents[i].Disk < s.extents[j].Disk
	})
}
