package entrystore

import "sort"

// Store is the Entry Store (C1): an append-only growable set of
// *Entry. It holds pointers, not values, so growing the backing slice
// (Go's native append, which already doubles on demand) never moves an
// Entry's storage, and SortBy only ever swaps pointers — an *Entry
// handed out by Append stays valid and describes the same object for
// the lifetime of the process, satisfying I-E1.
type Store struct {
	entries []*Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Append adds e to the store and returns it back as a stable
// reference, for symmetry with call sites that want to chain.
func (s *Store) Append(e *Entry) *Entry {
	s.entries = append(s.entries, e)
	return e
}

// Len returns the number of entries currently in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index i. Valid indices are only stable
// across appends, not across sorts — callers that need a stable
// handle across a sort must keep the *Entry itself, not an index.
func (s *Store) At(i int) *Entry {
	return s.entries[i]
}

// All returns the backing slice for iteration. Callers must not retain
// or mutate the slice header (e.g. by appending to it); use Append.
func (s *Store) All() []*Entry {
	return s.entries
}

// SortBy reorders the store in place using less as the comparison.
// Neither stability nor equal-key order is guaranteed, matching
// §4.6's "all sorts are stable or unstable at the implementer's
// discretion".
func (s *Store) SortBy(less func(a, b *Entry) bool) {
	sort.Slice(s.entries, func(i, j int) bool {
		return less(s.entries[i], s.entries[j])
	})
}

// SortByInode sorts ascending by inode number, the ordering used
// before a stat sweep (§4.3, §4.4) so metadata syscalls touch the
// inode table roughly sequentially.
func (s *Store) SortByInode() {
	s.SortBy(func(a, b *Entry) bool { return a.Inode < b.Inode })
}

// SortByDiskHint sorts ascending by DiskHint, the ordering used before
// print-mode emission (§4.6 step 5).
func (s *Store) SortByDiskHint() {
	s.SortBy(func(a, b *Entry) bool { return a.DiskHint < b.DiskHint })
}

// RemoveWhere drops every entry for which remove returns true. Used
// once, after the Type Resolver's sweeps finish, to restore I-E3 for
// entries that were appended as Unknown and later repaired to
// Directory — those were provisionally stored because their type
// wasn't known yet at append time, not because directories belong in
// the store.
func (s *Store) RemoveWhere(remove func(*Entry) bool) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !remove(e) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}
