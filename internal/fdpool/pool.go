// Package fdpool implements the FD Pool (C6): a bounded LRU of open
// read-only descriptors keyed by Entry, so the readahead pass can
// amortize open/close cost across a file's non-contiguous extents
// without exceeding the process descriptor ceiling.
//
// It is built on github.com/hashicorp/golang-lru (pinned to v0.5.4,
// the exact version already present — indirectly — in the teacher's
// go.mod) rather than a hand-rolled container/list: Cache.Get already
// implements "if bound, detach and reinsert at MRU", Cache.RemoveOldest
// (whose eviction callback closes the descriptor) implements "otherwise
// evict the LRU tail before opening a new one", and Cache.Remove
// implements "release when extent-count reaches zero" (see DESIGN.md
// for the full comparison).
package fdpool

import (
	"os"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sys/unix"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
)

// Pool is the FD Pool. At most one *os.File is ever bound to a given
// Entry at a time (I-F3): the cache is keyed by *Entry, so binding a
// second descriptor for the same entry is simply a cache hit on the
// first.
type Pool struct {
	cache *lru.Cache
	max   int
}

// New builds a Pool holding at most maxFD open descriptors at once
// (I-F2).
func New(maxFD int) (*Pool, error) {
	p := &Pool{max: maxFD}
	cache, err := lru.NewWithEvict(maxFD, p.onEvict)
	if err != nil {
		return nil, err
	}
	p.cache = cache
	return p, nil
}

// ComputeMaxFD queries the process's soft RLIMIT_NOFILE and returns
// 90% of it, reserving the rest for incidental use (stdio, the
// directories/files the walker and mapper open and close per-step
// outside the readahead pass) — spec.md §4.5's Configuration clause.
func ComputeMaxFD() (int, error) {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlim); err != nil {
		return 0, err
	}
	maxFD := int(rlim.Cur) * 9 / 10
	if maxFD < 1 {
		maxFD = 1
	}
	return maxFD, nil
}

func (p *Pool) onEvict(key, value interface{}) {
	entry := key.(*entrystore.Entry)
	file := value.(*os.File)
	_ = file.Close()
	entry.UnbindFD()
}

// Get returns an open, read-only *os.File for entry: an existing
// cached descriptor promoted to most-recently-used, or a freshly
// opened one (evicting the LRU tail first if the pool is already at
// capacity). A non-nil error means the slot stays free and the caller
// (the readahead scheduler) should report and skip this extent, per
// spec.md §4.5's "On open failure, leave the slot free ... return
// null" contract.
func (p *Pool) Get(entry *entrystore.Entry) (*os.File, error) {
	if v, ok := p.cache.Get(entry); ok {
		return v.(*os.File), nil
	}
	if p.cache.Len() >= p.max {
		p.cache.RemoveOldest()
	}
	f, err := os.OpenFile(entry.Name, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	p.cache.Add(entry, f)
	entry.BindFD()
	return f, nil
}

// Release closes entry's cached descriptor immediately and frees its
// slot, used once an entry's ExtentCount reaches zero — ahead of
// whatever the LRU would otherwise have decided (spec.md §4.5
// "release" operation).
func (p *Pool) Release(entry *entrystore.Entry) {
	p.cache.Remove(entry)
}

// Len reports how many descriptors are currently open, for tests
// asserting P4 (at-most-max-fd).
func (p *Pool) Len() int {
	return p.cache.Len()
}
