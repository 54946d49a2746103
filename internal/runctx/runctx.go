// Package runctx holds the explicit, per-invocation state the original
// C program kept as process-wide globals: the Entry Store, the Extent
// Store, the FD Pool, the skip set, and the run's mode flags. Design
// Notes §9 of the specification calls for exactly this — one value
// built in main and threaded through the pipeline explicitly — instead
// of package-level state, so a test can build two independent Contexts
// in the same process.
package runctx

import (
	"github.com/andikleen/fastwalk-go/internal/diag"
	"github.com/andikleen/fastwalk-go/internal/entrystore"
	"github.com/andikleen/fastwalk-go/internal/extentstore"
	"github.com/andikleen/fastwalk-go/internal/fdpool"
	"github.com/andikleen/fastwalk-go/internal/skipset"
)

// Context is one run's shared state.
type Context struct {
	Entries *entrystore.Store
	Extents *extentstore.Store
	Skip    *skipset.Set
	Diag    *diag.Reporter
	Pool    *fdpool.Pool

	// Readahead selects the pipeline's final branch: true issues kernel
	// readahead over each file's extents, false prints paths in disk
	// order.
	Readahead bool
}

// New builds a Context ready for a run: fresh, empty Entry/Extent
// stores, a skip set seeded with "." and ".." plus the caller's extra
// names, a diagnostic reporter, and an FD Pool sized to maxFD (see
// fdpool.ComputeMaxFD for the usual way to obtain it — kept as a
// caller-supplied parameter here so tests can pass a small fixed size).
func New(skipNames []string, d *diag.Reporter, maxFD int, readahead bool) (*Context, error) {
	pool, err := fdpool.New(maxFD)
	if err != nil {
		return nil, err
	}
	return &Context{
		Entries:   entrystore.New(),
		Extents:   extentstore.New(),
		Skip:      skipset.New(skipNames),
		Diag:      d,
		Pool:      pool,
		Readahead: readahead,
	}, nil
}
