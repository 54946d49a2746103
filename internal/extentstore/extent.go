// Package extentstore holds the Extent Store (C2): a growable set of
// physical-extent records, each referencing the Entry it belongs to.
package extentstore

import "github.com/andikleen/fastwalk-go/internal/entrystore"

// Extent represents a contiguous physical region of a single file.
// Entry is a back-reference, not an index, so it stays valid across
// any number of Entry Store sorts (I-X1 requires the referenced Entry
// to stay live and Regular; pointer stability is what makes that
// cheap to guarantee).
type Extent struct {
	// Disk is the physical start of this extent on the block device.
	Disk uint64
	// Offset is the logical offset of this extent within the file.
	Offset uint64
	// Length is the extent's length in bytes.
	Length uint64
	// Entry is the file this extent belongs to.
	Entry *entrystore.Entry
}
