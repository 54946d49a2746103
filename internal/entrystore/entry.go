// Package entrystore holds the Entry Store (C1): a growable set of
// directory-entry records discovered during traversal, plus the Entry
// type itself.
package entrystore

// Type classifies a filesystem object as reported by the directory
// stream, or after the Type Resolver has repaired an Unknown entry.
type Type int

// The five entry types a directory stream (or a stat repair) can
// report. The values are this package's own; the walker maps the raw
// DT_* dirent types and stat mode bits onto them.
const (
	Unknown Type = iota
	Regular
	Directory
	Symlink
	Other
)

func (t Type) String() string {
	switch t {
	case Regular:
		return "regular"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Entry represents a single filesystem object discovered during
// traversal. Once appended to a Store, an Entry is never moved or
// copied — callers may hold a *Entry across any number of Store sorts
// and the pointer stays valid and describes the same object (I-E1).
type Entry struct {
	// Name is the path as constructed from the starting root and
	// subsequent directory components, joined with "/". No
	// normalization is performed.
	Name string

	// Inode is the inode number as reported by the directory entry,
	// or by stat if the entry was repaired by the Type Resolver.
	Inode uint64

	// Device is the device identifier of the containing directory at
	// discovery time.
	Device uint64

	// Type classifies the entry. Directories are never appended to a
	// Store (I-E3); Type here is Regular, Symlink, Other, or Unknown
	// until the Type Resolver repairs it.
	Type Type

	// DiskHint is the physical start of the entry's first extent,
	// used as the print-mode sort key. Zero means unknown.
	DiskHint uint64

	// ExtentCount is the number of Extent records registered against
	// this entry by the Extent Mapper (I-E2). The readahead scheduler
	// decrements it as extents are serviced and releases the FD Pool
	// slot when it reaches zero.
	ExtentCount int

	// fdBound records whether an FD Pool slot currently holds an open
	// descriptor for this entry (I-F1). Only the fdpool package
	// touches this via BindFD/UnbindFD; everyone else reads it through
	// FDBound.
	fdBound bool
}

// FDBound reports whether the FD Pool currently holds an open
// descriptor for this entry.
func (e *Entry) FDBound() bool { return e.fdBound }

// BindFD marks the entry as holding an open FD Pool slot. Called only
// by internal/fdpool.
func (e *Entry) BindFD() { e.fdBound = true }

// UnbindFD marks the entry as no longer holding an FD Pool slot.
// Called only by internal/fdpool, on release or eviction.
func (e *Entry) UnbindFD() { e.fdBound = false }
