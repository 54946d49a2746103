package entrystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendReturnsStableReference(t *testing.T) {
	s := New()
	e := s.Append(&Entry{Name: "a", Inode: 5})
	require.Equal(t, 1, s.Len())

	for i := 0; i < 1000; i++ {
		s.Append(&Entry{Name: "filler", Inode: uint64(i)})
	}
	s.SortByInode()

	assert.Equal(t, "a", e.Name)
	assert.Equal(t, uint64(5), e.Inode)
}

func TestSortByInode(t *testing.T) {
	s := New()
	s.Append(&Entry{Name: "c", Inode: 3})
	s.Append(&Entry{Name: "a", Inode: 1})
	s.Append(&Entry{Name: "b", Inode: 2})

	s.SortByInode()

	var got []string
	for _, e := range s.All() {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSortByDiskHint(t *testing.T) {
	s := New()
	s.Append(&Entry{Name: "c", DiskHint: 300})
	s.Append(&Entry{Name: "a", DiskHint: 100})
	s.Append(&Entry{Name: "b", DiskHint: 200})

	s.SortByDiskHint()

	var got []string
	for _, e := range s.All() {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestRemoveWhere(t *testing.T) {
	s := New()
	s.Append(&Entry{Name: "keep1", Type: Regular})
	s.Append(&Entry{Name: "drop", Type: Directory})
	s.Append(&Entry{Name: "keep2", Type: Regular})

	s.RemoveWhere(func(e *Entry) bool { return e.Type == Directory })

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "keep1", s.At(0).Name)
	assert.Equal(t, "keep2", s.At(1).Name)
}

func TestFDBindUnbind(t *testing.T) {
	e := &Entry{Name: "f"}
	assert.False(t, e.FDBound())
	e.BindFD()
	assert.True(t, e.FDBound())
	e.UnbindFD()
	assert.False(t, e.FDBound())
}
