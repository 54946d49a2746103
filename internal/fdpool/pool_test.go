package fdpool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andikleen/fastwalk-go/internal/entrystore"
)

func makeFiles(t *testing.T, n int) []*entrystore.Entry {
	t.Helper()
	dir := t.TempDir()
	entries := make([]*entrystore.Entry, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, string(rune('a'+i)))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		entries[i] = &entrystore.Entry{Name: path}
	}
	return entries
}

func TestGetOpensAndBinds(t *testing.T) {
	entries := makeFiles(t, 1)
	p, err := New(4)
	require.NoError(t, err)

	f, err := p.Get(entries[0])
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.True(t, entries[0].FDBound())
	assert.Equal(t, 1, p.Len())
}

func TestGetOnAlreadyBoundIsCacheHit(t *testing.T) {
	entries := makeFiles(t, 1)
	p, err := New(4)
	require.NoError(t, err)

	f1, err := p.Get(entries[0])
	require.NoError(t, err)
	f2, err := p.Get(entries[0])
	require.NoError(t, err)

	assert.Same(t, f1, f2)
	assert.Equal(t, 1, p.Len())
}

func TestEvictsLRUTailAtCapacity(t *testing.T) {
	entries := makeFiles(t, 3)
	p, err := New(2)
	require.NoError(t, err)

	_, err = p.Get(entries[0])
	require.NoError(t, err)
	_, err = p.Get(entries[1])
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	_, err = p.Get(entries[2])
	require.NoError(t, err)

	assert.Equal(t, 2, p.Len())
	assert.False(t, entries[0].FDBound(), "oldest entry should have been evicted")
	assert.True(t, entries[1].FDBound())
	assert.True(t, entries[2].FDBound())
}

func TestReleaseClosesAndUnbinds(t *testing.T) {
	entries := makeFiles(t, 1)
	p, err := New(4)
	require.NoError(t, err)

	_, err = p.Get(entries[0])
	require.NoError(t, err)
	p.Release(entries[0])

	assert.False(t, entries[0].FDBound())
	assert.Equal(t, 0, p.Len())
}

func TestGetOpenFailureLeavesSlotFree(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)
	missing := &entrystore.Entry{Name: filepath.Join(t.TempDir(), "no-such")}

	f, err := p.Get(missing)
	assert.Error(t, err)
	assert.Nil(t, f)
	assert.False(t, missing.FDBound())
	assert.Equal(t, 0, p.Len())
}

func TestComputeMaxFDIsPositive(t *testing.T) {
	maxFD, err := ComputeMaxFD()
	require.NoError(t, err)
	assert.Greater(t, maxFD, 0)
}
