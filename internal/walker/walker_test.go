package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andikleen/fastwalk-go/internal/diag"
	"github.com/andikleen/fastwalk-go/internal/entrystore"
	"github.com/andikleen/fastwalk-go/internal/skipset"
)

func newWalker(t *testing.T) (*Walker, *entrystore.Store) {
	t.Helper()
	entries := entrystore.New()
	w := New(entries, skipset.New(nil), diag.NewStderr(false))
	return w, entries
}

func TestWalkFlatTree(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	w, entries := newWalker(t)
	_, err := w.Walk(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries.All() {
		names = append(names, filepath.Base(e.Name))
		assert.Equal(t, entrystore.Regular, e.Type)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
}

func TestWalkNestedWithSkip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep"), []byte("x"), 0o644))

	entries := entrystore.New()
	w := New(entries, skipset.New([]string{"sub"}), diag.NewStderr(false))
	_, err := w.Walk(dir)
	require.NoError(t, err)

	require.Equal(t, 1, entries.Len())
	assert.Equal(t, filepath.Join(dir, "keep"), entries.At(0).Name)
}

func TestWalkMissingRootIsReportedNotFatal(t *testing.T) {
	w, entries := newWalker(t)
	found, err := w.Walk(filepath.Join(t.TempDir(), "no-such"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, entries.Len())
	assert.True(t, w.Diag.Errored())
}

func TestWalkSkippedNameNotRecursedInto(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner"), []byte("x"), 0o644))

	entries := entrystore.New()
	w := New(entries, skipset.New([]string{"sub"}), diag.NewStderr(false))
	_, err := w.Walk(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, entries.Len())
}
