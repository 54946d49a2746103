package skipset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlwaysSkipsDotAndDotDot(t *testing.T) {
	s := New(nil)
	assert.True(t, s.Contains("."))
	assert.True(t, s.Contains(".."))
	assert.False(t, s.Contains("anything"))
}

func TestExtraNames(t *testing.T) {
	s := New([]string{"sub", ".git"})
	assert.True(t, s.Contains("sub"))
	assert.True(t, s.Contains(".git"))
	assert.False(t, s.Contains("keep"))
}

func TestIdempotentDuplicates(t *testing.T) {
	once := New([]string{"sub"})
	twice := New([]string{"sub", "sub"})
	assert.Equal(t, once.Contains("sub"), twice.Contains("sub"))
	assert.True(t, twice.Contains("sub"))
}
