package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServesRepeatCalls(t *testing.T) {
	c, err := NewCache(16)
	require.NoError(t, err)

	first := c.Generate(5, []int{1, 1})
	second := c.Generate(5, []int{1, 1})
	require.NotEmpty(t, first)
	assert.Equal(t, 1, c.Len())
	// Same backing array: the second call was served from the memo, not
	// recomputed.
	assert.Same(t, &first[0], &second[0])
	assert.Empty(t, cmp.Diff(first, second))
}

func TestCacheKeysByLengthAndClues(t *testing.T) {
	c, err := NewCache(16)
	require.NoError(t, err)

	a := c.Generate(5, []int{1, 1})
	b := c.Generate(6, []int{1, 1})
	d := c.Generate(5, []int{2})
	assert.Equal(t, 3, c.Len())
	assert.Len(t, a, 6)
	assert.Len(t, b, 10)
	assert.Len(t, d, 4)
}

func TestCacheEviction(t *testing.T) {
	c, err := NewCache(1)
	require.NoError(t, err)

	c.Generate(5, []int{1})
	c.Generate(5, []int{2})
	assert.Equal(t, 1, c.Len(), "capacity bounds the memo")
	// Evicted keys recompute to equal values.
	assert.Len(t, c.Generate(5, []int{1}), 5)
}

func TestSharedCache(t *testing.T) {
	got := Shared.Generate(4, []int{4})
	require.Len(t, got, 1)
}
