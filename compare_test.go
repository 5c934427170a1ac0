package topset_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/topset"
)

func TestGreaterLess(t *testing.T) {
	assert.True(t, topset.Greater(4, 3))
	assert.False(t, topset.Greater(3, 4))
	assert.False(t, topset.Greater(4, 4))

	assert.True(t, topset.Less(3.5, 4.5))
	assert.False(t, topset.Less(4.5, 3.5))
	assert.False(t, topset.Less("a", "a"))
}

func TestFromCompare(t *testing.T) {
	beats := topset.FromCompare(cmp.Compare[int])

	assert.True(t, beats(4, 3))
	assert.False(t, beats(3, 4))
	assert.False(t, beats(4, 4)) // ties beat nothing
}

func TestReverse(t *testing.T) {
	worst := topset.Reverse(topset.BeatsFunc[int](topset.Greater[int]))

	assert.True(t, worst(3, 4))
	assert.False(t, worst(4, 3))
	assert.False(t, worst(4, 4))

	// A reversed selection keeps the losers.
	top := topset.WithInit(2, worst, 7, 5, 6, 9, 4)
	assert.Equal(t, []int{5, 4}, top.IntoSorted())
}
