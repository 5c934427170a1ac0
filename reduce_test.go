package topset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/topset"
	"github.com/hupe1980/topset/testutil"
)

func TestReduce(t *testing.T) {
	seq := slices.Values([]int{81, 5, 4, 5, 4, 1, 45, 22, 1, 5, 97, 5, 877, 12, 0})

	top := topset.Reduce(5, topset.Greater[int], seq)
	assert.Equal(t, []int{22, 45, 81, 97, 877}, top.IntoSorted())
}

func TestLargestSmallest(t *testing.T) {
	items := []int{4, 5, 8, 3, 2, 1, 4, 7, 9, 8}

	largest := topset.Largest(4, slices.Values(items))
	assert.ElementsMatch(t, []int{7, 8, 9, 8}, largest.Slice())

	smallest := topset.Smallest(4, slices.Values(items))
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, smallest.Slice())
}

func TestLargestSlice(t *testing.T) {
	items := []int{4, 5, 8, 3, 2, 1, 4, 7, 9, 8}

	assert.Equal(t, []int{7, 8, 8, 9}, topset.LargestSlice(4, items))

	// The input is left alone.
	assert.Equal(t, []int{4, 5, 8, 3, 2, 1, 4, 7, 9, 8}, items)
}

func TestSmallestSlice(t *testing.T) {
	items := []int{4, 5, 8, 3, 2, 1, 4, 7, 9, 8}

	// Worst of the kept four first, so descending values.
	assert.Equal(t, []int{4, 3, 2, 1}, topset.SmallestSlice(4, items))
}

func TestReduceMatchesOracle(t *testing.T) {
	rng := testutil.NewRNG(6)
	xs := rng.Ints(400, 60)

	got := topset.LargestSlice(12, xs)
	assert.Equal(t, testutil.ExactBestN(xs, 12, topset.Greater[int]), got)
}
