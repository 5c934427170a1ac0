package topset

import (
	"cmp"
	"iter"
	"slices"
)

// Reduce folds a finite sequence into a new TopSet of the given capacity,
// offering every element to Insert in turn.
func Reduce[X any](n int, beats BeatsFunc[X], seq iter.Seq[X]) *TopSet[X] {
	t := New(n, beats)
	t.Collect(seq)

	return t
}

// Largest reduces seq into the n largest elements under the natural order.
func Largest[X cmp.Ordered](n int, seq iter.Seq[X]) *TopSet[X] {
	return Reduce(n, Greater[X], seq)
}

// Smallest reduces seq into the n smallest elements under the natural order.
func Smallest[X cmp.Ordered](n int, seq iter.Seq[X]) *TopSet[X] {
	return Reduce(n, Less[X], seq)
}

// LargestSlice returns the n largest values in items, sorted ascending
// (the best value last). The input slice is not modified.
func LargestSlice[X cmp.Ordered](n int, items []X) []X {
	return Largest(n, slices.Values(items)).IntoSorted()
}

// SmallestSlice returns the n smallest values in items, sorted descending
// (the best, i.e. smallest, value last). The input slice is not modified.
func SmallestSlice[X cmp.Ordered](n int, items []X) []X {
	return Smallest(n, slices.Values(items)).IntoSorted()
}
