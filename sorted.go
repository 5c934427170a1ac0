package topset

import (
	"iter"
	"slices"
)

// Drain returns a consuming iterator that repeatedly pops the set, yielding
// the retained items ascending from worst to best. Once the iteration
// finishes the set is empty; the iterator is single-use and not restartable.
// Stopping early leaves the unvisited items in place.
func (t *TopSet[X]) Drain() iter.Seq[X] {
	return func(yield func(X) bool) {
		for {
			x, ok := t.Pop()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// IntoSorted empties the set and returns all retained items as a slice
// sorted ascending from worst to best, matching the order Drain would have
// produced. Items that tie under the comparator land in an arbitrary
// relative order. The capacity is unchanged; the set is reusable afterwards.
func (t *TopSet[X]) IntoSorted() []X {
	s := t.items
	t.items = nil

	slices.SortFunc(s, func(a, b X) int {
		switch {
		case t.beats(a, b):
			return 1
		case t.beats(b, a):
			return -1
		default:
			return 0
		}
	})

	return s
}
