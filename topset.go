package topset

import (
	"fmt"
	"iter"
	"slices"
)

// BeatsFunc reports whether a should be kept in preference to b.
//
// It must behave as a strict total order and return the same result for the
// same pair of arguments on every call. A predicate that violates this is a
// contract violation: the retained selection becomes unpredictable, but the
// container never reads out of bounds or panics because of it.
type BeatsFunc[X any] func(a, b X) bool

// TopSet keeps the best items of a stream, up to a fixed capacity, according
// to a BeatsFunc.
//
// Value-based storage: the backing slice holds items directly, with the worst
// survivor at index 0. Capacity never grows on insertion; use Resize.
//
// The zero value is a degenerate set of capacity zero. Construct with New or
// WithInit.
type TopSet[X any] struct {
	items    []X
	capacity int
	beats    BeatsFunc[X]
}

// New creates an empty TopSet that retains at most capacity items.
//
// A capacity of zero is permitted and degenerate: nothing is ever retained
// and every Insert returns its candidate back. A negative capacity is
// treated as zero. Storage for capacity items is reserved up front.
func New[X any](capacity int, beats BeatsFunc[X]) *TopSet[X] {
	if capacity < 0 {
		capacity = 0
	}

	return &TopSet[X]{
		items:    make([]X, 0, capacity),
		capacity: capacity,
		beats:    beats,
	}
}

// WithInit creates a TopSet and feeds it an initial batch of items.
//
// If init holds more than capacity items, only the best capacity of them
// survive, exactly as if each had been passed to Insert in order.
func WithInit[X any](capacity int, beats BeatsFunc[X], init ...X) *TopSet[X] {
	t := New(capacity, beats)
	t.Extend(init...)

	return t
}

// Len returns the number of retained items. It never exceeds Capacity.
func (t *TopSet[X]) Len() int { return len(t.items) }

// Capacity returns the maximum number of items the set retains.
// It changes only through Resize.
func (t *TopSet[X]) Capacity() int { return t.capacity }

// Empty reports whether the set holds no items.
func (t *TopSet[X]) Empty() bool { return len(t.items) == 0 }

// Peek returns the worst retained item without removing it.
// The second return value is false when the set is empty.
func (t *TopSet[X]) Peek() (X, bool) {
	if len(t.items) == 0 {
		var zero X
		return zero, false
	}

	return t.items[0], true
}

// IsCandidate reports whether inserting x now would change the retained
// items: either there is room left, or x beats the current worst. It never
// mutates the set.
func (t *TopSet[X]) IsCandidate(x X) bool {
	if len(t.items) < t.capacity {
		return true
	}

	if len(t.items) == 0 {
		return false
	}

	return t.beats(x, t.items[0])
}

// Insert offers x to the set.
//
// While the set is below capacity, x is accepted and Insert returns
// (zero, false). At capacity, one item must lose: if x beats the current
// worst, that worst item is evicted and returned as (evicted, true);
// otherwise x itself is returned as (x, true) and the set is untouched.
//
// A candidate that merely ties with the current worst is rejected, so among
// equals the earlier arrival survives.
func (t *TopSet[X]) Insert(x X) (X, bool) {
	if len(t.items) < t.capacity {
		t.items = append(t.items, x)
		t.siftUp(len(t.items) - 1)

		var zero X
		return zero, false
	}

	// Full. The root only changes when the candidate beats it; the
	// capacity-zero case falls through to rejection.
	if t.capacity > 0 && t.beats(x, t.items[0]) {
		x, t.items[0] = t.items[0], x
		t.siftDown(0)
	}

	return x, true
}

// Pop removes and returns the worst retained item.
// The second return value is false when the set is empty.
//
// Repeated pops yield the retained items ascending from worst to best; this
// is the canonical sorted output of the container.
func (t *TopSet[X]) Pop() (X, bool) {
	n := len(t.items)
	if n == 0 {
		var zero X
		return zero, false
	}

	root := t.items[0]
	t.items[0] = t.items[n-1]

	var zero X
	t.items[n-1] = zero // release the slot
	t.items = t.items[:n-1]

	if len(t.items) > 1 {
		t.siftDown(0)
	}

	return root, true
}

// Resize changes the capacity.
//
// Shrinking below the current length pops (and discards) the worst items
// until the length fits. Growing only reserves room; it never evicts and
// never blocks later insertions up to the new capacity.
func (t *TopSet[X]) Resize(n int) {
	if n < 0 {
		n = 0
	}

	if n > t.capacity {
		t.items = slices.Grow(t.items, n-len(t.items))
	} else {
		for len(t.items) > n {
			t.Pop()
		}
	}

	t.capacity = n
}

// Clear removes all items. The capacity is unchanged.
func (t *TopSet[X]) Clear() {
	clear(t.items) // release the slots
	t.items = t.items[:0]
}

// Extend inserts each item in turn, applying the usual eviction policy.
func (t *TopSet[X]) Extend(items ...X) {
	for _, x := range items {
		t.Insert(x)
	}
}

// Collect inserts every item produced by seq, applying the usual eviction
// policy. The sequence must be finite.
func (t *TopSet[X]) Collect(seq iter.Seq[X]) {
	for x := range seq {
		t.Insert(x)
	}
}

// Beats applies the set's comparator to a and b. It consults only the
// comparator, never the stored items.
func (t *TopSet[X]) Beats(a, b X) bool { return t.beats(a, b) }

// Slice returns a copy of the retained items in internal heap order,
// which is not sorted. Use Drain or IntoSorted for sorted output.
func (t *TopSet[X]) Slice() []X { return slices.Clone(t.items) }

// All returns a read-only iterator over the retained items in internal heap
// order. The set must not be mutated while the iteration is in progress.
func (t *TopSet[X]) All() iter.Seq[X] {
	return func(yield func(X) bool) {
		for _, x := range t.items {
			if !yield(x) {
				return
			}
		}
	}
}

// String formats the retained items in internal heap order.
func (t *TopSet[X]) String() string { return fmt.Sprint(t.items) }

// siftUp moves the item at i toward the root while its parent beats it.
// Better items end up deeper; the root is the worst survivor.
func (t *TopSet[X]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !t.beats(t.items[p], t.items[i]) {
			return
		}

		t.items[i], t.items[p] = t.items[p], t.items[i]
		i = p
	}
}

// siftDown sinks the item at i away from the root while it beats the worse
// of its children.
func (t *TopSet[X]) siftDown(i int) {
	n := len(t.items)

	for {
		c := 2*i + 1
		if c >= n {
			return
		}

		// Pick the worse child: that is the one allowed nearer the root.
		if r := c + 1; r < n && t.beats(t.items[c], t.items[r]) {
			c = r
		}

		if !t.beats(t.items[i], t.items[c]) {
			return
		}

		t.items[i], t.items[c] = t.items[c], t.items[i]
		i = c
	}
}
