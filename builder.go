// Package topset provides a bounded top-N selection container.
//
// This file implements the fluent builder API for assembling a selection
// from a comparator and an initial batch of items. Builders are immutable;
// each method returns a new builder with the updated configuration.
package topset

// Top creates a builder for selecting the n best items of a sequence.
//
// The builder is immutable: each method returns a copy, so a partially
// configured builder can be reused as a template without state sharing.
//
// Example:
//
//	top := topset.Top[float64](5).
//	    Beats(topset.Less[float64]).
//	    Init(81.5, 4.5, 4, 1, 45, 22, 11).
//	    Build()
func Top[X any](n int) Builder[X] {
	return Builder[X]{count: n}
}

// Builder is an immutable fluent builder for a TopSet.
type Builder[X any] struct {
	count int
	beats BeatsFunc[X]
	init  []X
}

// Beats sets the selection predicate.
func (b Builder[X]) Beats(fn BeatsFunc[X]) Builder[X] {
	b.beats = fn
	return b
}

// Compare sets the selection predicate from a three-way comparator in the
// style of cmp.Compare: a positive result means the first argument wins.
func (b Builder[X]) Compare(fn func(a, b X) int) Builder[X] {
	b.beats = FromCompare(fn)
	return b
}

// Init adds items to feed into the set when it is built. Repeated calls
// accumulate. The full-length reslice keeps appends from leaking into
// builders derived earlier from the same template.
func (b Builder[X]) Init(items ...X) Builder[X] {
	b.init = append(b.init[:len(b.init):len(b.init)], items...)
	return b
}

// Build constructs the TopSet and inserts the initial items.
//
// It panics if no comparator was configured; for an arbitrary item type
// there is no usable default. This is the one precondition panic in the
// library.
func (b Builder[X]) Build() *TopSet[X] {
	if b.beats == nil {
		panic("topset: builder has no comparator; call Beats or Compare")
	}

	return WithInit(b.count, b.beats, b.init...)
}

// Sorted builds the set and returns its contents ascending from worst to
// best.
func (b Builder[X]) Sorted() []X {
	return b.Build().IntoSorted()
}
