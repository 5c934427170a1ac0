// Package topset provides a bounded top-N selection container.
//
// A TopSet keeps the N best items seen so far in a stream, according to a
// caller-supplied "beats" predicate defining a total order. Once the set is
// full, a new candidate either evicts the worst retained item or bounces
// back unchanged; either way insertion costs O(log N).
//
// Internally the set is a dense binary heap ordered so that the worst
// survivor sits at the root, which makes the next eviction an O(1) lookup
// and an O(log N) replacement.
//
// # Quick Start
//
//	// Keep the 5 cheapest offers.
//	top := topset.New(5, topset.Less[float64])
//	top.Extend(81.5, 4.5, 4, 1, 45, 22, 11)
//
//	for price := range top.Drain() {
//	    fmt.Println(price) // worst to best
//	}
//
// # Fluent Builder
//
//	best := topset.Top[int](4).
//	    Beats(topset.Greater[int]).
//	    Init(4, 5, 8, 3, 2, 1, 4, 7, 9, 8).
//	    Sorted()
//
// # Comparators
//
// The selection predicate has the shape beats(a, b): report true when a
// should be kept in preference to b. Greater and Less cover the natural
// orderings of cmp.Ordered types; FromCompare adapts a three-way comparator
// in the style of cmp.Compare. The predicate must behave as a consistent
// total order. If it does not, the selection is unpredictable (memory-safe,
// but arbitrary).
//
// # Sorted Output
//
// Pop removes the worst survivor first, so repeated pops, the Drain
// iterator, and IntoSorted all produce the retained items ascending from
// worst to best. That ascending order is the only ordering guarantee the
// container makes.
//
// TopSet is not safe for concurrent use. Callers that share a set across
// goroutines must serialize access externally.
package topset
