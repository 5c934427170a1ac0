package topset

import "cmp"

// Greater reports a > b: the natural "greater is better" predicate for
// ordered types. Usable directly as a BeatsFunc.
func Greater[X cmp.Ordered](a, b X) bool { return a > b }

// Less reports a < b: the natural "lower is better" predicate for ordered
// types. Usable directly as a BeatsFunc.
func Less[X cmp.Ordered](a, b X) bool { return a < b }

// FromCompare adapts a three-way comparator in the style of cmp.Compare.
// The resulting predicate prefers a when compare(a, b) is positive; a zero
// result means the items tie and neither beats the other.
func FromCompare[X any](compare func(a, b X) int) BeatsFunc[X] {
	return func(a, b X) bool { return compare(a, b) > 0 }
}

// Reverse returns a predicate with the opposite preference of beats, turning
// a best-N selection into a worst-N selection.
func Reverse[X any](beats BeatsFunc[X]) BeatsFunc[X] {
	return func(a, b X) bool { return beats(b, a) }
}
