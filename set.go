package evostrat

import "iter"

// Set is an append-only, indexable, consumable collection (spec.md §3).
//
// Implementations must guarantee: Size is monotone non-decreasing until
// IntoIter is called; Get(i) for i < Size returns the i-th item in
// insertion order; IntoIter yields exactly Size items in that same order
// and consumes the Set (it must not be used afterward).
type Set[T any] interface {
	// Size returns the number of elements currently held.
	Size() int
	// Get returns the i-th element, or an error if i >= Size.
	Get(i int) (T, error)
	// Add appends x, or fails without modifying the Set.
	Add(x T) error
	// IntoIter consumes the Set, yielding every element in insertion
	// order. Iteration stops early (without a further yield) on the first
	// error.
	IntoIter() iter.Seq2[T, error]
}

// SetManager is the allocator/reserver for a concrete Set implementation
// (spec.md §3). sizeHint, when >= 0, is advisory capacity; a negative hint
// means "no hint."
type SetManager[S any] interface {
	// MakeSet allocates a new, empty Set, optionally sized for sizeHint
	// elements (sizeHint < 0 means no hint).
	MakeSet(sizeHint int) (S, error)
	// Reserve ensures the Set can accept at least additional more Add
	// calls without reallocating, if the underlying representation
	// benefits from that; a no-op implementation is conforming. S is
	// expected to carry reference semantics (e.g. a pointer or a slice
	// header), so Reserve mutates the Set in place rather than returning
	// a replacement.
	Reserve(set S, additional int) error
}
