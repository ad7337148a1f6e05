package evostrat

import (
	"fmt"
	"iter"
)

// SliceSet is the default, slice-backed Set[T] implementation, equivalent
// to the original source's `impl Set for Vec<T>` (src/set/vec.rs). Every
// example and test in this module uses SliceSet unless demonstrating a
// custom Set.
type SliceSet[T any] struct {
	items []T
}

// NewSliceSet wraps an existing slice as a SliceSet, taking ownership of it.
func NewSliceSet[T any](items []T) *SliceSet[T] {
	return &SliceSet[T]{items: items}
}

func (s *SliceSet[T]) Size() int { return len(s.items) }

func (s *SliceSet[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range (size %d)", i, len(s.items))
	}
	return s.items[i], nil
}

func (s *SliceSet[T]) Add(x T) error {
	s.items = append(s.items, x)
	return nil
}

// IntoIter consumes the SliceSet: after ranging over the result, the
// SliceSet's backing slice must not be used again.
func (s *SliceSet[T]) IntoIter() iter.Seq2[T, error] {
	items := s.items
	s.items = nil
	return func(yield func(T, error) bool) {
		for _, x := range items {
			if !yield(x, nil) {
				return
			}
		}
	}
}

// Slice returns the backing slice directly, for callers that would rather
// avoid the iterator, e.g. to sort in place. It does not consume the Set.
func (s *SliceSet[T]) Slice() []T { return s.items }

// SliceSetManager is the SetManager[*SliceSet[T]] counterpart to SliceSet,
// equivalent to src/set/vec.rs's `Manager<T>`.
type SliceSetManager[T any] struct{}

func (SliceSetManager[T]) MakeSet(sizeHint int) (*SliceSet[T], error) {
	if sizeHint < 0 {
		return &SliceSet[T]{}, nil
	}
	return &SliceSet[T]{items: make([]T, 0, sizeHint)}, nil
}

func (SliceSetManager[T]) Reserve(set *SliceSet[T], additional int) error {
	if additional <= 0 {
		return nil
	}
	if cap(set.items)-len(set.items) >= additional {
		return nil
	}
	grown := make([]T, len(set.items), len(set.items)+additional)
	copy(grown, set.items)
	set.items = grown
	return nil
}
