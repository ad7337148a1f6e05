package evostrat

import (
	"iter"
	"sort"

	"golang.org/x/exp/constraints"
)

// SortManager sorts a materialized chunk of T in place, using whatever
// algorithm or scratch space the host's LocalContext prefers (spec.md
// §4.7, equivalent to src/pop/sort.rs's `SortManager` trait). A
// LocalContext without special needs can satisfy this trivially with
// sort.Slice, which is exactly what SliceSortManager below does.
type SortManager[T any] interface {
	Sort(chunk []T, less func(x, y T) bool)
}

// SliceSortManager is the default SortManager, delegating to sort.Slice.
// Zero-sized and stateless, so any number of workers can share one value.
type SliceSortManager[T any] struct{}

func (SliceSortManager[T]) Sort(chunk []T, less func(x, y T) bool) {
	sort.Slice(chunk, func(i, j int) bool { return less(chunk[i], chunk[j]) })
}

// Ascending builds a less func for any ordered type, for hosts whose
// SortManager just wants natural order.
func Ascending[T constraints.Ordered]() func(x, y T) bool {
	return func(x, y T) bool { return x < y }
}

// SortByPredicate sorts population (size N) by less, in parallel: each
// worker materializes and sorts its own contiguous chunk (EqualChunks, so
// adjacent workers hold adjacent, already-sorted runs), then the chunks are
// merged pairwise, tournament-style, the same way any other
// TryExecuteJob reduce is folded (spec.md §4.7). N == 0 is an
// *EmptyResultError.
func SortByPredicate[
	LC SortManagerAccessor[SortManager[T]],
	S Set[T],
	T any,
](ex *Executor[LC], sm SetManager[S], population S, less func(x, y T) bool) (S, error) {
	var zero S
	n := population.Size()
	if n == 0 {
		return zero, &EmptyResultError{}
	}

	items, err := drain[T](population)
	if err != nil {
		return zero, err
	}

	amount := EqualChunks(n)
	result, err := TryExecuteJob[LC, S](ex, amount,
		func(lc LC, indices iter.Seq[int]) (S, error) {
			var chunk []T
			for i := range indices {
				chunk = append(chunk, items[i])
			}
			lc.SortManager().Sort(chunk, less)

			set, err := sm.MakeSet(len(chunk))
			if err != nil {
				return zero, &SetManagerError{Op: "make_set", Cause: err}
			}
			for _, x := range chunk {
				if err := set.Add(x); err != nil {
					return zero, &SetError{Op: "add", Cause: err}
				}
			}
			return set, nil
		},
		func(lc LC, a, b S) (S, error) {
			return Merge[S, T](sm, a, b, less)
		},
	)
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, &EmptyResultError{}
	}
	return *result, nil
}
