package evostrat

import "iter"

// IndividualManager creates new individuals of type T (spec.md §4.5,
// equivalent to src/pop/init.rs's `IndividualManager` trait). Each worker
// reaches its own IndividualManager through its LocalContext, so
// implementations needing randomness should carry an independently-seeded
// source rather than share one across workers.
type IndividualManager[T any] interface {
	New() (T, error)
}

// InitPopulation builds an initial population of lambda individuals,
// partitioned across the executor's worker pool and unioned back together
// via sm (spec.md §4.5). lambda <= 0 is an *EmptyResultError: an initial
// population of size zero is never a valid starting point for a run.
func InitPopulation[
	LC IndividualManagerAccessor[IndividualManager[T]],
	S Set[T],
	T any,
](ex *Executor[LC], sm SetManager[S], lambda int) (S, error) {
	var zero S
	if lambda <= 0 {
		return zero, &EmptyResultError{}
	}

	amount := EqualChunks(lambda)
	result, err := TryExecuteJob[LC, S](ex, amount,
		func(lc LC, indices iter.Seq[int]) (S, error) {
			im := lc.IndividualManager()
			set, err := sm.MakeSet(-1)
			if err != nil {
				return zero, &SetManagerError{Op: "make_set", Cause: err}
			}
			for range indices {
				individual, err := im.New()
				if err != nil {
					return zero, &DomainError{Op: "new_individual", Cause: err}
				}
				if err := set.Add(individual); err != nil {
					return zero, &SetError{Op: "add", Cause: err}
				}
			}
			return set, nil
		},
		func(lc LC, a, b S) (S, error) {
			return Union[S, T](sm, a, b)
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
