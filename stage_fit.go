package evostrat

import "iter"

// FitsManager scores individuals of type T, producing a fitness value of
// type F (spec.md §4.6, equivalent to src/pop/fit.rs's `FitsManager`
// trait). Fitness need not be comparable itself; SortByPredicate takes an
// explicit less over whatever type the host's FitsManager produces.
type FitsManager[T, F any] interface {
	Fitness(individual T) (F, error)
}

// Scored pairs a fitness value with the index, in the source population,
// of the individual it was computed for - EvaluateFitness's output
// element and SortByPredicate's input element (spec.md §4.6, §4.7).
type Scored[F any] struct {
	Fitness F
	Index   int
}

// EvaluateFitness scores every individual of population in parallel,
// returning one Scored[F] per individual. Result order is not guaranteed
// to match population order; Index records the origin. population is
// shared, read-only, across every worker for the call's duration via a
// refcounted handle that is fully released by the time EvaluateFitness
// returns (spec.md §4.6).
func EvaluateFitness[
	LC FitsManagerAccessor[FitsManager[T, F]],
	S Set[Scored[F]],
	T, F any,
](ex *Executor[LC], sm SetManager[S], population []T) (S, error) {
	var zero S
	if len(population) == 0 {
		return zero, &EmptyResultError{}
	}

	shared := newSharedPopulation(population)
	amount := EqualChunks(len(population))

	result, err := TryExecuteJob[LC, S](ex, amount,
		func(lc LC, indices iter.Seq[int]) (S, error) {
			p := shared.acquire()
			defer p.release()

			fm := lc.FitsManager()
			set, err := sm.MakeSet(-1)
			if err != nil {
				return zero, &SetManagerError{Op: "make_set", Cause: err}
			}
			for i := range indices {
				individual, err := p.Get(i)
				if err != nil {
					return zero, &DomainError{Op: "fetch_individual", Cause: err}
				}
				fitness, err := fm.Fitness(individual)
				if err != nil {
					return zero, &DomainError{Op: "fitness", Cause: err}
				}
				if err := set.Add(Scored[F]{Fitness: fitness, Index: i}); err != nil {
					return zero, &SetError{Op: "add", Cause: err}
				}
			}
			return set, nil
		},
		func(lc LC, a, b S) (S, error) {
			return Union[S, Scored[F]](sm, a, b)
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
