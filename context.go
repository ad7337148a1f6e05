package evostrat

// LocalContextBuilder constructs one LC value per worker goroutine, called
// synchronously before that worker enters its command loop (spec.md §4.1
// step 1). A builder failure is collected and reported by StartExecutor as
// a *WorkerStartError; the offending worker never enters its loop.
//
// LC is "whatever a worker needs to do its local share of the job": an
// IndividualManager, a FitsManager, a SortManager, a PRNG, a scratch
// buffer, database handles, anything host-specific. Rather than a single
// RetrieveXManager trait per capability (as in the original source's
// src/lib.rs), this module asks stage functions to constrain LC directly
// with a small accessor interface naming only the capabilities that stage
// needs - ordinary Go interface satisfaction, checked at the stage's call
// site instead of via runtime retrieval.
//
// SetManager is deliberately not one of LC's capabilities: unlike
// IndividualManager/FitsManager/SortManager it carries no per-worker state
// (no RNG, no connections), so every stage function takes its SetManager
// as an explicit parameter shared by every worker, instead of fetching one
// out of each worker's LC.
type LocalContextBuilder[LC any] func() (LC, error)

// IndividualManagerAccessor is satisfied by a LocalContext that can produce
// new individuals, for InitPopulation (stage_init.go).
type IndividualManagerAccessor[IM any] interface {
	IndividualManager() IM
}

// FitsManagerAccessor is satisfied by a LocalContext that can score
// individuals, for EvaluateFitness (stage_fit.go).
type FitsManagerAccessor[FM any] interface {
	FitsManager() FM
}

// SortManagerAccessor is satisfied by a LocalContext that can sort a chunk
// in place, for SortByPredicate (stage_sort.go).
type SortManagerAccessor[SM any] interface {
	SortManager() SM
}
