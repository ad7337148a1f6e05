package evostrat

import "iter"

// WorkAmount describes a quantity of work (N items, indexed 0..N) and knows
// how to partition those indices across W workers, disjointly and
// completely, for some partitioning strategy (spec.md §4.2).
type WorkAmount interface {
	// N is the total number of indices to partition.
	N() int
	// Partition splits 0..N into workers disjoint, order-preserving index
	// sequences (one per worker). The union of all returned sequences,
	// concatenated in worker order, need not itself be sorted (Alternately
	// interleaves), but every index in 0..N appears in exactly one sequence.
	Partition(workers int) []iter.Seq[int]
}

// equalChunks partitions N indices into workers contiguous ranges, as even
// as possible: the first N%workers workers get one extra index. Grounded on
// src/workamount.rs's `EqualChunks` strategy.
type equalChunks struct{ n int }

// EqualChunks returns the contiguous-range partition strategy for n indices.
func EqualChunks(n int) WorkAmount { return equalChunks{n: n} }

func (e equalChunks) N() int { return e.n }

func (e equalChunks) Partition(workers int) []iter.Seq[int] {
	ranges := make([]iter.Seq[int], workers)
	base, rem := e.n/workers, e.n%workers
	start := 0
	for k := 0; k < workers; k++ {
		size := base
		if k < rem {
			size++
		}
		lo, hi := start, start+size
		ranges[k] = func(yield func(int) bool) {
			for i := lo; i < hi; i++ {
				if !yield(i) {
					return
				}
			}
		}
		start = hi
	}
	return ranges
}

// alternately partitions N indices round-robin: worker k gets
// {k, k+workers, k+2*workers, ...}. Grounded on src/workamount.rs's
// `Alternately` strategy, useful when per-index cost correlates with index
// value (e.g. a population sorted by a prior generation's fitness) and an
// even spread of cheap/expensive indices per worker is preferred over
// contiguous chunks.
type alternately struct{ n int }

// Alternately returns the round-robin partition strategy for n indices.
func Alternately(n int) WorkAmount { return alternately{n: n} }

func (a alternately) N() int { return a.n }

func (a alternately) Partition(workers int) []iter.Seq[int] {
	ranges := make([]iter.Seq[int], workers)
	for k := 0; k < workers; k++ {
		start := k
		ranges[k] = func(yield func(int) bool) {
			for i := start; i < a.n; i += workers {
				if !yield(i) {
					return
				}
			}
		}
	}
	return ranges
}
