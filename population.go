package evostrat

import (
	"fmt"
	"sync/atomic"
)

// sharedPopulation is a read-only handle to a materialized population,
// shared across worker goroutines for the duration of one EvaluateFitness
// call. refs tracks how many workers currently hold a live handle via
// acquire/release; it is a defect for a handle to outlive the job that
// created it, so EvaluateFitness pairs each acquire with a deferred
// release.
type sharedPopulation[T any] struct {
	items []T
	refs  *atomic.Int64
}

func newSharedPopulation[T any](items []T) *sharedPopulation[T] {
	return &sharedPopulation[T]{items: items, refs: new(atomic.Int64)}
}

func (p *sharedPopulation[T]) acquire() *sharedPopulation[T] {
	p.refs.Add(1)
	return p
}

func (p *sharedPopulation[T]) release() { p.refs.Add(-1) }

// refCount reports the number of currently-held handles; test-only helper.
func (p *sharedPopulation[T]) refCount() int64 { return p.refs.Load() }

func (p *sharedPopulation[T]) Len() int { return len(p.items) }

func (p *sharedPopulation[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(p.items) {
		var zero T
		return zero, fmt.Errorf("index %d out of range (size %d)", i, len(p.items))
	}
	return p.items[i], nil
}
