package evostrat

import (
	"sync/atomic"
	"testing"
)

// counterIndividualManager hands out sequential ints, shared across every
// worker via an atomic counter so that InitPopulation's output is always
// some permutation of 0..lambda-1; the order depends on scheduling.
type counterIndividualManager struct{ next *atomic.Int64 }

func (m *counterIndividualManager) New() (int, error) {
	return int(m.next.Add(1) - 1), nil
}

// doubleFitsManager scores an individual as twice its value.
type doubleFitsManager struct{}

func (doubleFitsManager) Fitness(individual int) (int, error) { return individual * 2, nil }

// initStageLC is a minimal LocalContext satisfying only InitPopulation's
// requirements.
type initStageLC struct {
	im *counterIndividualManager
}

func (lc initStageLC) IndividualManager() IndividualManager[int] { return lc.im }

func newInitStageExecutor(t *testing.T, workers int) *Executor[initStageLC] {
	t.Helper()
	counter := new(atomic.Int64)
	ex, err := StartExecutor[initStageLC](func() (initStageLC, error) {
		return initStageLC{im: &counterIndividualManager{next: counter}}, nil
	}, WithWorkers(workers))
	if err != nil {
		t.Fatal(err)
	}
	return ex
}

func TestInitPopulation(t *testing.T) {
	ex := newInitStageExecutor(t, 4)
	defer ex.Stop()

	var mgr SliceSetManager[int]
	set, err := InitPopulation[initStageLC, *SliceSet[int], int](ex, mgr, 50)
	if err != nil {
		t.Fatal(err)
	}
	if set.Size() != 50 {
		t.Fatalf("expected 50 individuals, got %d", set.Size())
	}
	seen := make(map[int]bool, 50)
	for _, v := range set.Slice() {
		if seen[v] {
			t.Fatalf("duplicate individual %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 distinct individuals, got %d", len(seen))
	}
}

func TestInitPopulationZeroLambda(t *testing.T) {
	ex := newInitStageExecutor(t, 2)
	defer ex.Stop()

	var mgr SliceSetManager[int]
	_, err := InitPopulation[initStageLC, *SliceSet[int], int](ex, mgr, 0)
	if _, ok := err.(*EmptyResultError); !ok {
		t.Fatalf("expected *EmptyResultError, got %v", err)
	}
}

func TestInitPopulationSingleWorker(t *testing.T) {
	ex := newInitStageExecutor(t, 1)
	defer ex.Stop()

	var mgr SliceSetManager[int]
	set, err := InitPopulation[initStageLC, *SliceSet[int], int](ex, mgr, 7)
	if err != nil {
		t.Fatal(err)
	}
	if set.Size() != 7 {
		t.Fatalf("expected 7 individuals, got %d", set.Size())
	}
}
