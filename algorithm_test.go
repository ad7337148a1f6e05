package evostrat

import (
	"sync/atomic"
	"testing"
)

type shellLC struct {
	im *counterIndividualManager
	fm doubleFitsManager
	sm SliceSortManager[Scored[int]]
}

func (lc shellLC) IndividualManager() IndividualManager[int] { return lc.im }
func (lc shellLC) FitsManager() FitsManager[int, int]        { return lc.fm }
func (lc shellLC) SortManager() SortManager[Scored[int]]     { return lc.sm }

func TestShellRun(t *testing.T) {
	counter := new(atomic.Int64)
	ex, err := StartExecutor[shellLC](func() (shellLC, error) {
		return shellLC{im: &counterIndividualManager{next: counter}}, nil
	}, WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}

	sh := NewShell[shellLC](ex)
	var popMgr SliceSetManager[int]
	var scoreMgr SliceSetManager[Scored[int]]

	// doubleFitsManager scores individual v as 2v; ascending order keeps the
	// lowest-valued individuals, so Run's mu survivors should be 0..mu-1.
	less := func(a, b Scored[int]) bool { return a.Fitness < b.Fitness }
	result := Run[shellLC, *SliceSet[int], *SliceSet[Scored[int]], int, int](sh, popMgr, scoreMgr, 10, 50, less)
	if !result.OK() {
		t.Fatalf("expected success, got error: %v", result.Err())
	}
	population, ok := result.Population()
	if !ok {
		t.Fatal("expected a population on success")
	}
	if population.Size() != 10 {
		t.Fatalf("expected 10 survivors, got %d", population.Size())
	}

	seen := make(map[int]bool, 10)
	for _, v := range population.Slice() {
		if v < 0 || v >= 10 {
			t.Fatalf("expected only the 10 lowest-valued individuals to survive, got %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct survivors, got %d", len(seen))
	}

	// the executor must already be stopped; a second Stop is a no-op.
	if err := ex.Stop(); err != nil {
		t.Fatalf("expected Stop to be idempotent post-Run, got %v", err)
	}
}

func TestShellRunMuGreaterThanLambda(t *testing.T) {
	counter := new(atomic.Int64)
	ex, err := StartExecutor[shellLC](func() (shellLC, error) {
		return shellLC{im: &counterIndividualManager{next: counter}}, nil
	}, WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}

	sh := NewShell[shellLC](ex)
	var popMgr SliceSetManager[int]
	var scoreMgr SliceSetManager[Scored[int]]
	less := func(a, b Scored[int]) bool { return a.Fitness < b.Fitness }

	result := Run[shellLC, *SliceSet[int], *SliceSet[Scored[int]], int, int](sh, popMgr, scoreMgr, 100, 7, less)
	if !result.OK() {
		t.Fatalf("expected success, got error: %v", result.Err())
	}
	population, _ := result.Population()
	if population.Size() != 7 {
		t.Fatalf("expected mu to be clamped to lambda (7), got %d", population.Size())
	}
}
