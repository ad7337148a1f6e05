package evostrat

import (
	"errors"
	"iter"
	"sync/atomic"
	"testing"
)

var errBoom = errors.New("boom")

// testLC is a LocalContext with no capabilities, for tests exercising only
// the Executor/worker protocol itself rather than a stage.
type testLC struct{}

func TestStartExecutorDefaultWorkers(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil })
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Stop()
	if ex.Workers() < 1 {
		t.Fatalf("expected at least one worker, got %d", ex.Workers())
	}
}

func TestStartExecutorWithWorkers(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil }, WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Stop()
	if ex.Workers() != 4 {
		t.Fatalf("expected 4 workers, got %d", ex.Workers())
	}
}

func TestStartExecutorBuilderFailure(t *testing.T) {
	var failed atomic.Bool
	ex, err := StartExecutor[testLC](func() (testLC, error) {
		if failed.CompareAndSwap(false, true) {
			return testLC{}, errBoom
		}
		return testLC{}, nil
	}, WithWorkers(4))
	if ex != nil {
		t.Fatalf("expected nil executor on builder failure, got %v", ex)
	}
	if err == nil {
		t.Fatal("expected an error")
	}
	var startErr *WorkerStartError
	if !errors.As(err, &startErr) {
		t.Fatalf("expected a *WorkerStartError somewhere in the chain, got %v", err)
	}
}

func TestExecutorStopIdempotent(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil }, WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := ex.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}
	if err := ex.Stop(); err != nil {
		t.Fatalf("second Stop should be a no-op, got: %v", err)
	}
}

func TestTryExecuteJobZeroWork(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil }, WithWorkers(3))
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Stop()

	result, err := TryExecuteJob[testLC, int](ex, EqualChunks(0),
		func(testLC, iter.Seq[int]) (int, error) { panic("should not be called") },
		func(testLC, int, int) (int, error) { panic("should not be called") },
	)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected a nil result for zero work, got %v", *result)
	}
}

func TestTryExecuteJobSumsIndices(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil }, WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Stop()

	const n = 97 // deliberately not a multiple of the worker count
	result, err := TryExecuteJob[testLC, int](ex, EqualChunks(n),
		func(_ testLC, indices iter.Seq[int]) (int, error) {
			sum := 0
			for i := range indices {
				sum += i
			}
			return sum, nil
		},
		func(_ testLC, a, b int) (int, error) { return a + b, nil },
	)
	if err != nil {
		t.Fatal(err)
	}
	want := n * (n - 1) / 2
	if result == nil || *result != want {
		t.Fatalf("expected %d, got %v", want, result)
	}
}

func TestTryExecuteJobPropagatesMapError(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil }, WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	defer ex.Stop()

	_, err = TryExecuteJob[testLC, int](ex, EqualChunks(16),
		func(_ testLC, indices iter.Seq[int]) (int, error) {
			for range indices {
				return 0, errBoom
			}
			return 0, nil
		},
		func(_ testLC, a, b int) (int, error) { return a + b, nil },
	)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom somewhere in the chain, got %v", err)
	}
}

func TestTryExecuteJobAfterStopFails(t *testing.T) {
	ex, err := StartExecutor[testLC](func() (testLC, error) { return testLC{}, nil }, WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := ex.Stop(); err != nil {
		t.Fatal(err)
	}
	_, err = TryExecuteJob[testLC, int](ex, EqualChunks(4),
		func(testLC, iter.Seq[int]) (int, error) { panic("should not be called") },
		func(testLC, int, int) (int, error) { panic("should not be called") },
	)
	var execErr *ExecutorError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecutorError, got %v", err)
	}
}
