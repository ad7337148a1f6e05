package evostrat

import (
	"fmt"
	"iter"
	"runtime"
	"sync"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"
)

// ExecutorState is an Executor's lifecycle position. It is terminal: once
// Stopped, an Executor cannot return to Running (spec.md open question -
// build a fresh Executor per run rather than restarting one).
type ExecutorState int32

const (
	ExecutorNotStarted ExecutorState = iota
	ExecutorRunning
	ExecutorStopped
)

func (s ExecutorState) String() string {
	switch s {
	case ExecutorNotStarted:
		return "NotStarted"
	case ExecutorRunning:
		return "Running"
	case ExecutorStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

type executorConfig struct {
	workers      int
	log          Logger
	autoMaxProcs bool
}

// ExecutorOption configures StartExecutor.
type ExecutorOption func(*executorConfig)

// WithWorkers overrides the worker pool size. n <= 0 leaves the default
// (runtime.GOMAXPROCS(0), optionally adjusted by WithAutoMaxProcs) in place.
func WithWorkers(n int) ExecutorOption {
	return func(c *executorConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger attaches a Logger; the executor and every stage built on top of
// it log through this Logger instead of the silent default.
func WithLogger(log Logger) ExecutorOption {
	return func(c *executorConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithAutoMaxProcs applies go.uber.org/automaxprocs before sizing the
// default worker pool, so a container's CPU cgroup quota - not the host's
// full core count - determines the default. No-op if combined with
// WithWorkers.
func WithAutoMaxProcs() ExecutorOption {
	return func(c *executorConfig) { c.autoMaxProcs = true }
}

// Executor owns a pool of worker goroutines, each holding one LC, and
// dispatches TryExecuteJob's map/reduce calls across them (spec.md §4).
type Executor[LC any] struct {
	mu      sync.Mutex
	state   ExecutorState
	workers []*worker[LC]
	log     Logger
}

// StartExecutor spawns the worker pool, building one LC per worker via
// builder. If any worker's builder fails, every worker that did start is
// quit and the collected failures are returned as a single error, following
// the Several rule (spec.md §7): one failure surfaces bare, several are
// wrapped in a *SeveralError.
func StartExecutor[LC any](builder LocalContextBuilder[LC], opts ...ExecutorOption) (*Executor[LC], error) {
	cfg := executorConfig{log: NopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		if cfg.autoMaxProcs {
			_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
		}
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	ex := &Executor[LC]{log: cfg.log, workers: make([]*worker[LC], cfg.workers)}
	built := make(chan workerBuilt, cfg.workers)
	for i := range ex.workers {
		w := newWorker[LC](i)
		ex.workers[i] = w
		go w.run(builder, ex.log, built)
	}

	var errs []error
	started := make([]*worker[LC], 0, len(ex.workers))
	for range ex.workers {
		if b := <-built; b.err != nil {
			errs = append(errs, &WorkerStartError{Worker: b.id, Cause: b.err})
		} else {
			started = append(started, ex.workers[b.id])
		}
	}
	if err := collectErrors(errs); err != nil {
		ex.workers = started
		ex.quitAll()
		ex.state = ExecutorStopped
		return nil, err
	}

	ex.state = ExecutorRunning
	return ex, nil
}

// Stop quits every worker and waits for acknowledgement. Idempotent: calling
// it again is safe and returns nil.
func (ex *Executor[LC]) Stop() error {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	if ex.state == ExecutorStopped {
		return nil
	}
	ex.quitAll()
	ex.state = ExecutorStopped
	return nil
}

func (ex *Executor[LC]) quitAll() {
	var g errgroup.Group
	for _, w := range ex.workers {
		w := w
		g.Go(func() error {
			w.cmdCh <- workerCommand[LC]{kind: cmdQuit}
			<-w.replyCh
			return nil
		})
	}
	_ = g.Wait()
}

// Workers reports the size of the worker pool.
func (ex *Executor[LC]) Workers() int {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return len(ex.workers)
}

// TryExecuteJob partitions amount.N() indices across ex's workers using
// amount's own strategy, invokes mapFn once per worker on its share, then
// folds the resulting Partials pairwise, tournament-style, via reduceFn
// until one remains (spec.md §4). A sequential left-fold would also be a
// conforming reduceFn; the tournament shape only changes which pairs are
// combined on which worker, never the result, since reduceFn is required to
// be associative.
//
// If amount.N() == 0, TryExecuteJob returns (nil, nil) without dispatching
// any worker: an empty job is not an error at this layer. Stage functions
// built on top of TryExecuteJob (stage_init.go, stage_fit.go, stage_sort.go)
// decide whether a nil result is itself an error in their context.
func TryExecuteJob[LC, Partial any](
	ex *Executor[LC],
	amount WorkAmount,
	mapFn func(lc LC, indices iter.Seq[int]) (Partial, error),
	reduceFn func(lc LC, a, b Partial) (Partial, error),
) (*Partial, error) {
	if amount.N() == 0 {
		return nil, nil
	}

	ex.mu.Lock()
	if ex.state != ExecutorRunning {
		state := ex.state
		ex.mu.Unlock()
		return nil, &ExecutorError{Cause: fmt.Errorf("executor is %s, not Running", state)}
	}
	workers := ex.workers
	ex.mu.Unlock()

	partition := amount.Partition(len(workers))

	for i, w := range workers {
		indices := partition[i]
		w.cmdCh <- workerCommand[LC]{
			kind: cmdRun,
			run: func(lc LC) (any, error) {
				return mapFn(lc, indices)
			},
		}
	}

	mapped := make([]any, len(workers))
	var mapErrs []error
	for i, w := range workers {
		reply := <-w.replyCh
		if reply.kind == replyErr {
			mapErrs = append(mapErrs, &DomainError{Op: "map", Cause: reply.err})
			continue
		}
		mapped[i] = reply.value
	}
	if err := collectErrors(mapErrs); err != nil {
		return nil, err
	}

	erasedReduce := func(lc LC, a, b any) (any, error) {
		return reduceFn(lc, a.(Partial), b.(Partial))
	}
	result, err := tournamentReduce(workers, mapped, erasedReduce)
	if err != nil {
		return nil, err
	}
	out := result.(Partial)
	return &out, nil
}

// tournamentReduce folds items pairwise until one remains, reusing the
// worker pool round-robin: round k has at most len(workers) pairs, so every
// pair lands on a distinct worker and all reduces in a round run
// concurrently.
func tournamentReduce[LC any](workers []*worker[LC], items []any, reduce func(lc LC, a, b any) (any, error)) (any, error) {
	round := items
	for len(round) > 1 {
		next := make([]any, 0, (len(round)+1)/2)
		type slot struct {
			w   *worker[LC]
			out int
		}
		var pending []slot
		for i := 0; i < len(round); i += 2 {
			if i+1 >= len(round) {
				next = append(next, round[i])
				continue
			}
			w := workers[(i/2)%len(workers)]
			w.cmdCh <- workerCommand[LC]{kind: cmdReduce, reduce: reduce, reduceA: round[i], reduceB: round[i+1]}
			next = append(next, nil)
			pending = append(pending, slot{w: w, out: len(next) - 1})
		}
		var errs []error
		for _, p := range pending {
			reply := <-p.w.replyCh
			if reply.kind == replyErr {
				errs = append(errs, &DomainError{Op: "reduce", Cause: reply.err})
				continue
			}
			next[p.out] = reply.value
		}
		if err := collectErrors(errs); err != nil {
			return nil, err
		}
		round = next
	}
	return round[0], nil
}
