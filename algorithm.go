package evostrat

// shellResultKind distinguishes ShellResult's two variants.
type shellResultKind int

const (
	shellOK shellResultKind = iota
	shellFailed
)

// ShellResult is Run's return value: either a surviving population of
// min(mu, lambda) individuals, or the error that ended the generation (supplementing the original
// source's plain RunResult with a small sum type, since Go has no Result
// enum of its own).
type ShellResult[S any] struct {
	kind       shellResultKind
	population S
	err        error
}

// OK reports whether Run succeeded. When it did, Population returns the
// surviving population.
func (r ShellResult[S]) OK() bool { return r.kind == shellOK }

// Population returns the surviving population and true on success, or the
// zero value and false on failure.
func (r ShellResult[S]) Population() (S, bool) {
	return r.population, r.kind == shellOK
}

// Err returns the failure, or nil on success.
func (r ShellResult[S]) Err() error { return r.err }

func shellOf[S any](population S) ShellResult[S] {
	return ShellResult[S]{kind: shellOK, population: population}
}

func shellFailureOf[S any](err error) ShellResult[S] {
	return ShellResult[S]{kind: shellFailed, err: err}
}

// Shell runs the (mu, lambda) evolution-strategy skeleton on top of an
// Executor: build a lambda-sized population, score it, sort it by fitness,
// then keep the best mu (spec.md §5, equivalent to
// src/algo/mu_comma_lambda.rs). Domain-specific operators (crossover,
// mutation, the outer generation loop across many Shell.Run calls) are the
// caller's concern; Shell only runs one generation's init/fit/sort and
// owns the Executor's lifecycle for that one run.
type Shell[LC any] struct {
	executor *Executor[LC]
}

// NewShell wraps an already-started Executor. The Shell takes ownership of
// the Executor's lifecycle: Run always stops it before returning, on every
// exit path, success or failure.
func NewShell[LC any](executor *Executor[LC]) *Shell[LC] {
	return &Shell[LC]{executor: executor}
}

// Run executes one (mu, lambda) generation: InitPopulation(lambda),
// EvaluateFitness, SortByPredicate(less), then truncates to the best mu
// individuals. less should order "better first" (ascending by a fitness
// where lower is better, or reversed for higher-is-better), since the
// first mu entries of the sorted result become the survivors. The
// Executor is stopped before Run returns on every path, and a Stop
// failure is folded into the returned error via the Several rule
// (spec.md §7) alongside any job error.
func Run[
	LC interface {
		IndividualManagerAccessor[IndividualManager[T]]
		FitsManagerAccessor[FitsManager[T, F]]
		SortManagerAccessor[SortManager[Scored[F]]]
	},
	PopSet Set[T],
	ScoreSet Set[Scored[F]],
	T, F any,
](
	sh *Shell[LC],
	popManager SetManager[PopSet],
	scoreManager SetManager[ScoreSet],
	mu, lambda int,
	less func(a, b Scored[F]) bool,
) ShellResult[PopSet] {
	fail := func(cause error) ShellResult[PopSet] {
		if stopErr := sh.executor.Stop(); stopErr != nil {
			cause = collectErrors([]error{cause, &ExecutorError{Cause: stopErr}})
		}
		return shellFailureOf[PopSet](cause)
	}

	population, err := InitPopulation[LC, PopSet, T](sh.executor, popManager, lambda)
	if err != nil {
		return fail(err)
	}

	individuals, err := drain[T](population)
	if err != nil {
		return fail(err)
	}

	scored, err := EvaluateFitness[LC, ScoreSet, T, F](sh.executor, scoreManager, individuals)
	if err != nil {
		return fail(err)
	}

	sorted, err := SortByPredicate[LC, ScoreSet, Scored[F]](sh.executor, scoreManager, scored, less)
	if err != nil {
		return fail(err)
	}

	ranked, err := drain[Scored[F]](sorted)
	if err != nil {
		return fail(err)
	}
	if mu > len(ranked) {
		mu = len(ranked)
	}

	survivors, err := popManager.MakeSet(mu)
	if err != nil {
		return fail(&SetManagerError{Op: "make_set", Cause: err})
	}
	for _, s := range ranked[:mu] {
		if err := survivors.Add(individuals[s.Index]); err != nil {
			return fail(&SetError{Op: "add", Cause: err})
		}
	}

	if err := sh.executor.Stop(); err != nil {
		return shellFailureOf[PopSet](&ExecutorError{Cause: err})
	}
	return shellOf(survivors)
}
