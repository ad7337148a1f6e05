package evostrat

import "errors"

// Error kinds form a closed taxonomy (spec.md §7): failures are classified
// by what went wrong, not merely wrapped in ad-hoc fmt.Errorf chains. Each
// kind is its own type, following this module family's own idiom (see
// eventloop.TypeError / RangeError / TimeoutError in the teacher repo).

type (
	// SetError wraps a failure from a Set operation (Get out of range,
	// Add rejected, iteration failed).
	SetError struct {
		Op    string
		Cause error
	}

	// SetManagerError wraps a failure allocating or reserving a Set.
	SetManagerError struct {
		Op    string
		Cause error
	}

	// DomainError wraps a failure from host-supplied code: IndividualManager
	// generation or fitness evaluation, and, with Op "map" or "reduce",
	// any failure a TryExecuteJob map or reduce function returns.
	DomainError struct {
		Op    string
		Cause error
	}

	// WorkerStartError indicates a worker's LocalContextBuilder call failed
	// during StartExecutor.
	WorkerStartError struct {
		Worker int
		Cause  error
	}

	// UnexpectedProtocolError indicates a worker sent a reply that did not
	// match the command it was last issued. This is always a programming
	// mistake in the engine, never a user error, and is fatal to the
	// Executor: it must be discarded afterward.
	UnexpectedProtocolError struct {
		Worker   int
		Expected string
		Got      string
	}

	// EmptyResultError indicates a job was requested with a work amount of
	// zero, or with zero workers; no workers were dispatched.
	EmptyResultError struct{}

	// SeveralError aggregates two or more worker failures collected from a
	// single job. A job with exactly one failing worker returns that error
	// unwrapped instead of a SeveralError of length one.
	SeveralError struct {
		Errors []error
	}

	// ExecutorError wraps the outcome of a stage's call into the executor,
	// distinguishing engine-level failures from the stage's own domain
	// errors (SetError/SetManagerError/DomainError, individually or
	// aggregated via SeveralError).
	ExecutorError struct {
		Cause error
	}
)

func (e *SetError) Error() string {
	if e.Op == "" {
		return "evostrat: set: " + e.Cause.Error()
	}
	return "evostrat: set: " + e.Op + ": " + e.Cause.Error()
}

func (e *SetError) Unwrap() error { return e.Cause }

func (e *SetManagerError) Error() string {
	if e.Op == "" {
		return "evostrat: set manager: " + e.Cause.Error()
	}
	return "evostrat: set manager: " + e.Op + ": " + e.Cause.Error()
}

func (e *SetManagerError) Unwrap() error { return e.Cause }

func (e *DomainError) Error() string {
	if e.Op == "" {
		return "evostrat: domain: " + e.Cause.Error()
	}
	return "evostrat: domain: " + e.Op + ": " + e.Cause.Error()
}

func (e *DomainError) Unwrap() error { return e.Cause }

func (e *WorkerStartError) Error() string {
	return "evostrat: worker start failed: " + e.Cause.Error()
}

func (e *WorkerStartError) Unwrap() error { return e.Cause }

func (e *UnexpectedProtocolError) Error() string {
	return "evostrat: unexpected reply from worker (bug): expected " + e.Expected + ", got " + e.Got
}

func (e *EmptyResultError) Error() string {
	return "evostrat: empty result: zero work amount or zero workers"
}

// Unwrap returns every collected error, enabling errors.Is/errors.As to see
// through a SeveralError (Go 1.20+ multi-error unwrap), matching
// eventloop.AggregateError.Unwrap.
func (e *SeveralError) Unwrap() []error { return e.Errors }

func (e *SeveralError) Error() string {
	if len(e.Errors) == 0 {
		return "evostrat: several errors (none recorded)"
	}
	s := "evostrat: several errors: " + e.Errors[0].Error()
	for _, err := range e.Errors[1:] {
		s += "; " + err.Error()
	}
	return s
}

// Is reports true for any target that is itself a *SeveralError, mirroring
// eventloop.AggregateError.Is, in addition to the default Unwrap-driven
// matching against each contained error.
func (e *SeveralError) Is(target error) bool {
	var several *SeveralError
	return errors.As(target, &several)
}

func (e *ExecutorError) Error() string {
	return "evostrat: executor: " + e.Cause.Error()
}

func (e *ExecutorError) Unwrap() error { return e.Cause }

// collectErrors implements spec.md §7's aggregation rule: zero errors
// returns nil, exactly one is returned unwrapped, two or more are wrapped
// in a *SeveralError. Never drops an error silently.
func collectErrors(errs []error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return &SeveralError{Errors: nonNil}
	}
}
