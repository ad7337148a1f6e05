package evostrat

import (
	"io"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Logger is the structured, leveled logger the executor and stages emit
// diagnostics through. It is the interface-typed form of
// logiface.Logger, so any logiface backend (zerolog, logrus, stumpy, slog)
// may be plugged in by a caller that constructs its own, bypassing NewLogger.
type Logger = *logiface.Logger[logiface.Event]

// NewLogger builds a Logger backed by zerolog, writing to w at the given
// level, for passing to WithLogger (the Executor's default is NopLogger);
// callers who already run a logiface-based logging stack can construct
// their own Logger and pass that via WithLogger instead.
func NewLogger(w io.Writer, level logiface.Level) Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return izerolog.L.New(
		izerolog.L.WithZerolog(zl),
		izerolog.L.WithLevel(level),
	).Logger()
}

// NopLogger returns a Logger that discards everything. This is the default
// for a new Executor, following this module family's "silent unless asked"
// convention (see eventloop.NewNoOpLogger).
func NopLogger() Logger {
	return logiface.New[logiface.Event]()
}

// logWorkerEvent is a small helper keeping the worker-lifecycle log lines
// (idle/busy/quit) consistent across worker.go's command loop.
func logWorkerEvent(log Logger, worker int, event string) {
	log.Debug().Int("worker", worker).Str("event", event).Log("worker lifecycle")
}

// logJobError is called once per collected map/reduce failure, never
// silently dropping one (spec.md §7).
func logJobError(log Logger, worker int, phase string, err error) {
	log.Err().Int("worker", worker).Str("phase", phase).Err(err).Log("job error")
}
