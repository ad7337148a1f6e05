package evostrat

// worker is one goroutine of an Executor[LC]'s pool: build its LocalContext
// once, then service Run/Reduce commands until Quit (spec.md §4.1).
type worker[LC any] struct {
	id      int
	lc      LC
	cmdCh   chan workerCommand[LC]
	replyCh chan workerReply
}

// workerBuilt is sent exactly once per worker, reporting the outcome of
// building that worker's LocalContext.
type workerBuilt struct {
	id  int
	err error
}

func newWorker[LC any](id int) *worker[LC] {
	return &worker[LC]{
		id:      id,
		cmdCh:   make(chan workerCommand[LC], 1),
		replyCh: make(chan workerReply, 1),
	}
}

// run is the worker goroutine's body. It builds lc, reports the outcome on
// built, and - only on success - enters its command loop.
func (w *worker[LC]) run(builder LocalContextBuilder[LC], log Logger, built chan<- workerBuilt) {
	lc, err := builder()
	if err != nil {
		built <- workerBuilt{id: w.id, err: err}
		return
	}
	w.lc = lc
	built <- workerBuilt{id: w.id}
	logWorkerEvent(log, w.id, "idle")

	for cmd := range w.cmdCh {
		switch cmd.kind {
		case cmdRun:
			logWorkerEvent(log, w.id, "busy")
			v, err := cmd.run(w.lc)
			if err != nil {
				logJobError(log, w.id, "map", err)
				w.replyCh <- workerReply{kind: replyErr, err: err}
			} else {
				w.replyCh <- workerReply{kind: replyMapped, value: v}
			}
			logWorkerEvent(log, w.id, "idle")

		case cmdReduce:
			v, err := cmd.reduce(w.lc, cmd.reduceA, cmd.reduceB)
			if err != nil {
				logJobError(log, w.id, "reduce", err)
				w.replyCh <- workerReply{kind: replyErr, err: err}
			} else {
				w.replyCh <- workerReply{kind: replyReduced, value: v}
			}

		case cmdQuit:
			w.replyCh <- workerReply{kind: replyQuitted}
			logWorkerEvent(log, w.id, "quit")
			return
		}
	}
}
