package parallel

import (
	"sync"
	"sync/atomic"
)

// LoopFunc processes the half-open index range [start, end).
type LoopFunc func(start, end int)

// loopWorker is a persistent worker goroutine with a single pending-job
// slot. Submission and completion are two independently locked facts,
// updated at different points, so each gets its own mutex and condition:
//
//   - mu and newJob guard the job slot (fn, start, end), the alive flag
//     and jobsTarget. The worker holds mu while running a job, so a new
//     submission blocks until the slot is free again.
//   - doneMu and jobDone guard completion signalling on jobsDone.
//
// The counters only grow and jobsDone <= jobsTarget always holds:
// submission bumps jobsTarget, completion bumps jobsDone, and they are
// equal exactly when the worker is idle. They are atomics because each
// side reads the counter the other side's mutex guards.
type loopWorker struct {
	mu     sync.Mutex
	newJob *sync.Cond
	fn     LoopFunc
	start  int
	end    int
	alive  bool

	doneMu  sync.Mutex
	jobDone *sync.Cond

	jobsTarget atomic.Uint64
	jobsDone   atomic.Uint64
}

// newLoopWorker creates a worker and spawns its goroutine. wg is released
// when the goroutine exits.
func newLoopWorker(wg *sync.WaitGroup) *loopWorker {
	w := &loopWorker{alive: true}
	w.newJob = sync.NewCond(&w.mu)
	w.jobDone = sync.NewCond(&w.doneMu)
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.run()
	}()
	return w
}

// run is the worker loop: sleep until a job or a stop request arrives,
// run the job, publish completion, repeat. A stop wakeup wins over a
// concurrently submitted job: the worker exits without running it.
func (w *loopWorker) run() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		for w.alive && w.jobsTarget.Load() <= w.jobsDone.Load() {
			w.newJob.Wait()
		}
		if !w.alive {
			return
		}
		w.fn(w.start, w.end)

		w.doneMu.Lock()
		w.jobsDone.Add(1)
		w.jobDone.Signal()
		w.doneMu.Unlock()
	}
}

// process hands the worker a job. It blocks while the previous job is
// still running, preserving the one-job-in-flight invariant.
func (w *loopWorker) process(fn LoopFunc, start, end int) {
	w.mu.Lock()
	w.fn = fn
	w.start = start
	w.end = end
	w.jobsTarget.Store(w.jobsDone.Load() + 1)
	w.newJob.Signal()
	w.mu.Unlock()
}

// waitForCompletion blocks until every job submitted so far has finished.
func (w *loopWorker) waitForCompletion() {
	w.doneMu.Lock()
	for w.jobsDone.Load() < w.jobsTarget.Load() {
		w.jobDone.Wait()
	}
	w.doneMu.Unlock()
}

// stop makes the worker exit. A job submitted concurrently with the stop
// is abandoned: the stop flag is checked before the job slot.
func (w *loopWorker) stop() {
	w.mu.Lock()
	w.alive = false
	w.newJob.Signal()
	w.mu.Unlock()
}
