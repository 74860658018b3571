package parallel

import (
	"runtime"
	"sync"

	"github.com/gogpu/softge"
)

// MaxWorkers is the hard ceiling on pool size. The ranges the renderer
// splits are small enough that fan-out beyond this point costs more in
// scheduling than it recovers.
const MaxWorkers = 8

// Pool distributes ParallelFor ranges over persistent loop workers.
//
// The pool size is fixed at construction. Workers start lazily on the
// first ParallelFor call that actually dispatches, and live until Close.
//
// Thread safety: Pool is safe for concurrent use. Concurrent ParallelFor
// calls serialize on the pool mutex, so the per-worker job slots are
// never shared between two in-flight loops.
type Pool struct {
	mu         sync.Mutex
	numWorkers int
	workers    []*loopWorker
	started    bool
	closed     bool
	wg         sync.WaitGroup
}

// NewPool creates a pool of numWorkers workers, clamped to [1, MaxWorkers].
// Non-positive requests clamp to 1.
func NewPool(numWorkers int) *Pool {
	clamped := min(max(numWorkers, 1), MaxWorkers)
	if clamped != numWorkers {
		softge.Logger().Warn("parallel: clamped worker count",
			"requested", numWorkers, "workers", clamped)
	}
	return &Pool{numWorkers: clamped}
}

// NumWorkers returns the pool size.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// startWorkers spawns the worker goroutines. The caller holds p.mu.
func (p *Pool) startWorkers() {
	if p.started {
		return
	}
	p.workers = make([]*loopWorker, p.numWorkers)
	for i := range p.workers {
		p.workers[i] = newLoopWorker(&p.wg)
	}
	p.started = true
	softge.Logger().Info("parallel: workers started", "workers", p.numWorkers)
}

// ParallelFor runs loop over the half-open range [lower, upper).
//
// Ranges smaller than twice the worker count run inline on the caller:
// dispatch overhead is not worth paying for them. Larger ranges split
// into numWorkers equal chunks (integer division, remainder folded into
// the last chunk); numWorkers-1 chunks go to the workers and the last
// chunk always runs on the calling goroutine. ParallelFor returns only
// after every chunk has completed, so all side effects of loop are
// visible to the caller.
//
// On a closed pool, loop runs inline; work is never silently dropped.
func (p *Pool) ParallelFor(loop LoopFunc, lower, upper int) {
	if loop == nil {
		return
	}
	rng := upper - lower
	if rng < p.numWorkers*2 {
		loop(lower, upper)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		loop(lower, upper)
		return
	}
	p.startWorkers()

	chunk := rng / p.numWorkers
	s := lower
	for i := 0; i < p.numWorkers-1; i++ {
		p.workers[i].process(loop, s, s+chunk)
		s += chunk
	}
	loop(s, upper)

	// Join in dispatch order. A slow early worker can make later,
	// already-finished ones wait to be observed; chunks are equal-sized
	// so the skew stays small.
	for i := 0; i < p.numWorkers-1; i++ {
		p.workers[i].waitForCompletion()
	}
}

// Close stops the workers and waits for their goroutines to exit. It is
// idempotent. ParallelFor calls after Close run their loop inline.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, w := range p.workers {
		w.stop()
	}
	p.workers = nil
	p.wg.Wait()
}

// defaultPool is the process-wide pool behind the package-level
// ParallelFor: sized to GOMAXPROCS (clamped like any pool), created on
// first use, never torn down.
var (
	defaultPoolOnce sync.Once
	defaultPool     *Pool
)

// ParallelFor runs loop over [lower, upper) on the process-wide default
// pool. See Pool.ParallelFor for the contract.
func ParallelFor(loop LoopFunc, lower, upper int) {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(runtime.GOMAXPROCS(0))
	})
	defaultPool.ParallelFor(loop, lower, upper)
}
