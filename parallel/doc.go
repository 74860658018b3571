// Package parallel distributes index-range work across a small pool of
// persistent worker goroutines.
//
// ParallelFor splits a [lower, upper) range into one equal chunk per
// worker, dispatches all but the last chunk, runs the last chunk on the
// calling goroutine, and returns only after every chunk has completed.
// Small ranges skip the pool and run inline. Workers are persistent: each
// owns a single pending-job slot and sleeps between jobs, so steady-state
// dispatch creates no goroutines.
//
// The rendering pipeline uses the pool to fan out independent
// per-scanline and per-range work; the pool itself knows nothing about
// rendering.
package parallel
