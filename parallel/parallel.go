// Package parallel runs simple precompute workloads across workers.
//
// Simple means no synchronization between workers: the task space [0, total)
// is split into contiguous identifier ranges, one per worker, and each worker
// touches only its own range and its own state. Workloads that allocate
// (graph labelling, node expansion) should construct one memory.Pool per
// worker inside the callback and never share it.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range describes one worker's share of the task space.
// Identifiers [First, Last) belong to this worker exclusively.
type Range struct {
	Worker  int
	Workers int
	First   uint32
	Last    uint32
}

// RangeFunc processes one worker's range. It runs on its own goroutine and
// must not share mutable state with other workers.
type RangeFunc func(ctx context.Context, r Range) error

// Compute splits [0, total) into contiguous ranges and runs fn once per
// worker. workers <= 0 means one worker per CPU. The first error cancels the
// shared context and is returned after all workers finish.
func Compute(ctx context.Context, total uint32, workers int, fn RangeFunc) error {
	if total == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if uint32(workers) > total {
		workers = int(total)
	}

	step := total / uint32(workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		r := Range{
			Worker:  w,
			Workers: workers,
			First:   uint32(w) * step,
			Last:    uint32(w+1) * step,
		}
		// The remainder goes to the last worker.
		if w == workers-1 {
			r.Last = total
		}
		g.Go(func() error {
			return fn(ctx, r)
		})
	}
	return g.Wait()
}
