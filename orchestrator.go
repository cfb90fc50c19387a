package rbd

import (
	"os"
	"runtime"
	"strconv"

	"github.com/katalvlaran/rbd/cpufeature"
	"github.com/katalvlaran/rbd/dispatch"
	"golang.org/x/sync/errgroup"
)

// minBatch is the smallest time-grid slice worth handing to its own
// goroutine; below this, a single worker processes the whole call (spec
// §4.10).
const minBatch = 10000

// workerCount derives how many goroutines to dispatch for a T-length call:
// available CPUs, optionally capped by RBD_MAX_WORKERS, further capped at
// ceil(T/minBatch), one worker per started minBatch-sized slice of the grid.
func workerCount(t int) int {
	avail := runtime.NumCPU()
	if raw := os.Getenv("RBD_MAX_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < avail {
			avail = n
		}
	}

	byWork := (t + minBatch - 1) / minBatch
	if byWork < 1 {
		byWork = 1
	}
	if byWork < avail {
		avail = byWork
	}

	return avail
}

// runWorkers dispatches `workers` goroutines, each covering its stride-
// selected share of [0,T), joined by an errgroup barrier (spec §5).
// makeFuncs is invoked once per worker so that workers needing mutable
// scratch (a combin marker buffer, a recurse arena) each get their own,
// never sharing state across goroutines.
func runWorkers(out []float64, t, workers int, makeFuncs func() dispatch.StepFuncs) error {
	wMax := cpufeature.Select()
	var g errgroup.Group
	for idx := 0; idx < workers; idx++ {
		idx := idx
		g.Go(func() error {
			dispatch.Run(out, dispatch.Batch{Index: idx, WorkerCount: workers, T: t}, wMax, makeFuncs())

			return nil
		})
	}

	return g.Wait()
}

// fillWorkers dispatches `workers` fill-goroutines writing the constant c
// across [0,T), used for the degenerate KooN cases K=0 and K>N (spec §4.10).
func fillWorkers(out []float64, t, workers int, c float64) error {
	var g errgroup.Group
	for idx := 0; idx < workers; idx++ {
		idx := idx
		g.Go(func() error {
			dispatch.Fill(out, dispatch.Batch{Index: idx, WorkerCount: workers, T: t}, c)

			return nil
		})
	}

	return g.Wait()
}

// vecFromScalar adapts a scalar step function into a vector one by looping
// lanes, for kernels (like the recursive KooN path) with no hand-unrolled
// vector form.
func vecFromScalar(scalar func(int) float64) func(t, w int, out []float64) {
	return func(t, w int, out []float64) {
		for lane := 0; lane < w; lane++ {
			out[lane] = scalar(t + lane)
		}
	}
}
