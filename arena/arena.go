// Package arena implements the per-worker scratch arena the KooN recursive
// decomposition uses to avoid reallocating its combination-index buffer and
// its per-level pivot-decomposition buffers on every recursive call inside
// a worker's hot loop.
//
// Lifecycle: allocated once on worker entry, used exclusively by that
// worker for the duration of its batch, and dropped (GC-reclaimed) on
// exit — there is no manual release step in a Go rewrite, but callers
// must still treat an Arena as worker-local and never share one across
// goroutines.
package arena

import "math"

// maxComponents mirrors the block descriptor's N limit (spec §3: N fits a
// single byte), bounding every scratch buffer below.
const maxComponents = math.MaxUint8 + 1

// frame holds one recursion level's pivot-decomposition scratch: the pivot
// block's reliabilities, the P(j) accumulator, and the subset-marker buffer
// multiPivot rebuilds on every call. Each field is pre-sized to
// maxComponents so a frame never needs to grow once allocated.
type frame struct {
	pivot  []float64
	p      []float64
	marked []bool
}

// Arena is a thread-local scratch buffer for one worker's KooN recursion.
// combo holds the current lexicographic combination's index state, reused
// across every pivot-subset enumeration within and across recursive calls.
// frames holds one entry per recursion depth reached so far; since the
// recursion tree shape for a given (n,k) pair is identical across every
// time index a worker evaluates, frames only grows during the first time
// instant a worker processes and is reused, allocation-free, for every
// instant after that.
type Arena struct {
	combo  []uint8
	frames []frame
}

// New allocates a zeroed Arena sized for the engine's component-count
// ceiling. Complexity: O(maxComponents) time and space, once per worker.
func New() *Arena {
	return &Arena{combo: make([]uint8, maxComponents)}
}

// Combo returns the combination-index scratch buffer, truncated to length
// k. Callers overwrite it via combin.FirstCombination/NextCombination.
func (a *Arena) Combo(k int) []uint8 {
	return a.combo[:k]
}

// Frame returns the pivot/P(j)/marked scratch buffers for one multiPivot
// call at the given recursion depth, each truncated to the call's pivot
// block size m. Depth must be the caller's distance from the top-level
// Reliability call (0 at the top); a frame is allocated the first time a
// given depth is requested and reused on every later call at that depth.
//
// Distinct recursion depths never alias: a depth's p[] buffer is only read
// after its full P(j) table is built and before that depth's own deeper
// recursive calls overwrite anything, and each deeper call gets its own
// depth's frame.
func (a *Arena) Frame(depth, m int) (pivot, p []float64, marked []bool) {
	for len(a.frames) <= depth {
		a.frames = append(a.frames, frame{
			pivot:  make([]float64, maxComponents),
			p:      make([]float64, maxComponents+1),
			marked: make([]bool, maxComponents),
		})
	}
	f := &a.frames[depth]

	return f.pivot[:m], f.p[:m+1], f.marked[:m]
}

// Reset zeroes the arena for reuse across batches within the same worker.
// Complexity: O(maxComponents) for combo; frame contents are always fully
// overwritten before use and need no clearing.
func (a *Arena) Reset() {
	for i := range a.combo {
		a.combo[i] = 0
	}
}
