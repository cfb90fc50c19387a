// Package dispatch implements the per-topology worker procedure: given a
// batch descriptor, stride across the time axis selecting the widest step
// whose block fits, descend through narrower widths for the remainder,
// and fall back to scalar for the tail (spec §4.9).
package dispatch

import (
	"unsafe"

	"github.com/katalvlaran/rbd/cpufeature"
)

// StepFuncs bundles the scalar and vector step callables for one topology
// call. Vec computes w consecutive outputs starting at t into out; Scalar
// computes a single output at t. IdenticalPath marks whether the alignment
// prologue (spec §4.9) applies: true for identical-component kernels,
// false for generic kernels (which load multiple rows and tolerate
// unaligned access internally).
type StepFuncs struct {
	Scalar        func(t int) float64
	Vec           func(t, w int, out []float64)
	IdenticalPath bool
	// Row, when IdenticalPath is true, is the single reliability row the
	// kernel reads — used only to probe byte alignment for the prologue.
	Row []float64
}

// Batch describes one worker's share of a call (spec §3's Block descriptor
// restricted to the dispatch-relevant fields).
type Batch struct {
	Index       int // batch_index: this worker's stride offset
	WorkerCount int
	T           int
}

// Run executes one worker's stride loop over [0,T), writing into out
// (length T; only this worker's disjoint index subset is touched).
// wMax is the widest vector width this worker was selected to run at
// (spec §4.9 step 2-4; identical paths additionally run the alignment
// prologue of step 4's final paragraph).
func Run(out []float64, b Batch, wMax cpufeature.Width, funcs StepFuncs) {
	t := b.Index * int(wMax)

	if funcs.IdenticalPath && wMax > cpufeature.Scalar {
		// &Row[Index*wMax] lies the same distance from a wMax*8 boundary as
		// &Row[0], so every worker shifts by the same gap. Only worker 0
		// writes the gap's indices; any other worker's would fall inside the
		// previous worker's first strided block.
		t = alignmentPrologue(out, t, b.T, wMax, funcs, b.Index == 0)
	}

	stride := b.WorkerCount * int(wMax)
	buf := make([]float64, wMax)
	for t+int(wMax) <= b.T {
		funcs.Vec(t, int(wMax), buf)
		copy(out[t:t+int(wMax)], buf)
		t += stride
	}

	for w := cpufeature.Narrower(wMax); w > cpufeature.Scalar; w = cpufeature.Narrower(w) {
		if t+int(w) <= b.T {
			tailBuf := make([]float64, w)
			funcs.Vec(t, int(w), tailBuf)
			copy(out[t:t+int(w)], tailBuf)
			t += int(w)
		}
	}

	if t < b.T {
		out[t] = funcs.Scalar(t)
	}
}

// alignmentPrologue runs scalar steps until &Row[t] lands on a wMax*8-byte
// boundary (or T is exhausted), matching spec §4.9's identical-path
// realignment rule in a simplified, always-scalar form: the original
// reference descends through intermediate widths to close the gap; a
// sequence of scalar steps closes the same, at-most-(wMax-1)-element gap
// with one step function instead of several, which is semantically
// equivalent since every scalar step already writes the cap-clamped
// final value. When write is false the gap is skipped without computing or
// storing its outputs.
func alignmentPrologue(out []float64, t, limit int, wMax cpufeature.Width, funcs StepFuncs, write bool) int {
	boundary := uintptr(wMax) * 8
	for t < limit && len(funcs.Row) > t {
		addr := uintptr(unsafe.Pointer(&funcs.Row[t]))
		if addr%boundary == 0 {
			break
		}
		if write {
			out[t] = funcs.Scalar(t)
		}
		t++
	}

	return t
}

// Fill writes the constant value c into out[t] for every index t this
// worker owns under the stride schedule, used for the degenerate KooN
// cases K=0 (c=1.0) and K>N (c=0.0) (spec §4.10).
func Fill(out []float64, b Batch, c float64) {
	for t := b.Index; t < b.T; t += b.WorkerCount {
		out[t] = c
	}
}
