// Package rbd evaluates Reliability Block Diagrams over a time grid of
// per-component reliabilities.
//
// Four topologies are supported:
//
//	Series   — works iff every component works
//	Parallel — works iff at least one component works
//	Bridge   — fixed 5-node bridge network
//	KooN     — works iff at least K of N components work
//
// Each entry point takes a matrix.Matrix of shape N×T (or 1×T to select the
// identical-component closed form) and returns a []float64 of length T.
// Evaluation is dispatched across stride-partitioned worker goroutines; see
// the combin, kernel, recurse, arena, cpufeature and dispatch subpackages
// for the combinatorics, per-time-instant formulas, KooN recursion, worker
// scratch, CPU-feature selection and stride/tail-descent scheduling that
// back the four entry points.
//
//	go get github.com/katalvlaran/rbd
package rbd
