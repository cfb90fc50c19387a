// Package kernel implements the evaluation engine's step functions: the
// per-time-index formulas for Series, Parallel, Bridge, and KooN blocks,
// each in a scalar form and a width-parameterized vector form (spec §4.2
// –§4.7). Vector forms are software-unrolled loops over the scalar
// formula rather than true SIMD intrinsics — spec §9's own design note
// sanctions collapsing the reference's per-width, per-instruction-set
// kernel explosion into one generic kernel parameterized over width,
// which is what these vector functions do.
//
// Kernels never allocate and never return an error. Inputs are read as
// given, without clamping or validation; every output passes through Cap
// before being stored, so NaN or out-of-range inputs still yield a value
// in [0,1].
package kernel

// Cap clamps x into [0,1], mapping NaN to 0 (spec §4.2).
func Cap(x float64) float64 {
	if x != x || x < 0 { // x != x is the idiomatic Go NaN test
		return 0.0
	}
	if x > 1 {
		return 1.0
	}

	return x
}
