package kernel

// Parallel computes the Parallel-block reliability at time index t:
// 1 - product of all rows' unreliabilities at t, capped (spec §4.4).
// Complexity: O(n).
func Parallel(rows [][]float64, t int) float64 {
	productOfFailures := 1.0
	for _, row := range rows {
		productOfFailures *= 1 - row[t]
	}

	return Cap(1 - productOfFailures)
}

// ParallelVec computes w consecutive Parallel outputs starting at t into out.
// Complexity: O(n*w).
func ParallelVec(rows [][]float64, t, w int, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = Parallel(rows, t+lane)
	}
}

// ParallelIdentical computes 1 - (1-r)^n for the identical-component path
// (spec §4.4), via n-1 multiplications.
// Complexity: O(n).
func ParallelIdentical(row []float64, n int, t int) float64 {
	f := 1 - row[t]
	productOfFailures := f
	for i := 1; i < n; i++ {
		productOfFailures *= f
	}

	return Cap(1 - productOfFailures)
}

// ParallelIdenticalVec computes w consecutive identical-Parallel outputs
// starting at t into out. Complexity: O(n*w).
func ParallelIdenticalVec(row []float64, n, t, w int, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = ParallelIdentical(row, n, t+lane)
	}
}
