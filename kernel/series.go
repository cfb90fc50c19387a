package kernel

// Series computes the Series-block reliability at time index t: the
// product of all rows' reliabilities at t, capped (spec §4.3).
// rows holds one reliability time-series per component.
// Complexity: O(n).
func Series(rows [][]float64, t int) float64 {
	product := 1.0
	for _, row := range rows {
		product *= row[t]
	}

	return Cap(product)
}

// SeriesVec computes w consecutive Series outputs starting at t into out.
// Complexity: O(n*w).
func SeriesVec(rows [][]float64, t, w int, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = Series(rows, t+lane)
	}
}

// SeriesIdentical computes the Series-block reliability at time index t
// when every component shares reliability row row, raised to power n via
// n-1 multiplications (not pow, for numerical parity per spec §4.3).
// Complexity: O(n).
func SeriesIdentical(row []float64, n int, t int) float64 {
	r := row[t]
	product := r
	for i := 1; i < n; i++ {
		product *= r
	}

	return Cap(product)
}

// SeriesIdenticalVec computes w consecutive identical-Series outputs
// starting at t into out. Complexity: O(n*w).
func SeriesIdenticalVec(row []float64, n, t, w int, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = SeriesIdentical(row, n, t+lane)
	}
}
