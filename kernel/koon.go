package kernel

import "github.com/katalvlaran/rbd/combin"

// ipow computes base^exp via repeated multiplication rather than math.Pow,
// for numerical parity with the series/parallel kernels' own n-1-
// multiplication convention (spec §4.3/§4.7).
func ipow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}

// KooNIdentical computes the identical-component KooN closed form at time
// index t: sum_{i=nCi.Lo..nCi.Hi} C(n,i) * r^i * (1-r)^(n-i), capped. nCi
// must be built over [K,N]; iteration runs high to low to match the
// reference's accumulation order (spec §4.7).
// Complexity: O((N-K) * N), since each term's two ipow calls take O(N).
func KooNIdentical(row []float64, n, t int, nCi *combin.BinomialTable) float64 {
	r := row[t]
	result := 0.0
	for i := nCi.Hi; i >= nCi.Lo; i-- {
		result += float64(nCi.At(i)) * ipow(r, i) * ipow(1-r, n-i)
	}

	return Cap(result)
}

// KooNIdenticalVec computes w consecutive KooNIdentical outputs starting
// at t into out. Complexity: O((N-K)*N*w).
func KooNIdenticalVec(row []float64, n, t, w int, nCi *combin.BinomialTable, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = KooNIdentical(row, n, t+lane, nCi)
	}
}

// KooNIdenticalUnreliability computes the complementary identical-KooN
// form: 1 - sum_{i=nC0.Lo..nC0.Hi} C(n,i) * r^i * (1-r)^(n-i), capped.
// nC0 must be built over [0,K-1].
// Complexity: O(K * N).
func KooNIdenticalUnreliability(row []float64, n, t int, nC0 *combin.BinomialTable) float64 {
	r := row[t]
	sum := 0.0
	for i := nC0.Hi; i >= nC0.Lo; i-- {
		sum += float64(nC0.At(i)) * ipow(r, i) * ipow(1-r, n-i)
	}

	return Cap(1 - sum)
}

// koonStep computes the per-combination product for one subset C, where
// markedWorking selects which role "marked" plays: true means the indices
// in combo are the working subset (success formula), false means they are
// the failed subset (fail formula; every index contributes a factor).
// marker is a reusable, caller-owned
// scratch buffer of length n, cleared by this call before use.
func koonStep(rows [][]float64, t int, combo []uint8, marker []bool, markedWorking bool) float64 {
	for i := range marker {
		marker[i] = false
	}
	for _, idx := range combo {
		marker[idx] = true
	}

	// In the success formula combo is read as the K lowest-indexed working
	// components, so indices above its largest entry may work or fail and
	// contribute no factor; this makes the C(N,K) events disjoint and
	// exhaustive for "at least K work".
	limit := len(marker)
	if markedWorking && len(combo) > 0 {
		limit = int(combo[len(combo)-1]) + 1
	}

	step := 1.0
	for i, m := range marker[:limit] {
		working := m == markedWorking
		if working {
			step *= rows[i][t]
		} else {
			step *= 1 - rows[i][t]
		}
	}

	return step
}

// KooNGenericSuccess sums prod_{i in C} r_i * prod_{j not in C, j < max C}
// (1-r_j) over every K-subset C in table, capped (spec §4.6): each term is
// the probability that C is exactly the set of the K lowest-indexed working
// components, so the sum is the probability that at least K work.
// marker is a reusable scratch buffer of length len(rows).
// Complexity: O(C(N,K) * N).
func KooNGenericSuccess(rows [][]float64, t int, table *combin.Table, marker []bool) float64 {
	result := 0.0
	for i := 0; i < table.Count(); i++ {
		result += koonStep(rows, t, table.At(i), marker, true)
	}

	return Cap(result)
}

// KooNGenericSuccessVec computes w consecutive KooNGenericSuccess outputs
// starting at t into out. Complexity: O(C(N,K) * N * w).
func KooNGenericSuccessVec(rows [][]float64, t, w int, table *combin.Table, marker []bool, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = KooNGenericSuccess(rows, t+lane, table, marker)
	}
}

// KooNGenericFail sums prod_{i in C} (1-r_i) * prod_{j not in C} r_j over
// every failed-subset combination C across failTables (one table per
// failure size in [N-K+1, N]), emitting cap(1 - sum) (spec §4.6's
// generic-fail variant). marker is a reusable scratch buffer of length
// len(rows).
// Complexity: O(sum(C(N,j) for j in failure sizes) * N).
func KooNGenericFail(rows [][]float64, t int, failTables []*combin.Table, marker []bool) float64 {
	sum := 0.0
	for _, table := range failTables {
		for i := 0; i < table.Count(); i++ {
			sum += koonStep(rows, t, table.At(i), marker, false)
		}
	}

	return Cap(1 - sum)
}

// KooNGenericFailVec computes w consecutive KooNGenericFail outputs
// starting at t into out.
func KooNGenericFailVec(rows [][]float64, t, w int, failTables []*combin.Table, marker []bool, out []float64) {
	for lane := 0; lane < w; lane++ {
		out[lane] = KooNGenericFail(rows, t+lane, failTables, marker)
	}
}
