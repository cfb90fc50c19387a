// Package recurse implements the KooN recursive decomposition (spec §4.8):
// given n component positions (a prefix of the caller's full row set) and
// a threshold k, compute the K-out-of-N reliability at one time index by
// pivoting on the highest-indexed remaining component(s) and reducing to
// smaller sub-problems, bottoming out at the Series/Parallel closed forms.
package recurse

import (
	"github.com/katalvlaran/rbd/arena"
	"github.com/katalvlaran/rbd/combin"
	"github.com/katalvlaran/rbd/kernel"
)

// Reliability computes R_{n,k} at time index t over rows[0:n] (spec §4.8).
// a is the calling worker's scratch arena, reused across the whole batch.
//
// Terminals: k<=0 (trivially satisfied) returns 1.0; k>n (impossible)
// returns 0.0; k==n reduces to Series; k==1 reduces to Parallel.
// Otherwise the sub-problem is decomposed by pivoting on the best=
// min(k-1,n-k) highest-indexed components (single-pivot when best<=1,
// multi-pivot otherwise).
//
// Complexity: bounded by the multi-pivot expansion, O(2^best * best) per
// call, with best <= n/2; see spec §4.8's Rationale.
func Reliability(rows [][]float64, t, n, k int, a *arena.Arena) float64 {
	return reliability(rows, t, n, k, 0, a)
}

// reliability is Reliability with an explicit recursion depth, used to pick
// a disjoint scratch frame out of the arena for each level of pivoting.
func reliability(rows [][]float64, t, n, k, depth int, a *arena.Arena) float64 {
	if k <= 0 {
		return 1.0
	}
	if k > n {
		return 0.0
	}
	if k == n {
		return kernel.Series(rows[:n], t)
	}
	if k == 1 {
		return kernel.Parallel(rows[:n], t)
	}

	best := k - 1
	if n-k < best {
		best = n - k
	}

	if best <= 1 {
		return singlePivot(rows, t, n, k, depth, a)
	}

	return multiPivot(rows, t, n, k, best, depth, a)
}

// singlePivot pivots on component n-1:
// R_{n,k} = r_{n-1}*R_{n-1,k-1} + (1-r_{n-1})*R_{n-1,k}.
func singlePivot(rows [][]float64, t, n, k, depth int, a *arena.Arena) float64 {
	r := rows[n-1][t]

	return r*reliability(rows, t, n-1, k-1, depth+1, a) + (1-r)*reliability(rows, t, n-1, k, depth+1, a)
}

// multiPivot pivots on the m = best highest-indexed components (the pivot
// block), expanding over "exactly j of the pivot block are working" for
// j in [0,m] and feeding each term into a reduced recursive call on the
// remaining n-m components (spec §4.8).
//
// P(j) for j in [1, ceil(m/2)) is computed together with its symmetric
// counterpart P(m-j): a single enumeration of the C(m,j) size-j subsets
// of the pivot block yields both, since a subset chosen to work at size j
// is simultaneously the complement of a subset chosen to fail at size
// m-j. The j=0 and j=m terms (fully failed / fully working pivot) are
// computed directly, without enumeration. When m is even, j=m/2 is
// handled once outside the halving loop.
func multiPivot(rows [][]float64, t, n, k, m, depth int, a *arena.Arena) float64 {
	pivotStart := n - m

	pivot, p, marked := a.Frame(depth, m) // pivot, P(j) for j in [0,m], subset marker

	for i := 0; i < m; i++ {
		pivot[i] = rows[pivotStart+i][t]
	}

	// j=0: pivot fully failed.
	p[0] = 1.0
	for i := 0; i < m; i++ {
		p[0] *= 1 - pivot[i]
	}
	// j=m: pivot fully working.
	p[m] = 1.0
	for i := 0; i < m; i++ {
		p[m] *= pivot[i]
	}

	// P(1)..P(m-1) are accumulated below; the frame is reused across calls,
	// so clear them first.
	for j := 1; j < m; j++ {
		p[j] = 0
	}

	half := (m + 1) / 2 // ceil(m/2)
	var combo []uint8
	for j := 1; j < half; j++ {
		combo = a.Combo(j)
		combin.FirstCombination(j, combo)
		for {
			termJ, termMJ := pivotTerms(pivot, combo, marked)
			p[j] += termJ
			p[m-j] += termMJ
			if !combin.NextCombination(m, j, combo) {
				break
			}
		}
	}
	if m%2 == 0 {
		j := m / 2
		combo = a.Combo(j)
		combin.FirstCombination(j, combo)
		for {
			termJ, _ := pivotTerms(pivot, combo, marked)
			p[j] += termJ
			if !combin.NextCombination(m, j, combo) {
				break
			}
		}
	}

	result := 0.0
	for j := 0; j <= m; j++ {
		if p[j] == 0 {
			continue
		}
		result += p[j] * reliability(rows, t, n-m, k-j, depth+1, a)
	}

	return result
}

// pivotTerms computes, for one size-j subset "combo" of the pivot block,
// the term contributing to P(j) (combo works, rest fails) and the term
// contributing to P(m-j) (combo fails, rest works). marked is a reusable
// scratch buffer of length m, cleared and rewritten by this call.
func pivotTerms(pivot []float64, combo []uint8, marked []bool) (termJ, termMJ float64) {
	for i := range marked {
		marked[i] = false
	}
	for _, idx := range combo {
		marked[idx] = true
	}

	termJ, termMJ = 1.0, 1.0
	for i, r := range pivot {
		if marked[i] {
			termJ *= r
			termMJ *= 1 - r
		} else {
			termJ *= 1 - r
			termMJ *= r
		}
	}

	return termJ, termMJ
}
