// Package combin implements lexicographic k-subset enumeration over [0,n)
// and the materialized-combinations / binomial tables the KooN evaluation
// path builds once per call and shares read-only across workers.
//
// Rationale:
//  1. FirstCombination/NextCombination implement the classic lexicographic
//     successor algorithm in place, with no allocation, so the recursive
//     decomposition can enumerate a pivot block's subsets without touching
//     the heap on the hot path.
//  2. Table materializes a full enumeration once, up front, for the
//     generic (non-recursive) KooN path, which needs random access to all
//     C(n,k) subsets rather than a one-at-a-time cursor.
//  3. BinomialTable precomputes C(N,i) for i in [K,N] once per identical-
//     KooN call; those values are reused by every time-index evaluation.
//
// Complexity:
//   - NextCombination: O(k) worst case, amortized O(1).
//   - Table: O(C(n,k) * k) time and space.
//   - BinomialTable: O((N-K) * N) time, O(N-K) space.
package combin

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidParams is returned when n or k fall outside their valid domain
// (k > n, or either negative) for a combinatorics operation.
var ErrInvalidParams = errors.New("combin: invalid n/k")

// ErrSizeOverflow is returned when C(n,k)*k plus table overhead would not
// fit a platform int, matching the structural-failure taxonomy of the
// evaluation engine: this aborts the call before dispatch.
var ErrSizeOverflow = errors.New("combin: combination table size overflow")

func combinErrorf(op string, err error) error {
	return fmt.Errorf("combin.%s: %w", op, err)
}

// FirstCombination writes 0, 1, ..., k-1 into the first k entries of out.
// out must have length >= k; the caller owns sizing and reuse.
// Complexity: O(k).
func FirstCombination(k int, out []uint8) {
	for i := 0; i < k; i++ {
		out[i] = uint8(i)
	}
}

// NextCombination advances state (a length-k slice of strictly increasing
// indices into [0,n)) to the next k-subset in lexicographic order.
// Returns false once the last combination has been passed (Done); state is
// left unspecified in that case.
//
// Algorithm (spec-mandated): let i = k-1; increment state[i]; if now < n,
// fast path. Otherwise walk i leftward while state[i] >= n+i-k; if i drops
// below 0, Done. Else increment state[i] and re-base state[i+1:k].
// Complexity: O(k) worst case, amortized O(1) over a full enumeration.
func NextCombination(n, k int, state []uint8) bool {
	if k == 0 {
		return false
	}
	i := k - 1
	state[i]++
	if int(state[i]) < n {
		return true
	}
	for int(state[i]) >= n+i-k {
		i--
		if i < 0 {
			return false
		}
	}
	state[i]++
	for j := i + 1; j < k; j++ {
		state[j] = state[j-1] + 1
	}

	return true
}

// Binomial computes C(n,k) as a uint64, returning ErrInvalidParams for
// k>n or negative inputs, and ErrSizeOverflow if the exact result would
// not fit a uint64.
// Complexity: O(k).
func Binomial(n, k int) (uint64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, combinErrorf("Binomial", ErrInvalidParams)
	}
	if k == 0 || k == n {
		return 1, nil
	}
	if k > n-k {
		k = n - k // C(n,k) == C(n,n-k); shrink the loop
	}

	var result uint64 = 1
	for i := 0; i < k; i++ {
		// result*(n-i) is taken at 128 bits; the quotient C(n,i+1) fits a
		// uint64 exactly when the high word is below the divisor.
		hi, lo := bits.Mul64(result, uint64(n-i))
		if hi >= uint64(i+1) {
			return 0, combinErrorf("Binomial", ErrSizeOverflow)
		}
		result, _ = bits.Div64(hi, lo, uint64(i+1))
	}

	return result, nil
}

// Table is a materialized set of C(n,k) lexicographically ordered,
// strictly increasing k-tuples of indices into [0,n), laid out
// contiguously: Tuples[i*K : (i+1)*K] is the i-th subset.
type Table struct {
	N, K   int
	count  int
	Tuples []uint8
}

// Count returns the number of materialized tuples (C(N,K)).
func (t *Table) Count() int {
	return t.count
}

// At returns the i-th tuple as a read-only window into Tuples.
func (t *Table) At(i int) []uint8 {
	return t.Tuples[i*t.K : (i+1)*t.K]
}

// BuildTable materializes the full lexicographic enumeration of k-subsets
// of [0,n). Fails with ErrInvalidParams on an invalid (n,k) pair, or
// ErrSizeOverflow if C(n,k)*k would not fit a platform int.
// Complexity: O(C(n,k) * k) time and space.
func BuildTable(n, k int) (*Table, error) {
	if n < 0 || k < 0 || k > n {
		return nil, combinErrorf("BuildTable", ErrInvalidParams)
	}

	count, err := Binomial(n, k)
	if err != nil {
		return nil, combinErrorf("BuildTable", err)
	}
	maxInt := uint64(^uint(0) >> 1)
	if k > 0 && count > maxInt/uint64(k) {
		return nil, combinErrorf("BuildTable", ErrSizeOverflow)
	}
	total := count * uint64(k)

	tuples := make([]uint8, total)

	if k == 0 {
		// The single empty tuple (count == 1) carries zero bytes.
		return &Table{N: n, K: k, count: int(count), Tuples: tuples}, nil
	}

	state := make([]uint8, k)
	FirstCombination(k, state)
	copy(tuples[0:k], state)
	idx := k
	written := 1

	for NextCombination(n, k, state) {
		copy(tuples[idx:idx+k], state)
		idx += k
		written++
	}

	return &Table{N: n, K: k, count: written, Tuples: tuples}, nil
}

// BinomialTable holds precomputed C(N,i) for i in [Lo,Hi], indexed as
// Values[i-Lo]. Used by the identical-KooN closed form (spec §4.7), which
// iterates i from high to low.
type BinomialTable struct {
	Lo, Hi int
	Values []uint64
}

// At returns C(N,i) for i in [Lo,Hi].
func (b *BinomialTable) At(i int) uint64 {
	return b.Values[i-b.Lo]
}

// BuildBinomialTable precomputes C(n,i) for every i in [lo,hi].
// Complexity: O((hi-lo) * hi) time (each Binomial call is O(i)), O(hi-lo) space.
func BuildBinomialTable(n, lo, hi int) (*BinomialTable, error) {
	if lo < 0 || hi > n || lo > hi {
		return nil, combinErrorf("BuildBinomialTable", ErrInvalidParams)
	}

	values := make([]uint64, hi-lo+1)
	for i := lo; i <= hi; i++ {
		c, err := Binomial(n, i)
		if err != nil {
			return nil, combinErrorf("BuildBinomialTable", err)
		}
		values[i-lo] = c
	}

	return &BinomialTable{Lo: lo, Hi: hi, Values: values}, nil
}
