package rbd

import (
	"fmt"

	"github.com/katalvlaran/rbd/arena"
	"github.com/katalvlaran/rbd/combin"
	"github.com/katalvlaran/rbd/dispatch"
	"github.com/katalvlaran/rbd/kernel"
	"github.com/katalvlaran/rbd/matrix"
	"github.com/katalvlaran/rbd/recurse"
)

// Series evaluates the series topology: the system works at time t only if
// every one of n components works. r must have n rows (or exactly 1 row,
// selecting the identical-component closed form r(t)^n) and t columns.
// Complexity: O(n*T/workers) per worker, O(n*T) total.
func Series(r matrix.Matrix, n uint8, t uint32) ([]float64, error) {
	rows, identical, err := validateTopology(r, n, t)
	if err != nil {
		return nil, err
	}

	out := make([]float64, t)
	workers := workerCount(int(t))

	var makeFuncs func() dispatch.StepFuncs
	if identical {
		row := rows[0]
		makeFuncs = func() dispatch.StepFuncs {
			return dispatch.StepFuncs{
				Scalar:        func(tt int) float64 { return kernel.SeriesIdentical(row, int(n), tt) },
				Vec:           func(tt, w int, o []float64) { kernel.SeriesIdenticalVec(row, int(n), tt, w, o) },
				IdenticalPath: true,
				Row:           row,
			}
		}
	} else {
		makeFuncs = func() dispatch.StepFuncs {
			return dispatch.StepFuncs{
				Scalar: func(tt int) float64 { return kernel.Series(rows, tt) },
				Vec:    func(tt, w int, o []float64) { kernel.SeriesVec(rows, tt, w, o) },
			}
		}
	}

	if err := runWorkers(out, int(t), workers, makeFuncs); err != nil {
		return nil, fmt.Errorf("rbd.Series: %w", err)
	}

	return out, nil
}

// Parallel evaluates the parallel topology: the system works at time t if
// at least one of n components works. Same shape contract as Series.
// Complexity: O(n*T/workers) per worker, O(n*T) total.
func Parallel(r matrix.Matrix, n uint8, t uint32) ([]float64, error) {
	rows, identical, err := validateTopology(r, n, t)
	if err != nil {
		return nil, err
	}

	out := make([]float64, t)
	workers := workerCount(int(t))

	var makeFuncs func() dispatch.StepFuncs
	if identical {
		row := rows[0]
		makeFuncs = func() dispatch.StepFuncs {
			return dispatch.StepFuncs{
				Scalar:        func(tt int) float64 { return kernel.ParallelIdentical(row, int(n), tt) },
				Vec:           func(tt, w int, o []float64) { kernel.ParallelIdenticalVec(row, int(n), tt, w, o) },
				IdenticalPath: true,
				Row:           row,
			}
		}
	} else {
		makeFuncs = func() dispatch.StepFuncs {
			return dispatch.StepFuncs{
				Scalar: func(tt int) float64 { return kernel.Parallel(rows, tt) },
				Vec:    func(tt, w int, o []float64) { kernel.ParallelVec(rows, tt, w, o) },
			}
		}
	}

	if err := runWorkers(out, int(t), workers, makeFuncs); err != nil {
		return nil, fmt.Errorf("rbd.Parallel: %w", err)
	}

	return out, nil
}

// Bridge evaluates the fixed 5-node bridge topology. r must have exactly 5
// rows and t columns.
// Complexity: O(T/workers) per worker, O(T) total.
func Bridge(r matrix.Matrix, t uint32) ([]float64, error) {
	if r.Rows() != 5 {
		return nil, ErrBridgeRequiresFive
	}
	if r.Cols() != int(t) {
		return nil, ErrInvalidT
	}
	rows, err := extractRows(r)
	if err != nil {
		return nil, fmt.Errorf("rbd.Bridge: %w", err)
	}

	out := make([]float64, t)
	workers := workerCount(int(t))
	makeFuncs := func() dispatch.StepFuncs {
		return dispatch.StepFuncs{
			Scalar: func(tt int) float64 { return kernel.Bridge(rows, tt) },
			Vec:    func(tt, w int, o []float64) { kernel.BridgeVec(rows, tt, w, o) },
		}
	}

	if err := runWorkers(out, int(t), workers, makeFuncs); err != nil {
		return nil, fmt.Errorf("rbd.Bridge: %w", err)
	}

	return out, nil
}

// KooN evaluates the K-out-of-N topology per cfg: the system works at time
// t if at least cfg.K of cfg.N components work. cfg.K==0 and cfg.K>cfg.N
// are the degenerate cases of spec §4.10 (trivially satisfied / impossible)
// and are filled directly without building any combinations table.
// Complexity per time instant: identical path O((N-K)*N); generic
// enumerative path O(C(N,K)*N); generic recursive path O(2^best * best)
// per multi-pivot call.
func KooN(r matrix.Matrix, cfg Config) ([]float64, error) {
	if cfg.N == 0 {
		return nil, ErrInvalidN
	}
	identical := r.Rows() == 1
	if !identical && r.Rows() != int(cfg.N) {
		return nil, ErrInvalidN
	}
	if r.Cols() != int(cfg.T) {
		return nil, ErrInvalidT
	}

	n, k, t := int(cfg.N), int(cfg.K), int(cfg.T)
	out := make([]float64, t)
	workers := workerCount(t)

	// cfg.ComputeUnreliability selects which closed-form the kernels evaluate
	// (KooNIdenticalUnreliability/KooNGenericFail still return R, per Cap(1-sum)
	// algebra — see kernel/koon.go), not which curve the caller receives. The
	// degenerate fills below are the curve itself, so they never flip with it.
	if k > n {
		if cfg.Strict {
			return nil, ErrKGreaterThanN
		}
		if err := fillWorkers(out, t, workers, 0.0); err != nil {
			return nil, fmt.Errorf("rbd.KooN: %w", err)
		}

		return out, nil
	}
	if k == 0 {
		if err := fillWorkers(out, t, workers, 1.0); err != nil {
			return nil, fmt.Errorf("rbd.KooN: %w", err)
		}

		return out, nil
	}

	rows, err := extractRows(r)
	if err != nil {
		return nil, fmt.Errorf("rbd.KooN: %w", err)
	}

	var makeFuncs func() dispatch.StepFuncs
	switch {
	case identical:
		makeFuncs, err = koonIdenticalFuncs(rows[0], n, k, cfg.ComputeUnreliability)
	case cfg.UseRecursive:
		makeFuncs = koonRecursiveFuncs(rows, n, k)
	default:
		makeFuncs, err = koonEnumerativeFuncs(rows, n, k, cfg.ComputeUnreliability)
	}
	if err != nil {
		return nil, fmt.Errorf("rbd.KooN: %w", err)
	}

	if err := runWorkers(out, t, workers, makeFuncs); err != nil {
		return nil, fmt.Errorf("rbd.KooN: %w", err)
	}

	return out, nil
}

func koonIdenticalFuncs(row []float64, n, k int, unreliability bool) (func() dispatch.StepFuncs, error) {
	if unreliability {
		nC0, err := combin.BuildBinomialTable(n, 0, k-1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		scalar := func(t int) float64 { return kernel.KooNIdenticalUnreliability(row, n, t, nC0) }

		return func() dispatch.StepFuncs {
			return dispatch.StepFuncs{
				Scalar:        scalar,
				Vec:           vecFromScalar(scalar),
				IdenticalPath: true,
				Row:           row,
			}
		}, nil
	}

	nCi, err := combin.BuildBinomialTable(n, k, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	scalar := func(t int) float64 { return kernel.KooNIdentical(row, n, t, nCi) }

	return func() dispatch.StepFuncs {
		return dispatch.StepFuncs{
			Scalar:        scalar,
			Vec:           vecFromScalar(scalar),
			IdenticalPath: true,
			Row:           row,
		}
	}, nil
}

func koonEnumerativeFuncs(rows [][]float64, n, k int, unreliability bool) (func() dispatch.StepFuncs, error) {
	if unreliability {
		var failTables []*combin.Table
		for size := n - k + 1; size <= n; size++ {
			tbl, err := combin.BuildTable(n, size)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
			}
			failTables = append(failTables, tbl)
		}

		return func() dispatch.StepFuncs {
			marker := make([]bool, n)
			scalar := func(t int) float64 { return kernel.KooNGenericFail(rows, t, failTables, marker) }

			return dispatch.StepFuncs{Scalar: scalar, Vec: vecFromScalar(scalar)}
		}, nil
	}

	table, err := combin.BuildTable(n, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}

	return func() dispatch.StepFuncs {
		marker := make([]bool, n)
		scalar := func(t int) float64 { return kernel.KooNGenericSuccess(rows, t, table, marker) }

		return dispatch.StepFuncs{Scalar: scalar, Vec: vecFromScalar(scalar)}
	}, nil
}

func koonRecursiveFuncs(rows [][]float64, n, k int) func() dispatch.StepFuncs {
	return func() dispatch.StepFuncs {
		a := arena.New()
		scalar := func(t int) float64 { return recurse.Reliability(rows, t, n, k, a) }

		return dispatch.StepFuncs{Scalar: scalar, Vec: vecFromScalar(scalar)}
	}
}

// validateTopology checks the Series/Parallel shape contract and extracts
// rows, reporting whether the identical-component path was selected.
func validateTopology(r matrix.Matrix, n uint8, t uint32) (rows [][]float64, identical bool, err error) {
	if n == 0 {
		return nil, false, ErrInvalidN
	}
	identical = r.Rows() == 1
	if !identical && r.Rows() != int(n) {
		return nil, false, ErrInvalidN
	}
	if r.Cols() != int(t) {
		return nil, false, ErrInvalidT
	}
	rows, err = extractRows(r)
	if err != nil {
		return nil, false, err
	}

	return rows, identical, nil
}
