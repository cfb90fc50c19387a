package kernel_test

import (
	"testing"

	"github.com/katalvlaran/rbd/combin"
	"github.com/katalvlaran/rbd/kernel"
	"github.com/stretchr/testify/require"
)

func TestSeries_S1(t *testing.T) {
	rows := [][]float64{{0.9}, {0.8}, {0.5}}
	require.InDelta(t, 0.36, kernel.Series(rows, 0), 1e-12)
}

func TestParallel_S2(t *testing.T) {
	rows := [][]float64{{0.9}, {0.8}, {0.5}}
	require.InDelta(t, 0.99, kernel.Parallel(rows, 0), 1e-12)
}

func TestSeriesParallelDuality(t *testing.T) {
	// output(series(r)) == 1 - output(parallel(1-r)) up to ULP.
	rows := [][]float64{{0.9}, {0.7}, {0.3}, {0.95}}
	unreliRows := make([][]float64, len(rows))
	for i, row := range rows {
		unreliRows[i] = []float64{1 - row[0]}
	}

	s := kernel.Series(rows, 0)
	p := kernel.Parallel(unreliRows, 0)
	require.InDelta(t, s, 1-p, 1e-12)
}

func TestBridge_S3(t *testing.T) {
	rows := [][]float64{{0.9}, {0.9}, {0.9}, {0.9}, {0.9}}
	require.InDelta(t, 0.97848, kernel.Bridge(rows, 0), 1e-12)
}

func TestKooNIdentical_S4(t *testing.T) {
	row := []float64{0.5}
	nCi, err := combin.BuildBinomialTable(4, 2, 4)
	require.NoError(t, err)
	require.InDelta(t, 0.6875, kernel.KooNIdentical(row, 4, 0, nCi), 1e-12)
}

func TestKooNIdentical_S5(t *testing.T) {
	row := []float64{0.9}
	nCi, err := combin.BuildBinomialTable(3, 2, 3)
	require.NoError(t, err)
	require.InDelta(t, 0.972, kernel.KooNIdentical(row, 3, 0, nCi), 1e-12)
}

func TestKooNGenericSuccessFail_S7(t *testing.T) {
	// spec S7: N=6,K=3, r = [0.1,0.2,0.3,0.4,0.5,0.6]; success and fail
	// formulations must agree to within 1e-12.
	rows := [][]float64{{0.1}, {0.2}, {0.3}, {0.4}, {0.5}, {0.6}}
	n, k := 6, 3

	workTable, err := combin.BuildTable(n, k)
	require.NoError(t, err)

	var failTables []*combin.Table
	for size := n - k + 1; size <= n; size++ {
		tbl, err := combin.BuildTable(n, size)
		require.NoError(t, err)
		failTables = append(failTables, tbl)
	}

	marker := make([]bool, n)
	success := kernel.KooNGenericSuccess(rows, 0, workTable, marker)
	fail := kernel.KooNGenericFail(rows, 0, failTables, marker)

	require.InDelta(t, success, fail, 1e-12)
}

func TestKooNBoundaryEquivalences(t *testing.T) {
	rows := [][]float64{{0.9}, {0.8}, {0.7}}
	n := 3

	// K=N is equivalent to Series.
	workTable, err := combin.BuildTable(n, n)
	require.NoError(t, err)
	marker := make([]bool, n)
	require.InDelta(t, kernel.Series(rows, 0), kernel.KooNGenericSuccess(rows, 0, workTable, marker), 1e-12)

	// K=1 is equivalent to Parallel.
	workTable1, err := combin.BuildTable(n, 1)
	require.NoError(t, err)
	require.InDelta(t, kernel.Parallel(rows, 0), kernel.KooNGenericSuccess(rows, 0, workTable1, marker), 1e-12)
}

func TestVectorScalarParity(t *testing.T) {
	rows := [][]float64{
		{0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2},
		{0.95, 0.85, 0.75, 0.65, 0.55, 0.45, 0.35, 0.25},
	}

	out := make([]float64, 4)
	kernel.SeriesVec(rows, 2, 4, out)
	for lane := 0; lane < 4; lane++ {
		require.InDelta(t, kernel.Series(rows, 2+lane), out[lane], 1e-12)
	}
}
