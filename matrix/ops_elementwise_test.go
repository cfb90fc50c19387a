// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rbd/matrix"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows, cols int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}

	return m
}

func TestAllClose(t *testing.T) {
	a := mustDense(t, 1, 2, []float64{1.0, 2.0})
	b := mustDense(t, 1, 2, []float64{1.0000001, 2.0000001})

	ok, err := matrix.AllClose(a, b, 1e-5, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	c := mustDense(t, 1, 2, []float64{1.0, 3.0})
	ok, err = matrix.AllClose(a, c, 1e-5, 1e-8)
	require.NoError(t, err)
	require.False(t, ok)

	d := mustDense(t, 1, 3, []float64{1, 2, 3})
	_, err = matrix.AllClose(a, d, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
