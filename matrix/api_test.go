package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rbd/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllCloseIdenticalCurves(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{0.9, 0.8, 0.7}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{0.9, 0.8, 0.7}})
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllCloseDivergentCurves(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{0.9, 0.8}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{0.9, 0.5}})
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)
}
