// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rbd/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(256, 5)
	require.ErrorIs(t, err, matrix.ErrTooManyRows)
}

func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	err = m.Set(1, 2, 7.89)
	require.NoError(t, err)

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	expected := "[1, 2]\n[3, 4]\n"
	require.Equal(t, expected, m.String())
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0.9, 0.8, 0.5},
		{0.95, 0.9, 0.6},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {1, 2, 3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDenseRow(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 0.1))
	require.NoError(t, m.Set(1, 1, 0.2))
	require.NoError(t, m.Set(1, 2, 0.3))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, row)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestValidateNaNInfPolicy(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(true))
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())
	require.Error(t, err)
}

func TestValidateRangePolicy(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithValidateRange(true))
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 0.5))
	err = m.Set(0, 0, 1.5)
	require.ErrorIs(t, err, matrix.ErrReliabilityOutOfRange)

	_, err = matrix.NewDenseFromRows([][]float64{{0.1, -0.2}}, matrix.WithValidateRange(true))
	require.ErrorIs(t, err, matrix.ErrReliabilityOutOfRange)
}
