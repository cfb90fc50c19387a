// SPDX-License-Identifier: MIT
// Package matrix provides the Dense reliability-matrix buffer: a row-major
// flat-slice implementation of Matrix matching the evaluation engine's
// buffer contract (rows = components, cols = time instants).
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
// Example message shape: "Dense.Set(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows (components), c is columns (time instants); data holds r*c
// elements in row-major order with row stride c, matching the engine's
// buffer contract (§6: row stride equals T).
type Dense struct {
	r, c           int       // number of rows and columns
	data           []float64 // flat backing storage, length == r*c
	validateNaNInf bool      // numeric policy applied by Set
	validateRange  bool      // reliability-range policy applied by Set
}

// compile-time assertion: *Dense implements Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0, and rows ≤ 255 (the engine's
// component-count limit, since N is carried in a single byte).
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or a sentinel error.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if rows > 255 {
		return nil, ErrTooManyRows
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)
	o := gatherOptions(opts...)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf, validateRange: o.validateRange}, nil
}

// NewDenseFromRows builds a Dense from row-major data, one []float64 per
// component. All rows must share the same length (the time-axis length T).
// Complexity: O(r*c) copy.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	t := len(rows[0])
	m, err := NewDense(len(rows), t, opts...)
	if err != nil {
		return nil, err
	}
	fastCopy := !m.validateNaNInf && !m.validateRange
	for i, row := range rows {
		if len(row) != t {
			return nil, ErrDimensionMismatch
		}
		if fastCopy {
			copy(m.data[i*t:(i+1)*t], row)
			continue
		}
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows (components) in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns (time instants) in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method's name.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	if m.validateRange && (v < 0 || v > 1) {
		return denseErrorf("Set", row, col, ErrReliabilityOutOfRange)
	}
	m.data[idx] = v

	return nil
}

// Row returns a read-only window over component row r's time series. The
// returned slice aliases the matrix's backing storage; callers must not
// retain it past a subsequent Clone or mutation elsewhere.
// Complexity: O(1).
func (m *Dense) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf("Row", r, 0, ErrOutOfRange)
	}

	return m.data[r*m.c : (r+1)*m.c], nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf, validateRange: m.validateRange}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
