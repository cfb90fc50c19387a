package rbd

import "github.com/katalvlaran/rbd/matrix"

// extractRows copies r into a dense [][]float64 so the kernel/dispatch
// packages can operate on plain slices without per-element error-return
// overhead on the hot path. Extraction happens once per call, before any
// worker is dispatched. A *matrix.Dense source takes the Row fast path
// (one bounds check per row instead of one per element); any other Matrix
// implementation falls back to element-by-element At.
func extractRows(r matrix.Matrix) ([][]float64, error) {
	rows := make([][]float64, r.Rows())
	if d, ok := r.(*matrix.Dense); ok {
		for i := range rows {
			row, err := d.Row(i)
			if err != nil {
				return nil, err
			}
			cp := make([]float64, len(row))
			copy(cp, row)
			rows[i] = cp
		}

		return rows, nil
	}

	for i := range rows {
		row := make([]float64, r.Cols())
		for j := range row {
			v, err := r.At(i, j)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		rows[i] = row
	}

	return rows, nil
}
