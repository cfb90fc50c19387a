// Package matrix defines the core Matrix interface for the reliability
// buffer contract consumed by the evaluation engine.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	arrays of float64 values, row-major, rows = components and columns = time
//	instants. It lets the engine (package rbd) and its dispatch workers accept
//	any storage layout — a Dense buffer owned by this package, or a caller's
//	own implementation wrapping foreign memory — as long as it honors the
//	bounds-checked At contract.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() performs bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional read/write array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users may implement this interface to provide custom storage layouts
// (e.g. a view over a caller-owned flat buffer crossing an FFI boundary).
type Matrix interface {
	// Rows returns the number of rows (components for a reliability matrix).
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns (time instants for a reliability matrix).
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
