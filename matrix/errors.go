// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/index -> nil matrix -> dimension mismatch -> numeric policy.

var (
	// ErrBadShape is returned when requested shape is invalid (e.g., r<=0 or c<=0).
	// Algorithms must validate dense creation before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.). The evaluation
	// engine itself never returns this: out-of-range reliabilities are silently
	// capped by kernel.Cap. It exists for callers constructing matrices directly.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrTooManyRows indicates a row count above the block-descriptor limit of 255
	// components imposed by the evaluation engine (N fits a single byte).
	ErrTooManyRows = errors.New("matrix: row count exceeds 255")

	// ErrReliabilityOutOfRange is returned by Set on a Dense constructed with
	// WithValidateRange(true) when v falls outside [0,1]. Reliabilities are
	// probabilities; a value outside that range means the caller's curve is
	// wrong, not that the evaluation engine should cap and continue.
	ErrReliabilityOutOfRange = errors.New("matrix: reliability value outside [0,1]")
)

// matrixErrorf wraps an underlying error with the given facade/op tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
