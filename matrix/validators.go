// Package matrix provides core matrix operation validators to ensure
// matrices meet required shape constraints before computation.
package matrix

import (
	"fmt"
)

// ValidateNotNil ensures the Matrix is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape checks that a and b have identical dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}

	rowsA, colsA := a.Rows(), a.Cols()
	rowsB, colsB := b.Rows(), b.Cols()

	if rowsA != rowsB {
		return validatorErrorf(
			"ValidateSameShape",
			fmt.Errorf("row count mismatch %d != %d: %w", rowsA, rowsB, ErrDimensionMismatch),
		)
	}
	if colsA != colsB {
		return validatorErrorf(
			"ValidateSameShape",
			fmt.Errorf("column count mismatch %d != %d: %w", colsA, colsB, ErrDimensionMismatch),
		)
	}

	return nil
}
