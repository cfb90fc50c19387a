// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.
package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Intended for comparing computed reliability curves against golden fixtures
// without requiring bit-for-bit equality.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol = math.Abs(rtol)
	atol = math.Abs(atol)

	return ewAllClose(a, b, rtol, atol)
}
