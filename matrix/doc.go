// Package matrix defines the reliability-matrix buffer contract shared by
// the evaluation engine and its callers.
//
// A reliability matrix is row-major: one row per component, one column per
// time instant, row stride equal to the number of time instants. Dense is
// the package's own flat-slice implementation; callers may supply any type
// satisfying Matrix, including a view over foreign memory.
//
// The package also carries a comparison facade (AllClose) useful when
// validating reliability curves outside the kernel hot path.
package matrix
