package rbd

import "errors"

// Sentinel errors returned by the package's public entry points. Callers
// should compare with errors.Is, since internal wrapping adds context via
// fmt.Errorf's %w verb.
var (
	// ErrInvalidN is returned when a topology receives a component count
	// that does not match its buffer (N==0, or N != r.Rows() for the
	// non-identical path).
	ErrInvalidN = errors.New("rbd: invalid component count")

	// ErrInvalidT is returned when the requested time-grid length does not
	// match the supplied matrix's column count.
	ErrInvalidT = errors.New("rbd: invalid time-grid length")

	// ErrBridgeRequiresFive is returned when Bridge is called with a
	// matrix whose row count is not exactly 5.
	ErrBridgeRequiresFive = errors.New("rbd: bridge topology requires exactly 5 components")

	// ErrKGreaterThanN is returned by KooN when Config.K > Config.N and
	// Config.Strict is set. Without Strict, K>N is accepted and produces
	// an all-zero output, whatever ComputeUnreliability says.
	ErrKGreaterThanN = errors.New("rbd: K exceeds N")

	// ErrTableOverflow names a combinations-table size overflow. KooN does
	// not return it: a table whose size would overflow is reported as
	// ErrAllocation, with the combin package's error text appended.
	ErrTableOverflow = errors.New("rbd: combinations table size overflow")

	// ErrAllocation is returned when a shared table fails to build.
	ErrAllocation = errors.New("rbd: failed to allocate shared table")
)
