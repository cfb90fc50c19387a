package rbd

// Config parameterizes a KooN evaluation (spec §3/§6). Series, Parallel and
// Bridge take their shape directly from the supplied matrix.Matrix and need
// no configuration struct.
type Config struct {
	// N is the component count. Must equal the matrix's row count, or the
	// matrix must have exactly 1 row (the identical-component path).
	N uint8
	// K is the success threshold: at least K of N components must work.
	K uint8
	// T is the expected time-grid length; must equal the matrix's column
	// count.
	T uint32
	// ComputeUnreliability selects the complementary (1-R) formulation
	// instead of R directly. Only meaningful for the identical-component
	// and generic-fail code paths; the numeric result is identical either
	// way up to floating-point order of summation.
	ComputeUnreliability bool
	// UseRecursive selects the recursive decomposition (package recurse)
	// over the enumerative combinations table for the generic (non-
	// identical) path. Both produce the same result to within 1e-12; the
	// recursive path trades table-build memory for recursion depth.
	UseRecursive bool
	// Strict turns K>N into ErrKGreaterThanN instead of the documented
	// all-zero fallback.
	Strict bool
}
