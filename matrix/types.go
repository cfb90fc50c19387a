// Package matrix: functional configuration for Dense construction.
//
// Design goals (same spirit the engine follows everywhere):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: Option constructors never panic; invalid values
//     are normalized to the nearest sane default.
//   - Reusability: Options is unexported; public constructors consume ...Option.
package matrix

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options holds the effective numeric policy after applying Option setters.
type options struct {
	validateNaNInf bool // if true, Set rejects NaN/±Inf with ErrNaNInf
	validateRange  bool // if true, Set rejects values outside [0,1] with ErrReliabilityOutOfRange
}

// DefaultValidateNaNInf mirrors the engine's own tolerance: reliability
// kernels cap out-of-range values rather than rejecting them, so a freshly
// built Dense is permissive by default. Set WithValidateNaNInf(true) for
// matrices populated by hand outside the engine, where silently storing a
// NaN is more likely to be a caller bug than expected input drift.
const DefaultValidateNaNInf = false

// DefaultValidateRange mirrors DefaultValidateNaNInf's reasoning: curve
// generators may intentionally feed values outside [0,1] through a Dense
// before clamping, so raw construction stays permissive.
const DefaultValidateRange = false

// WithValidateNaNInf returns an Option toggling strict finite-value
// validation on Set. Does not affect At, which never validates.
func WithValidateNaNInf(v bool) Option {
	return func(o *options) { o.validateNaNInf = v }
}

// WithValidateRange returns an Option toggling strict [0,1] reliability-range
// validation on Set. Use it for matrices assembled from trusted component
// reliabilities, where a value outside [0,1] means the caller built the
// curve wrong rather than something the evaluation engine should silently
// tolerate. Does not affect At, which never validates.
func WithValidateRange(v bool) Option {
	return func(o *options) { o.validateRange = v }
}

// gatherOptions applies opts over the default policy.
func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf, validateRange: DefaultValidateRange}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
