// Package curvegen generates synthetic per-component reliability curves
// (constant, exponential decay, Weibull, resampled-from-samples) for
// feeding rbd's topology functions and rbdgraph leaves in examples and
// tests, following the teacher package's functional-options idiom.
package curvegen

import (
	"errors"
	"math"
)

// ErrEmptySamples is returned by FromSamples when given no samples.
var ErrEmptySamples = errors.New("curvegen: no samples given")

// Option mutates internal generation options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	step  float64 // time increment per output index
	clamp bool    // clamp output to [0,1]
}

// DefaultStep is the time increment applied between consecutive output
// indices when WithStep is not given.
const DefaultStep = 1.0

// WithStep sets the time increment between consecutive output indices
// (index i corresponds to simulated time i*step). Default 1.0.
func WithStep(step float64) Option {
	return func(o *options) { o.step = step }
}

// WithClamp toggles clamping generated values to [0,1]. Default true,
// matching the engine's own reliability-domain convention.
func WithClamp(clamp bool) Option {
	return func(o *options) { o.clamp = clamp }
}

func gatherOptions(opts ...Option) options {
	o := options{step: DefaultStep, clamp: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Constant returns a T-length curve holding value at every time instant.
func Constant(t uint32, value float64, opts ...Option) []float64 {
	o := gatherOptions(opts...)
	if o.clamp {
		value = clampUnit(value)
	}
	out := make([]float64, t)
	for i := range out {
		out[i] = value
	}

	return out
}

// ExponentialDecay returns R(t) = exp(-lambda * t) sampled at each index.
func ExponentialDecay(t uint32, lambda float64, opts ...Option) []float64 {
	o := gatherOptions(opts...)
	out := make([]float64, t)
	for i := range out {
		v := math.Exp(-lambda * float64(i) * o.step)
		if o.clamp {
			v = clampUnit(v)
		}
		out[i] = v
	}

	return out
}

// Weibull returns R(t) = exp(-(t/eta)^beta) sampled at each index: eta is
// the scale parameter, beta the shape parameter.
func Weibull(t uint32, eta, beta float64, opts ...Option) []float64 {
	o := gatherOptions(opts...)
	out := make([]float64, t)
	for i := range out {
		ti := float64(i) * o.step
		v := math.Exp(-math.Pow(ti/eta, beta))
		if o.clamp {
			v = clampUnit(v)
		}
		out[i] = v
	}

	return out
}

// FromSamples linearly resamples samples (assumed evenly spaced over the
// same span as the requested T-length output) to exactly T points.
func FromSamples(samples []float64, t uint32, opts ...Option) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySamples
	}
	o := gatherOptions(opts...)
	out := make([]float64, t)
	if t == 0 {
		return out, nil
	}
	if len(samples) == 1 {
		v := samples[0]
		if o.clamp {
			v = clampUnit(v)
		}
		for i := range out {
			out[i] = v
		}

		return out, nil
	}

	denom := float64(t - 1)
	if denom == 0 {
		denom = 1
	}
	for i := range out {
		pos := float64(i) / denom * float64(len(samples)-1)
		lo := int(math.Floor(pos))
		if lo >= len(samples)-1 {
			lo = len(samples) - 2
		}
		hi := lo + 1
		frac := pos - float64(lo)
		v := samples[lo]*(1-frac) + samples[hi]*frac
		if o.clamp {
			v = clampUnit(v)
		}
		out[i] = v
	}

	return out, nil
}
