package curvegen_test

import (
	"testing"

	"github.com/katalvlaran/rbd/curvegen"
	"github.com/stretchr/testify/require"
)

func TestConstant(t *testing.T) {
	out := curvegen.Constant(5, 0.9)
	require.Len(t, out, 5)
	for _, v := range out {
		require.Equal(t, 0.9, v)
	}
}

func TestConstantClampsOutOfRange(t *testing.T) {
	out := curvegen.Constant(2, 1.5)
	require.Equal(t, 1.0, out[0])
}

func TestExponentialDecayMonotonicallyDecreasing(t *testing.T) {
	out := curvegen.ExponentialDecay(10, 0.1)
	require.InDelta(t, 1.0, out[0], 1e-12)
	for i := 1; i < len(out); i++ {
		require.Less(t, out[i], out[i-1])
	}
}

func TestWeibullAtScaleEqualsInverseE(t *testing.T) {
	out := curvegen.Weibull(2, 1.0, 1.0, curvegen.WithStep(1.0))
	// at t=eta, R = exp(-1)
	require.InDelta(t, 1.0, out[0], 1e-12)
	require.InDelta(t, 1.0/2.718281828459045, out[1], 1e-9)
}

func TestFromSamplesInterpolatesEndpoints(t *testing.T) {
	out, err := curvegen.FromSamples([]float64{1.0, 0.5, 0.0}, 5)
	require.NoError(t, err)
	require.InDelta(t, 1.0, out[0], 1e-12)
	require.InDelta(t, 0.0, out[4], 1e-12)
}

func TestFromSamplesRejectsEmpty(t *testing.T) {
	_, err := curvegen.FromSamples(nil, 5)
	require.ErrorIs(t, err, curvegen.ErrEmptySamples)
}

func TestFromSamplesSingleSampleBroadcasts(t *testing.T) {
	out, err := curvegen.FromSamples([]float64{0.75}, 4)
	require.NoError(t, err)
	for _, v := range out {
		require.Equal(t, 0.75, v)
	}
}
