package cpufeature_test

import (
	"testing"

	"github.com/katalvlaran/rbd/cpufeature"
	"github.com/stretchr/testify/require"
)

func TestSelectReturnsSupportedWidth(t *testing.T) {
	w := cpufeature.Select()
	require.Contains(t, []cpufeature.Width{
		cpufeature.Scalar, cpufeature.Width2, cpufeature.Width4, cpufeature.Width8,
	}, w)

	// Cached: repeated calls are stable.
	require.Equal(t, w, cpufeature.Select())
}

func TestNarrower(t *testing.T) {
	require.Equal(t, cpufeature.Width4, cpufeature.Narrower(cpufeature.Width8))
	require.Equal(t, cpufeature.Width2, cpufeature.Narrower(cpufeature.Width4))
	require.Equal(t, cpufeature.Scalar, cpufeature.Narrower(cpufeature.Width2))
	require.Equal(t, cpufeature.Scalar, cpufeature.Narrower(cpufeature.Scalar))
}
