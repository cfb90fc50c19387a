package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rbd/kernel"
	"github.com/stretchr/testify/require"
)

func TestCap(t *testing.T) {
	require.Equal(t, 0.0, kernel.Cap(math.NaN()))
	require.Equal(t, 0.0, kernel.Cap(-0.5))
	require.Equal(t, 1.0, kernel.Cap(1.5))
	require.Equal(t, 0.5, kernel.Cap(0.5))
	require.Equal(t, 0.0, kernel.Cap(0.0))
	require.Equal(t, 1.0, kernel.Cap(1.0))
}
