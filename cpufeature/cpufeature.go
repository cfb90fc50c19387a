// Package cpufeature implements the evaluation engine's capability
// selector: at worker entry, choose the widest supported SIMD kernel
// family based on runtime CPU-feature flags, matching spec §4.9/§9's
// "runtime CPU dispatch" design note.
//
// The package initializes its feature snapshot once, lazily, via
// sync.Once. spec §5 notes the reference tolerates a benign race on a
// plain "initialized" flag since the computed bits are idempotent;
// sync.Once is the idiomatic Go equivalent and removes that race
// entirely rather than merely tolerating it.
package cpufeature

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Width names a supported SIMD lane count for the vector step kernels.
type Width int

const (
	// Scalar processes one time instant per kernel invocation.
	Scalar Width = 1
	// Width2 processes two consecutive time instants per invocation.
	Width2 Width = 2
	// Width4 processes four consecutive time instants per invocation.
	Width4 Width = 4
	// Width8 processes eight consecutive time instants per invocation.
	Width8 Width = 8
)

var (
	once     sync.Once
	selected Width
)

// detect inspects runtime CPU feature flags and picks the widest width the
// kernel package has a hand-unrolled implementation for. AVX-512 and AVX2
// map to Width8; SSE2/NEON (present on effectively every amd64/arm64
// target) map to Width4; anything else falls back to Scalar.
func detect() Width {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F), cpuid.CPU.Has(cpuid.AVX2):
		return Width8
	case cpuid.CPU.Has(cpuid.SSE2), cpuid.CPU.Has(cpuid.ASIMD):
		return Width4
	default:
		return Scalar
	}
}

// Select returns the widest vector width the current CPU and build support.
// The first call performs detection; subsequent calls return the cached
// result. Complexity: O(1) after first call.
func Select() Width {
	once.Do(func() {
		selected = detect()
	})

	return selected
}

// Narrower returns the next narrower supported width below w, or Scalar if
// w is already Scalar. Used by dispatch's tail-descent loop (spec §4.9).
func Narrower(w Width) Width {
	switch w {
	case Width8:
		return Width4
	case Width4:
		return Width2
	case Width2:
		return Scalar
	default:
		return Scalar
	}
}
