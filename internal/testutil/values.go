package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-vector/scalar"
)

// DeterministicValues returns n pseudo-random values of T from a fixed seed.
// Integer kinds cover their full range, so sums of the values exercise
// wraparound. Float kinds are drawn from [-amplitude, amplitude].
func DeterministicValues[T scalar.Number](seed int64, amplitude float64, n int) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		if scalar.IsFloat[T]() {
			out[i] = T((rng.Float64()*2 - 1) * amplitude)
			continue
		}
		u := rng.Uint64()
		out[i] = T(u)
	}
	return out
}

// Ramp returns start, start+step, ... with n elements.
func Ramp[T scalar.Number](start, step T, n int) []T {
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}
