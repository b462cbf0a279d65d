package testutil

import (
	"math"
	"math/rand"
)

// Ramp generates a linear ramp with the given slope and sample spacing.
func Ramp(slope, tsamp float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = slope * float64(i) * tsamp
	}
	return out
}

// Sine generates a deterministic sine wave with normalized frequency
// cycles/sample.
func Sine(nuT, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*nuT*float64(i))
	}
	return out
}

// ComplexTone generates exp(j*2*pi*nuT*n) for n = 0..length-1.
func ComplexTone(nuT float64, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		phase := 2 * math.Pi * nuT * float64(i)
		out[i] = complex(math.Cos(phase), math.Sin(phase))
	}
	return out
}

// RandomSymbols draws uniform symbol indexes in [0, m) with a fixed seed.
func RandomSymbols(seed int64, m, length int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, length)
	for i := range out {
		out[i] = rng.Intn(m)
	}
	return out
}
