package spectrum

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-digicomm/dsp/core"
)

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// The real and imaginary parts are unpacked once so the squared magnitude can
// run through the SIMD-optimized vecmath kernels.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im := unpack(in)
	vecmath.Power(out, re, im)

	return out
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im := unpack(in)
	vecmath.Magnitude(out, re, im)

	return out
}

// FrequencyAxis returns the sample frequencies of a length-n FFT for a
// sequence with sample frequency fs. The DC component sits at the center of
// the array, not the beginning.
func FrequencyAxis(n int, fs float64) []float64 {
	idx := core.ZeroCenteredArray(n)
	out := make([]float64, len(idx))
	for i, k := range idx {
		out[i] = float64(k) / float64(n) * fs
	}

	return out
}

// PeakBin returns the index and value of the largest element of power.
// Returns -1 for an empty slice.
func PeakBin(power []float64) (int, float64) {
	if len(power) == 0 {
		return -1, 0
	}

	idx := 0
	max := power[0]
	for i, v := range power {
		if v > max {
			idx, max = i, v
		}
	}

	return idx, max
}

func unpack(in []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(in))
	re, im = buf[:len(in)], buf[len(in):]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}
