package filter

import (
	"fmt"
	"math"
)

// DesignFractionalDelay returns the 2l+1 taps of an ideal-sinc fractional
// delay filter. t is the sample period and dt the desired delay in the same
// unit; each tap evaluates sin(x)/x at x = (k + dt/t)*pi on the centered
// index k, with the singular point x = 0 mapped to 1.
func DesignFractionalDelay(t, dt float64, l int) []float64 {
	taps := make([]float64, 2*l+1)
	for i := range taps {
		x := (float64(i-l) + dt/t) * math.Pi
		if x == 0 {
			taps[i] = 1
			continue
		}
		taps[i] = math.Sin(x) / x
	}

	return taps
}

// FractionalDelay delays x by gamma samples, where gamma can be any float,
// using a length-n sinc interpolation filter. n must be odd. The input is
// extended by linear extrapolation before convolution, so the output has the
// same length as the input.
func FractionalDelay(x []float64, gamma float64, n int) ([]float64, error) {
	if n < 1 || n%2 == 0 {
		return nil, fmt.Errorf("%w: fractional delay length must be odd, got %d", ErrInvalidLength, n)
	}

	taps := DesignFractionalDelay(1, gamma, n/2)

	return applyExtrapolated(x, taps)
}
