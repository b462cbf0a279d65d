package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-digicomm/dsp/window"
)

// Errors returned by filter design and application.
var (
	ErrInvalidLength = errors.New("filter: invalid filter length")
	ErrEmptyInput    = errors.New("filter: empty input")
	ErrInputTooShort = errors.New("filter: input must have at least 2 samples")
)

// DesignDerivative returns the taps of a Blackman-windowed FIR differentiator
// of length n for sample time tsamp. The length must satisfy n = 4k-1; the
// center tap of the ideal kernel is zero (removable singularity) and the
// remaining taps follow (1/tsamp) * (-1)^k / k on the centered index k.
func DesignDerivative(n int, tsamp float64) ([]float64, error) {
	if (n+1)%4 != 0 {
		return nil, fmt.Errorf("%w: derivative length must be of form 4k-1, got %d", ErrInvalidLength, n)
	}

	half := (n - 1) / 2
	taps := make([]float64, n)
	for i := range taps {
		k := i - half
		if k == 0 {
			continue
		}
		sign := 1.0
		if k%2 != 0 {
			sign = -1
		}
		taps[i] = sign / (tsamp * float64(k))
	}

	window.Apply(window.TypeBlackman, taps)

	return taps, nil
}

// Derivative differentiates x with sample time tsamp using a length-n
// windowed FIR differentiator. The input is extended by linear extrapolation
// on both ends before convolution so the edge samples stay usable; the
// output has the same length as the input.
func Derivative(x []float64, n int, tsamp float64) ([]float64, error) {
	taps, err := DesignDerivative(n, tsamp)
	if err != nil {
		return nil, err
	}

	return applyExtrapolated(x, taps)
}

// DerivativeZeroEdge differentiates x without extrapolating beyond the input.
// The convolution pad is trimmed so the output length matches the input; with
// zeroEdge set, the first and last pad samples are forced to zero to mark the
// region where the taps were not fully supported.
func DerivativeZeroEdge(x []float64, n int, tsamp float64, zeroEdge bool) ([]float64, error) {
	taps, err := DesignDerivative(n, tsamp)
	if err != nil {
		return nil, err
	}

	return applyZeroEdge(x, taps, zeroEdge)
}
