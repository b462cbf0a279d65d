package freqest

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// fftZeroPadded computes an unnormalized forward DFT of x zero-padded to
// length n. Power-of-two sizes go through an algo-fft plan; other sizes fall
// back to gonum's mixed-radix transform.
func fftZeroPadded(x []complex128, n int) ([]complex128, error) {
	padded := make([]complex128, n)
	copy(padded, x)

	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("freqest: failed to create FFT plan: %w", err)
		}

		out := make([]complex128, n)
		if err := plan.Forward(out, padded); err != nil {
			return nil, fmt.Errorf("freqest: forward FFT failed: %w", err)
		}

		return out, nil
	}

	fft := fourier.NewCmplxFFT(n)

	return fft.Coefficients(nil, padded), nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
