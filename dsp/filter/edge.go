package filter

import "github.com/cwbudde/algo-digicomm/dsp/conv"

// Finite-length convolution distorts pad = (len(taps)-1)/2 samples at each
// end of the output. The two helpers here implement the boundary policies:
// extrapolate-and-trim assumes a locally linear trend beyond the input,
// convolve-and-trim keeps only fully supported samples and can zero the
// unreliable region instead. Both preserve the input length.

// applyExtrapolated extends x linearly by pad samples on both ends using the
// slope of the first/last two samples, convolves with taps, and trims 2*pad
// samples per side.
func applyExtrapolated(x, taps []float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, ErrInputTooShort
	}

	pad := (len(taps) - 1) / 2
	ext := make([]float64, len(x)+2*pad)
	copy(ext[pad:], x)

	lo := x[1] - x[0]
	hi := x[len(x)-1] - x[len(x)-2]
	for i := 0; i < pad; i++ {
		ext[i] = x[0] - float64(pad-i)*lo
		ext[len(ext)-pad+i] = x[len(x)-1] + float64(i+1)*hi
	}

	full, err := conv.Direct(ext, taps)
	if err != nil {
		return nil, err
	}

	return full[2*pad : len(full)-2*pad], nil
}

// applyZeroEdge convolves x with taps directly, trims pad samples per side,
// and optionally zeroes the first/last pad output samples.
func applyZeroEdge(x, taps []float64, zeroEdge bool) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	pad := (len(taps) - 1) / 2
	full, err := conv.Direct(x, taps)
	if err != nil {
		return nil, err
	}

	out := full[pad : len(full)-pad]
	if zeroEdge {
		for i := 0; i < pad && i < len(out); i++ {
			out[i] = 0
			out[len(out)-1-i] = 0
		}
	}

	return out, nil
}
