package conv

import "math/cmplx"

// MatchedFilter convolves x with the time-reversed conjugate of the pulse
// shape p and returns the full convolution result.
func MatchedFilter(x, p []complex128) ([]complex128, error) {
	if len(p) == 0 {
		return nil, ErrEmptyKernel
	}

	kernel := make([]complex128, len(p))
	for i, v := range p {
		kernel[len(p)-1-i] = cmplx.Conj(v)
	}

	return DirectComplex(x, kernel)
}

// ZeroInsert inserts l-1 zeros between consecutive samples of x.
// No trailing zeros follow the last sample, so the result has length
// (len(x)-1)*l + 1.
func ZeroInsert(x []complex128, l int) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if l < 1 {
		return nil, ErrInvalidFactor
	}

	out := make([]complex128, (len(x)-1)*l+1)
	for i, v := range x {
		out[i*l] = v
	}

	return out, nil
}

// Upsample zero-inserts x by factor l and convolves the impulse train with
// the pulse shape p.
func Upsample(x, p []complex128, l int) ([]complex128, error) {
	train, err := ZeroInsert(x, l)
	if err != nil {
		return nil, err
	}

	return DirectComplex(train, p)
}
