package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput    = errors.New("conv: empty input")
	ErrEmptyKernel   = errors.New("conv: empty kernel")
	ErrInvalidFactor = errors.New("conv: upsampling factor must be >= 1")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where the sequences fully overlap.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm. Every kernel in this library is well under
// a hundred taps, so no FFT-based path is provided.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			result[i+j] += a[i] * b[j]
		}
	}

	return result, nil
}

// DirectComplex performs direct linear convolution of complex sequences.
// Returns a new slice of length len(a) + len(b) - 1.
func DirectComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]complex128, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			result[i+j] += a[i] * b[j]
		}
	}

	return result, nil
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Direct(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// ConvolveComplexMode performs complex convolution with the specified output mode.
func ConvolveComplexMode(a, b []complex128, mode Mode) ([]complex128, error) {
	full, err := DirectComplex(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode[T float64 | complex128](full []T, lenA, lenB int, mode Mode) []T {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}
