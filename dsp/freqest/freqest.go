package freqest

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-digicomm/dsp/spectrum"
)

// Errors returned by the estimators.
var (
	ErrInvalidMode = errors.New("freqest: invalid interpolation mode")
	ErrEmptyInput  = errors.New("freqest: empty input")
)

// Mode selects the sub-bin interpolation applied after the coarse FFT peak
// search.
type Mode int

const (
	// ModeCoarse returns the raw peak-bin frequency with no fine correction.
	ModeCoarse Mode = iota

	// ModeGauss applies log-power parabolic (Gaussian peak) interpolation.
	ModeGauss

	// ModeInterp1 applies power-parabolic interpolation (D'Amico).
	ModeInterp1

	// ModeInterp2 applies a sign-and-ratio correction from the larger
	// neighbor bin.
	ModeInterp2
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCoarse:
		return "coarse"
	case ModeGauss:
		return "gauss"
	case ModeInterp1:
		return "interp_1"
	case ModeInterp2:
		return "interp_2"
	default:
		return "unknown"
	}
}

// QPSK estimates the normalized frequency offset of a block of QPSK samples,
// in cycles/sample. The estimate is unambiguous in (-1/8, 1/8].
func QPSK(rx []complex128, mode Mode) (float64, error) {
	return estimate(rx, 4, mode)
}

// APSK16 estimates the normalized frequency offset of a block of 16-APSK
// samples, in cycles/sample. The 12-point outer ring bounds the unambiguous
// range to (-1/24, 1/24].
func APSK16(rx []complex128, mode Mode) (float64, error) {
	return estimate(rx, 12, mode)
}

// estimate removes the M-ary phase modulation by raising each sample's phase
// to the order-th power, locates the residual tone with a zero-padded FFT,
// and refines the peak-bin frequency with the selected interpolator.
//
// When the tone is exactly bin-aligned the fine-correction formulas can
// divide by zero; the resulting NaN is passed through unguarded.
func estimate(rx []complex128, order int, mode Mode) (float64, error) {
	if mode < ModeCoarse || mode > ModeInterp2 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}
	if len(rx) == 0 {
		return 0, ErrEmptyInput
	}

	// Nonlinear transform: |z|^2 * exp(j*order*arg(z)). The constellation's
	// rotational symmetry collapses to a tone at order times the offset.
	z := make([]complex128, len(rx))
	for i, v := range rx {
		mag := real(v)*real(v) + imag(v)*imag(v)
		phase := float64(order) * cmplx.Phase(v)
		z[i] = complex(mag*math.Cos(phase), mag*math.Sin(phase))
	}

	// Zero padding to 2N doubles the resolution seen by the interpolators.
	lfft := 2 * len(z)
	zz, err := fftZeroPadded(z, lfft)
	if err != nil {
		return 0, err
	}

	pp := spectrum.Power(zz)
	idx, _ := spectrum.PeakBin(pp)

	// Bins at or above lfft/2 represent negative frequencies.
	var coarse float64
	if idx >= lfft/2 {
		coarse = float64(idx-lfft) / float64(lfft*order)
	} else {
		coarse = float64(idx) / float64(lfft*order)
	}

	if mode == ModeCoarse {
		return coarse, nil
	}

	i1 := pp[(idx-1+lfft)%lfft]
	i2 := pp[idx]
	i3 := pp[(idx+1)%lfft]
	i0 := math.Max(i1, i3)

	l := float64(lfft)
	w := float64(order)

	switch mode {
	case ModeInterp1:
		return coarse + 1/(w*l)*0.5*(i1-i3)/(i1-2*i2+i3), nil
	case ModeInterp2:
		// Empirically tuned constant chain, preserved digit for digit.
		return coarse + sign(i3-i1)/l*i0/(i2-i0)/2/2/math.Pi/w, nil
	default: // ModeGauss
		return coarse + (1/l)*(math.Log(i1)-math.Log(i3))/
			(math.Log(i1)-2*math.Log(i2)+math.Log(i3))/(2*w*math.Pi), nil
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
