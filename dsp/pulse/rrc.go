package pulse

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by pulse design functions.
var (
	ErrInvalidRolloff = errors.New("pulse: roll-off factor must be in [0, 1]")
	ErrInvalidSpan    = errors.New("pulse: span and samples per symbol must be > 0")
	ErrInvalidShape   = errors.New("pulse: invalid pulse shape")
)

// Shape selects between the root-raised-cosine matched-filter half and the
// full raised-cosine response.
type Shape int

const (
	ShapeSqrt Shape = iota
	ShapeNormal
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSqrt:
		return "sqrt"
	case ShapeNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// DesignRaisedCosine returns the impulse response of a raised-cosine or
// root-raised-cosine pulse together with its zero-centered time axis.
//
// alpha is the roll-off factor, span the pulse length in symbols, sps the
// samples per symbol, and ts the symbol period. The response has
// span*sps + 1 taps (one sample appended to symmetrize) and is normalized to
// unit energy. The closed-form expressions have removable singularities at
// t = 0 and t = ±ts/(4 alpha) (sqrt) or t = ±ts/(2 alpha) (normal); those
// samples take their analytic limit values.
func DesignRaisedCosine(alpha float64, span, sps int, ts float64, shape Shape) (taps, timeAxis []float64, err error) {
	if alpha < 0 || alpha > 1 {
		return nil, nil, fmt.Errorf("%w: %f", ErrInvalidRolloff, alpha)
	}
	if span <= 0 || sps <= 0 {
		return nil, nil, fmt.Errorf("%w: span %d, sps %d", ErrInvalidSpan, span, sps)
	}
	if shape != ShapeSqrt && shape != ShapeNormal {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidShape, shape)
	}

	n := span * sps
	dt := ts / float64(sps)

	timeAxis = make([]float64, n+1)
	for i := range timeAxis {
		timeAxis[i] = (float64(i) - float64(n)/2) * dt
	}

	taps = make([]float64, n+1)
	for i := 0; i < n; i++ {
		t := (float64(i) - float64(n)/2) * dt
		if shape == ShapeSqrt {
			taps[i] = rrcSample(t, alpha, ts)
		} else {
			taps[i] = rcSample(t, alpha, ts)
		}
	}
	taps[n] = taps[0]

	energy := 0.0
	for _, h := range taps {
		energy += h * h
	}
	norm := math.Sqrt(energy)
	for i := range taps {
		taps[i] /= norm
	}

	return taps, timeAxis, nil
}

func rrcSample(t, alpha, ts float64) float64 {
	switch {
	case t == 0:
		return 1 - alpha + 4*alpha/math.Pi
	case alpha != 0 && (t == ts/(4*alpha) || t == -ts/(4*alpha)):
		return (alpha / math.Sqrt2) * ((1+2/math.Pi)*math.Sin(math.Pi/(4*alpha)) +
			(1-2/math.Pi)*math.Cos(math.Pi/(4*alpha)))
	default:
		num := math.Sin(math.Pi*t*(1-alpha)/ts) + 4*alpha*(t/ts)*math.Cos(math.Pi*t*(1+alpha)/ts)
		den := math.Pi * t * (1 - (4*alpha*t/ts)*(4*alpha*t/ts)) / ts

		return num / den
	}
}

func rcSample(t, alpha, ts float64) float64 {
	switch {
	case t == 0:
		return 1
	case alpha != 0 && (t == ts/(2*alpha) || t == -ts/(2*alpha)):
		return (math.Pi / 4) * math.Sin(math.Pi*t/ts) / (math.Pi * t / ts)
	default:
		sinc := math.Sin(math.Pi*t/ts) / (math.Pi * t / ts)

		return sinc * math.Cos(math.Pi*alpha*t/ts) / (1 - (2*alpha*t/ts)*(2*alpha*t/ts))
	}
}
