package modem

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Errors returned by constellation operations.
var (
	ErrSymbolRange = errors.New("modem: symbol index out of range")
	ErrEmpty       = errors.New("modem: empty input")
)

// Constellation is a fixed ordered set of complex points. The phase order is
// the rotational symmetry multiplicity exploited by the nonlinear transform
// of the frequency-offset estimators (4 for QPSK, 12 for 16-APSK).
type Constellation struct {
	name       string
	points     []complex128
	phaseOrder int
}

// QPSK returns the unit-energy QPSK constellation with points on the
// diagonals, indexed 0..3.
func QPSK() *Constellation {
	s := math.Sqrt2 / 2

	return &Constellation{
		name: "QPSK",
		points: []complex128{
			complex(s, s),
			complex(-s, s),
			complex(-s, -s),
			complex(s, -s),
		},
		phaseOrder: 4,
	}
}

// APSK16 returns the DVB-S2 16-APSK constellation with ring ratio gamma,
// normalized to unit average energy. Indexes 0..3 are the inner QPSK ring,
// 4..15 the outer 12-point ring.
//
// Typical gamma values range from 2.57 (rate 3/4) to 3.15 (rate 2/3);
// pass 0 to use 2.57.
func APSK16(gamma float64) *Constellation {
	if gamma <= 0 {
		gamma = 2.57
	}

	// (4 r1^2 + 12 r2^2) / 16 == 1 with r2 = gamma * r1
	r1 := math.Sqrt(16 / (4 + 12*gamma*gamma))
	r2 := gamma * r1

	points := make([]complex128, 0, 16)
	for k := 0; k < 4; k++ {
		points = append(points, cmplx.Rect(r1, math.Pi/4+float64(k)*math.Pi/2))
	}
	for k := 0; k < 12; k++ {
		points = append(points, cmplx.Rect(r2, math.Pi/12+float64(k)*math.Pi/6))
	}

	return &Constellation{
		name:       "16-APSK",
		points:     points,
		phaseOrder: 12,
	}
}

// Name returns the constellation name.
func (c *Constellation) Name() string { return c.name }

// Size returns the number of constellation points.
func (c *Constellation) Size() int { return len(c.points) }

// PhaseOrder returns the rotational symmetry multiplicity.
func (c *Constellation) PhaseOrder() int { return c.phaseOrder }

// Points returns a copy of the constellation points.
func (c *Constellation) Points() []complex128 {
	out := make([]complex128, len(c.points))
	copy(out, c.points)

	return out
}

// SymbolsToIQ maps symbol indexes to their complex constellation points.
func (c *Constellation) SymbolsToIQ(syms []int) ([]complex128, error) {
	out := make([]complex128, len(syms))
	for i, s := range syms {
		if s < 0 || s >= len(c.points) {
			return nil, fmt.Errorf("%w: %d (size %d)", ErrSymbolRange, s, len(c.points))
		}
		out[i] = c.points[s]
	}

	return out, nil
}

// Decide returns the index of the constellation point nearest to iq.
func (c *Constellation) Decide(iq complex128) int {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range c.points {
		if d := cmplx.Abs(p - iq); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// DecideAll returns the nearest-point index for each received sample.
func (c *Constellation) DecideAll(iqs []complex128) []int {
	out := make([]int, len(iqs))
	for i, iq := range iqs {
		out[i] = c.Decide(iq)
	}

	return out
}
