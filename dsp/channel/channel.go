package channel

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrNoiseSpec indicates a missing or invalid noise specification.
var ErrNoiseSpec = errors.New("channel: noise spec must provide N0 or SNR and Eb")

// NoiseSpec selects how the AWGN level is specified. Exactly one of the two
// concrete variants is passed to [AddNoise].
type NoiseSpec interface {
	n0() (float64, error)
}

// NoiseN0 specifies the noise variance N0 directly.
type NoiseN0 struct {
	N0 float64
}

func (s NoiseN0) n0() (float64, error) {
	if s.N0 < 0 {
		return 0, fmt.Errorf("%w: N0 %f < 0", ErrNoiseSpec, s.N0)
	}

	return s.N0, nil
}

// NoiseSNR derives the noise variance from an SNR in dB and the energy per
// bit Eb.
type NoiseSNR struct {
	SNRdB float64
	Eb    float64
}

func (s NoiseSNR) n0() (float64, error) {
	if s.Eb <= 0 {
		return 0, fmt.Errorf("%w: Eb %f <= 0", ErrNoiseSpec, s.Eb)
	}

	return NoiseVariance(s.SNRdB, s.Eb), nil
}

// NoiseVariance returns N0 = Eb / gamma for an SNR in dB, where gamma is the
// SNR on a linear scale.
func NoiseVariance(snrdB, eb float64) float64 {
	return eb / math.Pow(10, snrdB/10)
}

// AddNoise returns iqs with additive white Gaussian noise drawn from rng.
// Each quadrature component has variance N0/2. A nil spec is rejected with
// [ErrNoiseSpec].
func AddNoise(rng *rand.Rand, iqs []complex128, spec NoiseSpec) ([]complex128, error) {
	if spec == nil {
		return nil, ErrNoiseSpec
	}

	n0, err := spec.n0()
	if err != nil {
		return nil, err
	}

	sigma := math.Sqrt(n0 / 2)
	out := make([]complex128, len(iqs))
	for i, v := range iqs {
		out[i] = v + complex(sigma*rng.NormFloat64(), sigma*rng.NormFloat64())
	}

	return out, nil
}

// AddFrequencyOffset rotates iqs by a frequency nuT in cycles/sample.
func AddFrequencyOffset(iqs []complex128, nuT float64) []complex128 {
	out := make([]complex128, len(iqs))
	for i, v := range iqs {
		phase := 2 * math.Pi * float64(i) * nuT
		out[i] = v * complex(math.Cos(phase), math.Sin(phase))
	}

	return out
}

// AddPhaseOffset rotates every sample of iqs by a constant phase in radians.
func AddPhaseOffset(iqs []complex128, phase float64) []complex128 {
	rot := complex(math.Cos(phase), math.Sin(phase))
	out := make([]complex128, len(iqs))
	for i, v := range iqs {
		out[i] = v * rot
	}

	return out
}

// RandomPhase draws a phase uniformly from [0, 2*pi).
func RandomPhase(rng *rand.Rand) float64 {
	return 2 * math.Pi * rng.Float64()
}

// RandomInRange draws a value uniformly from [low, high).
func RandomInRange(rng *rand.Rand, low, high float64) float64 {
	return rng.Float64()*(high-low) + low
}
