package freqest

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-digicomm/dsp/channel"
	"github.com/cwbudde/algo-digicomm/dsp/modem"
	"github.com/cwbudde/algo-digicomm/internal/testutil"
)

var allModes = []Mode{ModeCoarse, ModeGauss, ModeInterp1, ModeInterp2}

func randomBlock(t *testing.T, c *modem.Constellation, seed int64, n int) []complex128 {
	t.Helper()

	syms := testutil.RandomSymbols(seed, c.Size(), n)
	iqs, err := c.SymbolsToIQ(syms)
	if err != nil {
		t.Fatal(err)
	}

	return iqs
}

func TestInvalidMode(t *testing.T) {
	rx := testutil.ComplexTone(0.01, 64)

	if _, err := QPSK(rx, Mode(9)); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if _, err := APSK16(rx, Mode(-1)); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := QPSK(nil, ModeCoarse); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestZeroOffsetQPSK(t *testing.T) {
	rx := randomBlock(t, modem.QPSK(), 11, 256)

	// With no offset the nonlinear transform collapses to a DC tone, so
	// coarse lands exactly on bin zero and the symmetric neighbor bins
	// cancel the parabolic and log corrections. The sign-and-ratio
	// interpolator keys on floating-point noise in the neighbor
	// difference and leaves a small residual.
	tolerances := map[Mode]float64{
		ModeCoarse:  0,
		ModeGauss:   1e-9,
		ModeInterp1: 1e-9,
		ModeInterp2: 1e-4,
	}

	for _, mode := range allModes {
		got, err := QPSK(rx, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if math.IsNaN(got) || math.Abs(got) > tolerances[mode] {
			t.Fatalf("%v: estimate %v, want 0 within %v", mode, got, tolerances[mode])
		}
	}
}

func TestZeroOffsetAPSK16(t *testing.T) {
	rx := randomBlock(t, modem.APSK16(0), 13, 256)

	for _, mode := range allModes {
		got, err := APSK16(rx, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if math.IsNaN(got) || math.Abs(got) > 1e-4 {
			t.Fatalf("%v: estimate %v, want 0", mode, got)
		}
	}
}

func TestKnownOffsetQPSK(t *testing.T) {
	const nuT = 0.01

	rx := channel.AddFrequencyOffset(randomBlock(t, modem.QPSK(), 17, 256), nuT)

	// The transformed tone sits near a half-bin here (bin 20.48 of 512),
	// where the sign-and-ratio interpolator carries a bias of roughly a bin,
	// an order worse than the parabolic and log-parabolic corrections.
	tolerances := map[Mode]float64{
		ModeCoarse:  5e-4,
		ModeGauss:   5e-4,
		ModeInterp1: 2e-4,
		ModeInterp2: 2e-3,
	}

	for _, mode := range allModes {
		got, err := QPSK(rx, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if math.IsNaN(got) || math.Abs(got-nuT) > tolerances[mode] {
			t.Fatalf("%v: estimate %v, want %v within %v", mode, got, nuT, tolerances[mode])
		}
	}
}

func TestKnownOffsetAPSK16(t *testing.T) {
	const nuT = 0.005

	rx := channel.AddFrequencyOffset(randomBlock(t, modem.APSK16(0), 19, 256), nuT)

	for _, mode := range allModes {
		got, err := APSK16(rx, mode)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		if math.IsNaN(got) || math.Abs(got-nuT) > 2e-4 {
			t.Fatalf("%v: estimate %v, want %v", mode, got, nuT)
		}
	}
}

func TestKnownOffsetWithNoise(t *testing.T) {
	const nuT = 0.01

	rng := rand.New(rand.NewSource(23))
	rx := channel.AddFrequencyOffset(randomBlock(t, modem.QPSK(), 29, 512), nuT)

	noisy, err := channel.AddNoise(rng, rx, channel.NoiseSNR{SNRdB: 25, Eb: 1})
	if err != nil {
		t.Fatal(err)
	}

	got, err := QPSK(noisy, ModeInterp1)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got) || math.Abs(got-nuT) > 5e-4 {
		t.Fatalf("estimate %v, want %v within 5e-4", got, nuT)
	}
}

func TestNegativeOffset(t *testing.T) {
	const nuT = -0.02

	rx := channel.AddFrequencyOffset(randomBlock(t, modem.QPSK(), 31, 256), nuT)

	got, err := QPSK(rx, ModeCoarse)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-nuT) > 5e-4 {
		t.Fatalf("estimate %v, want %v", got, nuT)
	}
}

func TestOddLengthBlock(t *testing.T) {
	// A non-power-of-two FFT length exercises the mixed-radix fallback.
	const nuT = 0.01

	rx := channel.AddFrequencyOffset(randomBlock(t, modem.QPSK(), 37, 250), nuT)

	got, err := QPSK(rx, ModeInterp1)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got) || math.Abs(got-nuT) > 5e-4 {
		t.Fatalf("estimate %v, want %v", got, nuT)
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		ModeCoarse:  "coarse",
		ModeGauss:   "gauss",
		ModeInterp1: "interp_1",
		ModeInterp2: "interp_2",
		Mode(42):    "unknown",
	} {
		if got := mode.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}
