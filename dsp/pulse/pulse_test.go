package pulse

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-digicomm/internal/testutil"
)

func TestDesignRaisedCosineUnitEnergy(t *testing.T) {
	alphas := []float64{0, 0.22, 0.25, 0.35, 1}
	spans := []int{4, 6, 10}
	spss := []int{2, 4, 8}

	for _, alpha := range alphas {
		for _, span := range spans {
			for _, sps := range spss {
				for _, shape := range []Shape{ShapeSqrt, ShapeNormal} {
					taps, axis, err := DesignRaisedCosine(alpha, span, sps, 1, shape)
					if err != nil {
						t.Fatalf("alpha=%v span=%d sps=%d %v: %v", alpha, span, sps, shape, err)
					}

					if len(taps) != span*sps+1 || len(axis) != span*sps+1 {
						t.Fatalf("alpha=%v span=%d sps=%d: lengths %d/%d",
							alpha, span, sps, len(taps), len(axis))
					}

					testutil.RequireFinite(t, taps)

					energy := 0.0
					for _, h := range taps {
						energy += h * h
					}
					if math.Abs(energy-1) > 1e-12 {
						t.Fatalf("alpha=%v span=%d sps=%d %v: energy %v",
							alpha, span, sps, shape, energy)
					}
				}
			}
		}
	}
}

func TestDesignRaisedCosineSymmetry(t *testing.T) {
	taps, axis, err := DesignRaisedCosine(0.35, 8, 4, 1, ShapeSqrt)
	if err != nil {
		t.Fatal(err)
	}

	n := len(taps)
	for i := range taps {
		if math.Abs(taps[i]-taps[n-1-i]) > 1e-12 {
			t.Fatalf("taps asymmetric at %d", i)
		}
	}

	// Time axis is zero-centered with spacing Ts/sps.
	if axis[n/2] != 0 {
		t.Fatalf("center time %v, want 0", axis[n/2])
	}
	if math.Abs(axis[1]-axis[0]-0.25) > 1e-12 {
		t.Fatalf("spacing %v, want 0.25", axis[1]-axis[0])
	}
}

func TestDesignRaisedCosineSingularPoints(t *testing.T) {
	// alpha=0.25 with sps=4 places samples exactly on t = +-Ts/(4 alpha);
	// the limit branch must keep them finite.
	taps, _, err := DesignRaisedCosine(0.25, 6, 4, 1, ShapeSqrt)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFinite(t, taps)

	// alpha=0.5 with sps=2 hits t = +-Ts/(2 alpha) for the normal shape.
	taps, _, err = DesignRaisedCosine(0.5, 6, 2, 1, ShapeNormal)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFinite(t, taps)
}

func TestDesignRaisedCosineShapesDiffer(t *testing.T) {
	sqrt, _, err := DesignRaisedCosine(0.35, 6, 4, 1, ShapeSqrt)
	if err != nil {
		t.Fatal(err)
	}
	normal, _, err := DesignRaisedCosine(0.35, 6, 4, 1, ShapeNormal)
	if err != nil {
		t.Fatal(err)
	}

	maxDiff := 0.0
	for i := range sqrt {
		if d := math.Abs(sqrt[i] - normal[i]); d > maxDiff {
			maxDiff = d
		}
	}
	if maxDiff < 1e-3 {
		t.Fatal("sqrt and normal shapes should differ")
	}
}

func TestDesignRaisedCosineValidation(t *testing.T) {
	if _, _, err := DesignRaisedCosine(1.5, 6, 4, 1, ShapeSqrt); !errors.Is(err, ErrInvalidRolloff) {
		t.Fatalf("expected ErrInvalidRolloff, got %v", err)
	}
	if _, _, err := DesignRaisedCosine(0.35, 0, 4, 1, ShapeSqrt); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("expected ErrInvalidSpan, got %v", err)
	}
	if _, _, err := DesignRaisedCosine(0.35, 6, 4, 1, Shape(9)); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestCPMPulsesIntegrateToHalf(t *testing.T) {
	const fsamp = 64.0

	cases := []struct {
		name string
		g    []float64
	}{
		{"lrec", first(LREC(4, 1, fsamp))},
		{"lrc", first(LRC(4, 1, fsamp))},
		{"gmsk", first(GMSK(4, 0.3, 1, fsamp))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.RequireFinite(t, tc.g)

			sum := 0.0
			for _, v := range tc.g {
				sum += v
			}
			if math.Abs(sum/fsamp-0.5) > 0.02 {
				t.Fatalf("integral %v, want about 0.5", sum/fsamp)
			}
		})
	}
}

func TestGMSKSymmetric(t *testing.T) {
	g, axis := GMSK(4, 0.3, 1, 32)

	if len(g) != len(axis) {
		t.Fatalf("lengths %d/%d", len(g), len(axis))
	}

	// The grid runs -LT/2 .. LT/2-1/fsamp, so the mirror of index i is n-i.
	n := len(g)
	for i := 1; i < n/2; i++ {
		if math.Abs(g[i]-g[n-i]) > 1e-12 {
			t.Fatalf("asymmetric at %d: %v vs %v", i, g[i], g[n-i])
		}
	}
}

func first(g, _ []float64) []float64 { return g }
