package spectrum

import (
	"math"
	"testing"
)

func TestPowerAndMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, -2), 1}

	p := Power(in)
	m := Magnitude(in)

	wantP := []float64{25, 4, 1}
	wantM := []float64{5, 2, 1}
	for i := range in {
		if math.Abs(p[i]-wantP[i]) > 1e-12 {
			t.Fatalf("power[%d] = %v, want %v", i, p[i], wantP[i])
		}
		if math.Abs(m[i]-wantM[i]) > 1e-12 {
			t.Fatalf("magnitude[%d] = %v, want %v", i, m[i], wantM[i])
		}
	}

	if Power(nil) != nil || Magnitude(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestFrequencyAxis(t *testing.T) {
	got := FrequencyAxis(4, 1)
	want := []float64{-0.5, -0.25, 0, 0.25}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// DC sits at the center for odd lengths too.
	got = FrequencyAxis(5, 10)
	if got[2] != 0 || got[0] != -4 || got[4] != 4 {
		t.Fatalf("unexpected axis: %v", got)
	}
}

func TestPeakBin(t *testing.T) {
	idx, v := PeakBin([]float64{0.1, 3, 0.5, 2.9})
	if idx != 1 || v != 3 {
		t.Fatalf("peak (%d, %v), want (1, 3)", idx, v)
	}

	if idx, _ := PeakBin(nil); idx != -1 {
		t.Fatalf("expected -1 for empty input, got %d", idx)
	}
}
