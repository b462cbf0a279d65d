package freqest

import (
	"testing"

	"github.com/cwbudde/algo-digicomm/dsp/channel"
	"github.com/cwbudde/algo-digicomm/internal/testutil"
)

func BenchmarkQPSK(b *testing.B) {
	rx := channel.AddFrequencyOffset(testutil.ComplexTone(0, 512), 0.01)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := QPSK(rx, ModeInterp1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAPSK16Coarse(b *testing.B) {
	rx := channel.AddFrequencyOffset(testutil.ComplexTone(0, 512), 0.002)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := APSK16(rx, ModeCoarse); err != nil {
			b.Fatal(err)
		}
	}
}
