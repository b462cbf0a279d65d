// Command fostat simulates a block of modulated symbols through a noisy
// channel with a known frequency offset and tabulates the estimation error
// of every interpolation mode.
//
// Usage:
//
//	fostat [flags]
//
// Examples:
//
//	fostat -mod qpsk -offset 0.01 -snr 20
//	fostat -mod 16apsk -n 1024 -offset 0.005 -snr 30 -seed 7
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-digicomm/dsp/channel"
	"github.com/cwbudde/algo-digicomm/dsp/freqest"
	"github.com/cwbudde/algo-digicomm/dsp/modem"
)

func main() {
	var (
		modName = flag.String("mod", "qpsk", "modulation: qpsk or 16apsk")
		n       = flag.Int("n", 512, "block length in symbols")
		offset  = flag.Float64("offset", 0.01, "frequency offset in cycles/sample")
		snr     = flag.Float64("snr", 30, "SNR in dB (negative infinity disables noise)")
		seed    = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	var c *modem.Constellation
	var est func([]complex128, freqest.Mode) (float64, error)
	switch *modName {
	case "qpsk":
		c = modem.QPSK()
		est = freqest.QPSK
	case "16apsk":
		c = modem.APSK16(0)
		est = freqest.APSK16
	default:
		fmt.Fprintf(os.Stderr, "unknown modulation %q\n", *modName)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	syms := make([]int, *n)
	for i := range syms {
		syms[i] = rng.Intn(c.Size())
	}

	iqs, err := c.SymbolsToIQ(syms)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rx := channel.AddFrequencyOffset(iqs, *offset)
	if !math.IsInf(*snr, -1) {
		rx, err = channel.AddNoise(rng, rx, channel.NoiseSNR{SNRdB: *snr, Eb: 1})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Printf("%s, %d symbols, offset %g cycles/sample, SNR %g dB\n\n", c.Name(), *n, *offset, *snr)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tESTIMATE\tERROR")

	for _, mode := range []freqest.Mode{
		freqest.ModeCoarse,
		freqest.ModeGauss,
		freqest.ModeInterp1,
		freqest.ModeInterp2,
	} {
		v, err := est(rx, mode)
		if err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\t\n", mode, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%+.6e\t%+.2e\n", mode, v, v-*offset)
	}

	tw.Flush()
}
