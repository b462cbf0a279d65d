package pulse

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// CPM frequency pulses, each returned with its time axis. The pulses
// integrate to 1/2 over their support, the usual continuous-phase
// modulation normalization.

// LREC returns the rectangular CPM frequency pulse spanning l symbols of
// period t sampled at fsamp.
func LREC(l int, t, fsamp float64) (g, timeAxis []float64) {
	n := int(float64(l) * t * fsamp)
	timeAxis = linspace(0, float64(l)*t, n)

	g = make([]float64, n)
	v := 1 / (2 * float64(l) * t)
	for i := range g {
		g[i] = v
	}

	return g, timeAxis
}

// LRC returns the raised-cosine CPM frequency pulse spanning l symbols of
// period t sampled at fsamp.
func LRC(l int, t, fsamp float64) (g, timeAxis []float64) {
	n := int(float64(l) * t * fsamp)
	timeAxis = linspace(0, float64(l)*t, n)

	g = make([]float64, n)
	lt := float64(l) * t
	for i, tv := range timeAxis {
		g[i] = (1 - math.Cos(2*math.Pi*tv/lt)) / (2 * lt)
	}

	return g, timeAxis
}

// GMSK returns the Gaussian MSK frequency pulse spanning l symbols of period
// t sampled at fsamp, with bandwidth parameter b.
func GMSK(l int, b, t, fsamp float64) (g, timeAxis []float64) {
	lt := float64(l) * t
	step := 1 / fsamp
	n := int(math.Ceil(lt / step))

	timeAxis = make([]float64, n)
	g = make([]float64, n)
	for i := range g {
		tv := -lt/2 + float64(i)*step
		timeAxis[i] = tv
		g[i] = (qfunc(2*math.Pi*b*(tv-t/2)) - qfunc(2*math.Pi*b*(tv+t/2))) / (2 * t)
	}

	return g, timeAxis
}

// qfunc returns the area under the right tail [x, inf) of the standard
// normal distribution.
func qfunc(x float64) float64 {
	return distuv.UnitNormal.Survival(x)
}

// linspace returns n points from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}
