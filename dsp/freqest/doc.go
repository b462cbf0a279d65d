// Package freqest estimates the normalized carrier frequency offset of a
// block of QPSK or 16-APSK samples.
//
// The estimator is stateless and single-shot: a nonlinear transform
// collapses the constellation's rotational symmetry into a residual tone,
// a zero-padded FFT locates the tone's peak bin, and one of three closed-form
// sub-bin interpolators refines the coarse bin frequency. The three
// interpolators trade bias against variance differently; ModeCoarse skips
// refinement entirely.
//
// The fine-correction formulas divide by neighbor-bin power differences, so
// an exactly bin-aligned tone can produce NaN. Callers that need a guarded
// result should check with math.IsNaN.
package freqest
