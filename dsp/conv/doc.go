// Package conv provides direct linear convolution for real and complex
// sequences, with full/same/valid output trimming, plus the matched-filter
// and pulse-train upsampling operations built on it.
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Direct(signal, kernel)
//	result, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// Matched filtering convolves with the time-reversed conjugate pulse:
//
//	y, err := conv.MatchedFilter(rx, pulse)
package conv
