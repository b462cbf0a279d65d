// Package filter designs and applies the FIR primitives whose convolution
// edges need correction: a Blackman-windowed differentiator and an
// ideal-sinc fractional delay.
//
// Both application paths guarantee output length equals input length. The
// derivative exposes a choice between linear boundary extrapolation
// ([Derivative]) and trimming with optional zeroing of the unreliable edge
// region ([DerivativeZeroEdge]); the fractional delay always extrapolates,
// since a locally linear trend is a safe assumption for band-limited input.
package filter
