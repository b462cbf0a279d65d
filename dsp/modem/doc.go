// Package modem maps symbol indexes to complex constellation points and
// back. It provides the QPSK and 16-APSK constellations consumed by the
// frequency-offset estimators, nearest-point hard decisions, and unique-word
// phase-ambiguity resolution.
package modem
