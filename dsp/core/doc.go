// Package core provides small numeric utilities shared across the library:
// zero-centered index arrays, array centering, modular wrapping, valley
// filling, and tolerance comparison.
package core
