// Package channel simulates link impairments on complex sample sequences:
// additive white Gaussian noise, frequency offset, and phase offset.
//
// All randomness flows through an explicitly passed *rand.Rand so
// simulations stay reproducible under a caller-supplied seed.
package channel
