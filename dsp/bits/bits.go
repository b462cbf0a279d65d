package bits

import (
	"errors"
	"fmt"
	"math/rand"
)

// Errors returned by bit/symbol conversion functions.
var (
	ErrInvalidOrder   = errors.New("bits: constellation size must be a power of two >= 2")
	ErrBitCount       = errors.New("bits: bit count must be a multiple of bits per symbol")
	ErrLengthMismatch = errors.New("bits: sequences must have same length")
)

// Random returns n independent uniform bits drawn from rng.
func Random(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(2)
	}

	return out
}

// ToSymbols groups bits MSB-first into symbol indexes for an M-point
// constellation, e.g. 0101 0000 1111 1010 -> 5 0 15 10 for M=16.
func ToSymbols(b []int, m int) ([]int, error) {
	n, err := bitsPerSymbol(m)
	if err != nil {
		return nil, err
	}
	if len(b)%n != 0 {
		return nil, fmt.Errorf("%w: %d bits, %d per symbol", ErrBitCount, len(b), n)
	}

	syms := make([]int, len(b)/n)
	for i := range syms {
		s := 0
		for j := 0; j < n; j++ {
			s = s<<1 | (b[i*n+j] & 1)
		}
		syms[i] = s
	}

	return syms, nil
}

// FromSymbols expands symbol indexes back into their MSB-first bit patterns,
// e.g. 5 0 15 10 -> 0101 0000 1111 1010 for M=16.
func FromSymbols(syms []int, m int) ([]int, error) {
	n, err := bitsPerSymbol(m)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(syms)*n)
	for i, s := range syms {
		for j := 0; j < n; j++ {
			out[i*n+j] = (s >> (n - 1 - j)) & 1
		}
	}

	return out, nil
}

// IntToBinary returns the nbits-wide binary representation of v, MSB first.
// Negative values wrap around two's-complement style, so
// IntToBinary(-1, 4) and IntToBinary(15, 4) both yield 1 1 1 1.
func IntToBinary(v, nbits int) []int {
	out := make([]int, nbits)
	u := uint64(v)
	for j := 0; j < nbits; j++ {
		out[j] = int((u >> (nbits - 1 - j)) & 1)
	}

	return out
}

// ErrorRate returns the fraction of positions where a and b differ.
func ErrorRate(a, b []int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	errs := 0
	for i := range a {
		if a[i] != b[i] {
			errs++
		}
	}

	return float64(errs) / float64(len(a)), nil
}

func bitsPerSymbol(m int) (int, error) {
	if m < 2 || m&(m-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrder, m)
	}

	n := 0
	for 1<<n < m {
		n++
	}

	return n, nil
}
