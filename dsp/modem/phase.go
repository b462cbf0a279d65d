package modem

import (
	"fmt"
	"math/cmplx"
)

// PhaseAmbiguity returns the angle between received samples and the known
// unique word, estimated from the correlation sum(rx * conj(uw)).
func PhaseAmbiguity(rx, uw []complex128) (float64, error) {
	if len(rx) == 0 || len(uw) == 0 {
		return 0, ErrEmpty
	}
	if len(rx) != len(uw) {
		return 0, fmt.Errorf("modem: unique word length %d != received %d", len(uw), len(rx))
	}

	var sum complex128
	for i := range rx {
		sum += rx[i] * cmplx.Conj(uw[i])
	}

	return cmplx.Phase(sum), nil
}

// ResolvePhaseAmbiguity removes the constant phase rotation estimated from
// the unique word. rxUW are the received symbols corresponding to the unique
// word uw; the returned slice is rx rotated by the negated estimate.
func ResolvePhaseAmbiguity(rx, rxUW, uw []complex128) ([]complex128, error) {
	a, err := PhaseAmbiguity(rxUW, uw)
	if err != nil {
		return nil, err
	}

	rot := cmplx.Exp(complex(0, -a))
	out := make([]complex128, len(rx))
	for i, v := range rx {
		out[i] = v * rot
	}

	return out, nil
}
