package harmonic

import "errors"

var (
	// ErrInsufficientSamples reports an input too short to carry even one
	// harmonic (fewer than 4 samples).
	ErrInsufficientSamples = errors.New("harmonic: insufficient samples for synthesis")
)
