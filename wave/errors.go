package wave

import "errors"

var (
	// ErrSilentCapture reports a waveform whose peak amplitude is below
	// the silence epsilon after normalization. The capture is unusable for
	// synthesis; the condition is reportable, not fatal.
	ErrSilentCapture = errors.New("wave: capture is silent, no usable waveform")
)
