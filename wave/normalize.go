package wave

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-scope/trace"
)

// silenceEpsilon is the peak below which a waveform is treated as silence.
const silenceEpsilon = 1e-6

// ZeroFill returns seq as a plain sample buffer with every unknown entry
// replaced by zero.
func ZeroFill(seq trace.Sequence) []float64 {
	return seq.Values(0)
}

// RemoveDC subtracts the arithmetic mean from every sample, in place.
// Kahan summation keeps the mean stable for long buffers, so the result is
// zero-mean to within floating-point tolerance for any finite input.
func RemoveDC(samples []float64) {
	if len(samples) == 0 {
		return
	}

	var sum, c float64
	for _, x := range samples {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	mean := sum / float64(len(samples))
	for i := range samples {
		samples[i] -= mean
	}
}

// Normalize zero-fills seq and removes the DC offset, returning the
// resulting sample buffer. It succeeds for any input, including an
// all-unknown sequence (which yields an all-zero buffer).
func Normalize(seq trace.Sequence) []float64 {
	samples := ZeroFill(seq)
	RemoveDC(samples)

	return samples
}

// NormalizePeak limits the peak amplitude of samples to 1, in place.
//
// A peak below the silence epsilon means the frame carried no usable
// waveform; NormalizePeak returns [ErrSilentCapture] and leaves samples
// untouched rather than scaling by the reciprocal of a near-zero value.
// Signals already within [-1, 1] are never amplified.
func NormalizePeak(samples []float64) error {
	if len(samples) == 0 {
		return ErrSilentCapture
	}

	peak := vecmath.MaxAbs(samples)
	if peak < silenceEpsilon {
		return ErrSilentCapture
	}

	if peak > 1 {
		vecmath.ScaleBlockInPlace(samples, 1/peak)
	}

	return nil
}
