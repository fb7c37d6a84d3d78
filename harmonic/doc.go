// Package harmonic converts a single-cycle sample buffer into a finite
// Fourier-series coefficient table for periodic-oscillator playback.
//
// [Synthesize] treats the input as exactly one period of a periodic signal
// and projects it onto up to min(128, N/2) cosine/sine harmonic pairs. The
// DC term (index 0) is never populated; the upstream normalizer guarantees
// a zero-mean input, so the series reproduces the waveform without offset.
//
// For power-of-two lengths the projection runs through an FFT plan; other
// lengths use the direct O(N*harmonics) summation, which stays cheap at the
// capped sizes this package is designed for. Both paths produce the same
// coefficients to within numeric tolerance.
package harmonic
