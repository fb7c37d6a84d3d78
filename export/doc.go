// Package export renders a harmonic table into an audible tone and writes
// it as a mono 16-bit PCM WAV file, for auditioning extracted waveforms
// outside the live oscillator path.
package export
