// Package wave turns a possibly-gappy amplitude sequence into a
// fully-resolved, zero-mean sample buffer ready for harmonic synthesis.
//
// [Normalize] replaces remaining unknown entries with zero and removes the
// DC offset. [NormalizePeak] is the separate pre-synthesis step that limits
// peak amplitude to the [-1, 1] range; it fails with [ErrSilentCapture]
// when the capture carries no usable signal instead of dividing by a
// near-zero peak.
package wave
