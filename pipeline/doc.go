// Package pipeline runs a full extraction pass over one captured frame:
// trace location, gap repair, normalization, and harmonic synthesis.
//
// A pass is a synchronous pure transformation of its input buffer; the
// caller issues captures serially and each invocation owns its sequence and
// result. Degenerate captures are first-class reportable outcomes, exposed
// as wrapped sentinels testable with errors.Is:
//
//   - [trace.ErrNoTrace]: every column unresolved after location
//   - [wave.ErrSilentCapture]: peak amplitude below the silence epsilon
//   - [harmonic.ErrInsufficientSamples]: too few columns to synthesize
//
// Even on these errors the returned [Result] carries the diagnostics
// record, so callers can display what the locator saw.
package pipeline
