// Package trace locates a waveform trace in a brightness buffer and repairs
// short dropouts.
//
// [Locate] scans a frame column by column and selects at most one vertical
// position per column under a continuity constraint, producing a [Sequence]
// of amplitudes with unresolved columns marked explicitly unknown. [Repair]
// fills short unknown runs by linear interpolation between resolved
// neighbors. [Analyze] computes a per-run diagnostics record for display or
// telemetry.
//
// A capture with no visible trace is not an error at this level: Locate
// returns an all-unknown sequence and callers decide how to report it
// (see [ErrNoTrace]).
package trace
