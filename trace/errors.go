package trace

import "errors"

var (
	// ErrNoTrace reports a capture in which no column resolved to a trace
	// position. It is a reportable outcome, not a precondition violation:
	// downstream normalization still succeeds on the all-unknown sequence.
	ErrNoTrace = errors.New("trace: no trace found in capture")
)
