package trace

import "math"

// Metrics summarizes one location pass for display or telemetry. The record
// carries no control-flow meaning; callers decide what to do with a capture
// from the returned errors, not from these numbers.
type Metrics struct {
	TotalColumns    int
	Resolved        int
	ResolvedPercent float64
	Unresolved      int

	// LongestGap is the length of the longest run of consecutive
	// unresolved columns, including leading and trailing runs.
	LongestGap int

	// MeanAbsDelta is the mean absolute amplitude change between
	// successive resolved columns, a rough roughness/noise indicator.
	MeanAbsDelta float64

	// UnresolvedAfterRepair is filled in by callers that re-analyze after
	// [Repair]; Analyze itself sets it equal to Unresolved.
	UnresolvedAfterRepair int
}

// Analyze computes diagnostics for seq in a single pass.
func Analyze(seq Sequence) Metrics {
	m := Metrics{TotalColumns: len(seq)}

	run := 0
	deltaSum := 0.0
	deltaCount := 0
	havePrev := false
	prev := 0.0

	for _, s := range seq {
		if !s.Known {
			run++
			if run > m.LongestGap {
				m.LongestGap = run
			}

			continue
		}

		run = 0
		m.Resolved++

		if havePrev {
			deltaSum += math.Abs(s.Value - prev)
			deltaCount++
		}

		prev = s.Value
		havePrev = true
	}

	m.Unresolved = m.TotalColumns - m.Resolved
	m.UnresolvedAfterRepair = m.Unresolved

	if m.TotalColumns > 0 {
		m.ResolvedPercent = 100 * float64(m.Resolved) / float64(m.TotalColumns)
	}

	if deltaCount > 0 {
		m.MeanAbsDelta = deltaSum / float64(deltaCount)
	}

	return m
}
