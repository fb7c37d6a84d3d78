package trace

// Sample is one column's amplitude. Known reports whether the locator
// resolved the column; Value is meaningful only when Known is true.
//
// A tagged value is used instead of a sentinel float so that legitimate
// amplitudes can never collide with the unknown marker.
type Sample struct {
	Value float64
	Known bool
}

// Known returns a resolved sample.
func Known(value float64) Sample {
	return Sample{Value: value, Known: true}
}

// Unknown returns an unresolved sample.
func Unknown() Sample {
	return Sample{}
}

// Sequence is one amplitude entry per frame column. Its length is fixed at
// creation; repair and normalization replace elements in place but never
// add or remove them.
type Sequence []Sample

// NewSequence returns an all-unknown sequence of the given width.
func NewSequence(width int) Sequence {
	if width < 0 {
		width = 0
	}

	return make(Sequence, width)
}

// KnownCount returns the number of resolved entries.
func (s Sequence) KnownCount() int {
	n := 0

	for _, v := range s {
		if v.Known {
			n++
		}
	}

	return n
}

// Values returns the resolved values with unknown entries replaced by fill.
func (s Sequence) Values(fill float64) []float64 {
	out := make([]float64, len(s))

	for i, v := range s {
		if v.Known {
			out[i] = v.Value
		} else {
			out[i] = fill
		}
	}

	return out
}

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}
