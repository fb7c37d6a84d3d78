package harmonic

import "math"

// Table holds the cosine and sine coefficient per harmonic index. Index 0
// is the DC slot and stays zero; the normalizer removes any offset before
// synthesis. A Table is immutable after creation.
type Table struct {
	cos []float64
	sin []float64
}

func newTable(count int) *Table {
	return &Table{
		cos: make([]float64, count+1),
		sin: make([]float64, count+1),
	}
}

// Len returns the number of harmonics (excluding the unused DC slot).
func (t *Table) Len() int {
	return len(t.cos) - 1
}

// Cos returns a copy of the cosine coefficients, index 0 first.
func (t *Table) Cos() []float64 {
	out := make([]float64, len(t.cos))
	copy(out, t.cos)

	return out
}

// Sin returns a copy of the sine coefficients, index 0 first.
func (t *Table) Sin() []float64 {
	out := make([]float64, len(t.sin))
	copy(out, t.sin)

	return out
}

// At returns the coefficient pair for harmonic k. Out-of-range indices
// return zeros.
func (t *Table) At(k int) (cos, sin float64) {
	if k < 0 || k >= len(t.cos) {
		return 0, 0
	}

	return t.cos[k], t.sin[k]
}

// Render evaluates the Fourier series at a phase in [0, 1) over one period.
// This is the consumption contract an oscillator uses to turn the table
// back into a waveform.
func (t *Table) Render(phase float64) float64 {
	w := 2 * math.Pi * phase
	sum := 0.0

	for k := 1; k < len(t.cos); k++ {
		wk := w * float64(k)
		sum += t.cos[k]*math.Cos(wk) + t.sin[k]*math.Sin(wk)
	}

	return sum
}

// RenderCycle renders one full period into n evenly spaced samples.
func (t *Table) RenderCycle(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = t.Render(float64(i) / float64(n))
	}

	return out
}
