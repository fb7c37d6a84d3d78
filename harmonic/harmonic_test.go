package harmonic

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-scope/internal/testutil"
)

func TestSynthesizePureSine(t *testing.T) {
	const n = 64 // power of two, exercises the FFT path

	samples := testutil.DeterministicSine(1, n, 1)

	table, err := Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if table.Len() != n/2 {
		t.Fatalf("harmonic count: got %d, want %d", table.Len(), n/2)
	}

	cosK, sinK := table.At(1)
	if math.Abs(sinK-1) > 1e-9 {
		t.Fatalf("sin[1]: got %v, want 1", sinK)
	}

	if math.Abs(cosK) > 1e-9 {
		t.Fatalf("cos[1]: got %v, want 0", cosK)
	}

	for k := 2; k <= table.Len(); k++ {
		c, s := table.At(k)
		if math.Abs(c) > 1e-9 || math.Abs(s) > 1e-9 {
			t.Fatalf("harmonic %d not silent: cos %v sin %v", k, c, s)
		}
	}
}

func TestSynthesizeDirectNonPowerOfTwo(t *testing.T) {
	const n = 10

	samples := testutil.DeterministicSine(1, n, 0.5)

	table, err := Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if table.Len() != n/2 {
		t.Fatalf("harmonic count: got %d, want %d", table.Len(), n/2)
	}

	_, sinK := table.At(1)
	if math.Abs(sinK-0.5) > 1e-9 {
		t.Fatalf("sin[1]: got %v, want 0.5", sinK)
	}
}

func TestSynthesizeFFTMatchesDirect(t *testing.T) {
	const n = 128

	// Mixed harmonic content with uneven amplitudes.
	samples := make([]float64, n)
	for i := range samples {
		phase := 2 * math.Pi * float64(i) / n
		samples[i] = math.Sin(phase) + 0.4*math.Cos(3*phase) - 0.2*math.Sin(7*phase)
	}

	fast, err := NewSynthesizer(Config{}).Synthesize(samples)
	if err != nil {
		t.Fatalf("fft path: %v", err)
	}

	direct, err := NewSynthesizer(Config{ForceDirect: true}).Synthesize(samples)
	if err != nil {
		t.Fatalf("direct path: %v", err)
	}

	if diff := testutil.MaxAbsDiff(t, fast.Cos(), direct.Cos()); diff > 1e-9 {
		t.Fatalf("cos coefficients diverge: max diff %v", diff)
	}

	if diff := testutil.MaxAbsDiff(t, fast.Sin(), direct.Sin()); diff > 1e-9 {
		t.Fatalf("sin coefficients diverge: max diff %v", diff)
	}
}

func TestSynthesizeDCSlotStaysZero(t *testing.T) {
	samples := testutil.DeterministicSine(2, 32, 1)

	table, err := Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	c0, s0 := table.At(0)
	if c0 != 0 || s0 != 0 {
		t.Fatalf("DC slot populated: cos %v sin %v", c0, s0)
	}
}

func TestSynthesizeHarmonicCap(t *testing.T) {
	samples := make([]float64, 1000)
	samples[1] = 1

	table, err := Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if table.Len() != DefaultMaxHarmonics {
		t.Fatalf("harmonic count: got %d, want %d", table.Len(), DefaultMaxHarmonics)
	}

	limited, err := NewSynthesizer(Config{MaxHarmonics: 16}).Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize limited: %v", err)
	}

	if limited.Len() != 16 {
		t.Fatalf("limited harmonic count: got %d, want 16", limited.Len())
	}

	// Explicit values above the cap are clamped, not honored.
	excess, err := NewSynthesizer(Config{MaxHarmonics: 500}).Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize excess: %v", err)
	}

	if excess.Len() != DefaultMaxHarmonics {
		t.Fatalf("excess harmonic count: got %d, want %d", excess.Len(), DefaultMaxHarmonics)
	}
}

func TestSynthesizeInsufficientSamples(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		_, err := Synthesize(make([]float64, n))
		if !errors.Is(err, ErrInsufficientSamples) {
			t.Fatalf("n=%d: expected ErrInsufficientSamples, got %v", n, err)
		}
	}

	if _, err := Synthesize(make([]float64, 4)); err != nil {
		t.Fatalf("n=4 must synthesize: %v", err)
	}
}

func TestTableAtOutOfRange(t *testing.T) {
	table, err := Synthesize(testutil.DeterministicSine(1, 8, 1))
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if c, s := table.At(-1); c != 0 || s != 0 {
		t.Fatalf("At(-1): got %v %v", c, s)
	}

	if c, s := table.At(table.Len() + 1); c != 0 || s != 0 {
		t.Fatalf("At(len+1): got %v %v", c, s)
	}
}

func TestRenderCycleRoundTrip(t *testing.T) {
	const n = 64

	// Bandlimited input: everything the table can carry, so rendering one
	// cycle reproduces the input.
	samples := make([]float64, n)
	for i := range samples {
		phase := 2 * math.Pi * float64(i) / n
		samples[i] = 0.7*math.Sin(phase) + 0.2*math.Cos(5*phase)
	}

	table, err := Synthesize(samples)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	rendered := table.RenderCycle(n)
	testutil.RequireFinite(t, rendered)
	testutil.RequireSliceNearlyEqual(t, rendered, samples, 1e-9)
}

func TestRenderCycleInvalidLength(t *testing.T) {
	table, err := Synthesize(testutil.DeterministicSine(1, 8, 1))
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if table.RenderCycle(0) != nil {
		t.Fatal("RenderCycle(0) should be nil")
	}
}
