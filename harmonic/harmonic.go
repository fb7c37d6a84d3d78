package harmonic

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// DefaultMaxHarmonics caps the coefficient count; beyond roughly 128
	// harmonics a screen-resolution capture contributes only noise.
	DefaultMaxHarmonics = 128

	minSamples = 4
)

// Config holds synthesis parameters.
type Config struct {
	// MaxHarmonics limits the number of coefficient pairs. Values <= 0
	// or above DefaultMaxHarmonics select DefaultMaxHarmonics. The
	// effective count is additionally capped at N/2 for an N-sample
	// input.
	MaxHarmonics int

	// ForceDirect disables the FFT fast path for power-of-two inputs.
	// Both paths are numerically equivalent; this exists for comparison
	// and benchmarking.
	ForceDirect bool
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxHarmonics <= 0 || cfg.MaxHarmonics > DefaultMaxHarmonics {
		cfg.MaxHarmonics = DefaultMaxHarmonics
	}

	return cfg
}

// Synthesizer computes harmonic tables from single-cycle sample buffers.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer creates a synthesizer with the given configuration.
func NewSynthesizer(cfg Config) *Synthesizer {
	return &Synthesizer{cfg: normalizeConfig(cfg)}
}

// Synthesize is a one-shot projection with default configuration.
func Synthesize(samples []float64) (*Table, error) {
	return NewSynthesizer(Config{}).Synthesize(samples)
}

// Synthesize projects samples, one period of a periodic signal, onto
// cosine/sine harmonic pairs:
//
//	cos[k] = (2/N) * sum_i samples[i] * cos(2*pi*k*i/N)
//	sin[k] = (2/N) * sum_i samples[i] * sin(2*pi*k*i/N)
//
// for k = 1..min(MaxHarmonics, N/2). Index 0 of the table remains zero.
// Inputs shorter than 4 samples fail with [ErrInsufficientSamples].
func (s *Synthesizer) Synthesize(samples []float64) (*Table, error) {
	n := len(samples)
	if n < minSamples {
		return nil, fmt.Errorf("%w: got %d samples, need at least %d", ErrInsufficientSamples, n, minSamples)
	}

	count := s.cfg.MaxHarmonics
	if half := n / 2; count > half {
		count = half
	}

	if count < 1 {
		return nil, fmt.Errorf("%w: %d samples yield no harmonics", ErrInsufficientSamples, n)
	}

	if !s.cfg.ForceDirect && isPowerOfTwo(n) {
		return synthesizeFFT(samples, count)
	}

	return synthesizeDirect(samples, count), nil
}

// synthesizeDirect evaluates the projection sums as dot products against
// precomputed basis rows. N and count are both small and bounded, so the
// quadratic cost is acceptable without a fast transform.
func synthesizeDirect(samples []float64, count int) *Table {
	n := len(samples)
	t := newTable(count)

	cosRow := make([]float64, n)
	sinRow := make([]float64, n)
	scale := 2 / float64(n)

	for k := 1; k <= count; k++ {
		step := 2 * math.Pi * float64(k) / float64(n)
		for i := 0; i < n; i++ {
			phase := step * float64(i)
			cosRow[i] = math.Cos(phase)
			sinRow[i] = math.Sin(phase)
		}

		t.cos[k] = scale * vecmath.DotProduct(samples, cosRow)
		t.sin[k] = scale * vecmath.DotProduct(samples, sinRow)
	}

	return t
}

// synthesizeFFT computes the same projection through a forward FFT. With
// X[k] = sum_i x[i] * exp(-2*pi*j*k*i/N), the series coefficients are
// cos[k] = (2/N)*Re X[k] and sin[k] = -(2/N)*Im X[k].
func synthesizeFFT(samples []float64, count int) (*Table, error) {
	n := len(samples)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("harmonic: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("harmonic: forward FFT failed: %w", err)
	}

	t := newTable(count)
	scale := 2 / float64(n)

	for k := 1; k <= count; k++ {
		t.cos[k] = scale * real(out[k])
		t.sin[k] = -scale * imag(out[k])
	}

	return t, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
