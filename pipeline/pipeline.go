package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-scope/frame"
	"github.com/cwbudde/algo-scope/harmonic"
	"github.com/cwbudde/algo-scope/trace"
	"github.com/cwbudde/algo-scope/wave"
)

// Result holds the products of one extraction pass. Metrics is always
// populated once location has run, including on error returns.
type Result struct {
	// Sequence is the located, gap-repaired amplitude sequence.
	Sequence trace.Sequence

	// Samples is the fully-resolved, zero-mean, peak-limited single-cycle
	// buffer. Nil when the pass failed before normalization.
	Samples []float64

	// Table is the harmonic coefficient table. Nil when the pass failed
	// before synthesis.
	Table *harmonic.Table

	// Metrics is the diagnostics record for the pass.
	Metrics trace.Metrics
}

// Run executes a full extraction pass over buf: locate, repair, normalize,
// synthesize. See the package documentation for the error taxonomy; the
// returned Result is non-nil whenever location ran, so diagnostics survive
// degenerate captures.
func Run(buf *frame.Buffer, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)

	seq, err := trace.Locate(buf, cfg.Locator)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Sequence: seq,
		Metrics:  trace.Analyze(seq),
	}

	if res.Metrics.Resolved == 0 {
		return res, fmt.Errorf("pipeline: %w", trace.ErrNoTrace)
	}

	trace.Repair(seq, cfg.MaxGap)
	res.Metrics.UnresolvedAfterRepair = len(seq) - seq.KnownCount()

	samples := wave.Normalize(seq)
	if err := wave.NormalizePeak(samples); err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}

	res.Samples = samples

	synth := harmonic.NewSynthesizer(harmonic.Config{MaxHarmonics: cfg.MaxHarmonics})

	table, err := synth.Synthesize(samples)
	if err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}

	res.Table = table

	return res, nil
}
