package export

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-scope/harmonic"
	"github.com/cwbudde/algo-scope/internal/testutil"
)

func sineTable(t *testing.T) *harmonic.Table {
	t.Helper()

	table, err := harmonic.Synthesize(testutil.DeterministicSine(1, 64, 1))
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	return table
}

func TestRenderTone(t *testing.T) {
	cfg := Config{
		SampleRate: 8000,
		Frequency:  1000,
		Duration:   0.01,
		Amplitude:  0.5,
	}

	tone, err := RenderTone(sineTable(t), cfg)
	if err != nil {
		t.Fatalf("RenderTone: %v", err)
	}

	if len(tone) != 80 {
		t.Fatalf("tone length: got %d, want 80", len(tone))
	}

	testutil.RequireFinite(t, tone)

	// The table holds a pure sine, so the tone is amplitude*sin(2*pi*f*t).
	for i, got := range tone {
		want := 0.5 * math.Sin(2*math.Pi*1000*float64(i)/8000)
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestRenderToneEmptyTable(t *testing.T) {
	if _, err := RenderTone(nil, Config{}); err == nil {
		t.Fatal("expected error for nil table")
	}
}

func TestWriteWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cfg := Config{
		SampleRate: 8000,
		Frequency:  440,
		Duration:   0.1,
		Amplitude:  0.8,
	}

	if err := WriteWAV(f, sineTable(t), cfg); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if dec.SampleRate != 8000 || dec.NumChans != 1 || dec.BitDepth != 16 {
		t.Fatalf("format: rate %d chans %d depth %d", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}

	if got := len(pcm.Data); got != 800 {
		t.Fatalf("sample count: got %d, want 800", got)
	}

	peak := 0
	for _, s := range pcm.Data {
		if s > peak {
			peak = s
		}
	}

	// 0.8 amplitude sine scaled to 16-bit PCM.
	amp := 0.8
	want := int(amp * 32767)
	if peak < want-400 || peak > want+400 {
		t.Fatalf("peak: got %d, want about %d", peak, want)
	}
}

func TestFloatToInt16Clamps(t *testing.T) {
	if got := floatToInt16(2); got != 32767 {
		t.Fatalf("clamp high: got %d", got)
	}

	if got := floatToInt16(-2); got != -32767 {
		t.Fatalf("clamp low: got %d", got)
	}

	if got := floatToInt16(0); got != 0 {
		t.Fatalf("zero: got %d", got)
	}
}
