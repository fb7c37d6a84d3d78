package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-scope/harmonic"
)

const (
	defaultSampleRate = 48000
	defaultFrequency  = 440
	defaultDuration   = 1.0
	defaultAmplitude  = 0.8
)

// Config holds tone rendering parameters.
type Config struct {
	SampleRate int     // samples per second
	Frequency  float64 // oscillator frequency in Hz
	Duration   float64 // tone length in seconds
	Amplitude  float64 // linear output gain, clamped into [0, 1]
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}

	if cfg.Frequency <= 0 {
		cfg.Frequency = defaultFrequency
	}

	if cfg.Duration <= 0 {
		cfg.Duration = defaultDuration
	}

	if cfg.Amplitude <= 0 || cfg.Amplitude > 1 {
		cfg.Amplitude = defaultAmplitude
	}

	return cfg
}

// RenderTone renders the table as a steady tone using a phase-accumulating
// oscillator over the periodic waveform the table describes.
func RenderTone(table *harmonic.Table, cfg Config) ([]float64, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("export: empty harmonic table")
	}

	cfg = normalizeConfig(cfg)

	n := int(cfg.Duration * float64(cfg.SampleRate))
	if n <= 0 {
		return nil, fmt.Errorf("export: zero-length tone")
	}

	out := make([]float64, n)
	phase := 0.0
	step := cfg.Frequency / float64(cfg.SampleRate)

	for i := range out {
		out[i] = cfg.Amplitude * table.Render(phase)

		phase += step
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}

	return out, nil
}

// WriteWAV renders the table per cfg and writes a mono 16-bit PCM WAV
// stream to w.
func WriteWAV(w io.WriteSeeker, table *harmonic.Table, cfg Config) error {
	cfg = normalizeConfig(cfg)

	samples, err := RenderTone(table, cfg)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, cfg.SampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  cfg.SampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}

	for i, s := range samples {
		buf.Data[i] = int(floatToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("export: failed to write samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: failed to finalize WAV: %w", err)
	}

	return nil
}

// floatToInt16 clamps x into [-1, 1] and scales to 16-bit PCM.
func floatToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767)
}
