// Command scopetrace extracts a playable waveform from a captured trace
// image and prints the extraction diagnostics.
//
// Usage:
//
//	scopetrace [flags] capture.png
//
// The input is expected to be a pre-enhanced (grayscale or binarized)
// capture of a waveform trace. With -out the extracted waveform is rendered
// as a steady tone and written as a mono 16-bit WAV file.
//
// Examples:
//
//	scopetrace capture.png
//	scopetrace -threshold 128 -jump 16 capture.png
//	scopetrace -out tone.wav -freq 220 -seconds 2 capture.png
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-scope/export"
	"github.com/cwbudde/algo-scope/frame"
	"github.com/cwbudde/algo-scope/pipeline"
)

func main() {
	threshold := flag.Int("threshold", 0, "foreground brightness threshold (0 = default)")
	jump := flag.Int("jump", 0, "continuity limit in rows (0 = default)")
	gap := flag.Int("gap", -1, "longest repairable dropout in columns (-1 = default)")
	harmonics := flag.Int("harmonics", 0, "harmonic count limit (0 = default)")
	out := flag.String("out", "", "write an audition tone to this WAV file")
	freq := flag.Float64("freq", 440, "audition tone frequency in Hz")
	rate := flag.Int("rate", 48000, "audition sample rate")
	seconds := flag.Float64("seconds", 1, "audition tone length in seconds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scopetrace [flags] capture.png\n\n")
		fmt.Fprintf(os.Stderr, "Extracts a playable waveform from a captured trace image.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *threshold, *jump, *gap, *harmonics, *out, *freq, *rate, *seconds); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, threshold, jump, gap, harmonics int, out string, freq float64, rate int, seconds float64) error {
	buf, err := loadFrame(path)
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	if threshold > 0 && threshold < 256 {
		opts = append(opts, pipeline.WithThreshold(uint8(threshold)))
	}

	if jump > 0 {
		opts = append(opts, pipeline.WithMaxJump(jump))
	}

	if gap >= 0 {
		opts = append(opts, pipeline.WithMaxGap(gap))
	}

	if harmonics > 0 {
		opts = append(opts, pipeline.WithHarmonics(harmonics))
	}

	res, err := pipeline.Run(buf, opts...)
	if res != nil {
		printMetrics(res)
	}

	if err != nil {
		return err
	}

	fmt.Printf("harmonics: %d\n", res.Table.Len())

	if out == "" {
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	cfg := export.Config{
		SampleRate: rate,
		Frequency:  freq,
		Duration:   seconds,
	}
	if err := export.WriteWAV(f, res.Table, cfg); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%.1f Hz, %.1f s)\n", out, cfg.Frequency, cfg.Duration)

	return nil
}

func loadFrame(path string) (*frame.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return frame.FromImage(img)
}

func printMetrics(res *pipeline.Result) {
	m := res.Metrics

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "columns\t%d\n", m.TotalColumns)
	fmt.Fprintf(tw, "resolved\t%d (%.1f%%)\n", m.Resolved, m.ResolvedPercent)
	fmt.Fprintf(tw, "unresolved\t%d\n", m.Unresolved)
	fmt.Fprintf(tw, "longest gap\t%d\n", m.LongestGap)
	fmt.Fprintf(tw, "mean |delta|\t%.4f\n", m.MeanAbsDelta)
	fmt.Fprintf(tw, "unresolved after repair\t%d\n", m.UnresolvedAfterRepair)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
