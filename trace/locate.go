package trace

import (
	"fmt"

	"github.com/cwbudde/algo-scope/frame"
)

const (
	defaultThreshold = 96
	defaultMaxJump   = 24
)

// LocatorConfig holds trace location parameters.
type LocatorConfig struct {
	// Threshold is the minimum brightness for a row to be accepted as part
	// of the trace.
	Threshold uint8

	// MaxJump is the maximum vertical distance, in rows, between the
	// accepted positions of consecutive resolved columns.
	MaxJump int
}

// DefaultLocatorConfig returns locator defaults suitable for a binarized or
// contrast-enhanced capture.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		Threshold: defaultThreshold,
		MaxJump:   defaultMaxJump,
	}
}

func normalizeLocatorConfig(cfg LocatorConfig) LocatorConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = defaultThreshold
	}

	if cfg.MaxJump <= 0 {
		cfg.MaxJump = defaultMaxJump
	}

	return cfg
}

// Locate scans buf column by column and returns one amplitude sample per
// column. The returned sequence has length buf.Width(); columns where no
// eligible row clears the brightness threshold are marked unknown.
//
// Continuity: once a column has been accepted at row y, rows of later
// columns are eligible only within MaxJump of the last accepted row. The
// cursor survives rejected columns, so a short dropout does not release the
// trace lock. It is local to one call; every capture starts unlocked.
//
// Amplitude mapping: row 0 is the top of the frame, so an accepted row y
// maps to 1 - 2*(y/H), which puts the top edge near +1 and the bottom edge
// near -1.
//
// Row 0 itself is never accepted as a trace position. The top scanline of a
// cropped capture region sits under the region border and produced spurious
// locks; the exclusion is a ported boundary policy, not a scan limit (row 0
// still participates in best-row selection and can shadow a dimmer row
// below it).
func Locate(buf *frame.Buffer, cfg LocatorConfig) (Sequence, error) {
	if buf == nil {
		return nil, fmt.Errorf("trace: nil frame buffer")
	}

	cfg = normalizeLocatorConfig(cfg)

	width := buf.Width()
	height := buf.Height()
	seq := NewSequence(width)

	cursor := -1 // last accepted row; -1 while unlocked

	for x := 0; x < width; x++ {
		bestY := -1
		bestB := uint8(0)

		for y := 0; y < height; y++ {
			if cursor >= 0 && absInt(cursor-y) > cfg.MaxJump {
				continue
			}

			b := buf.At(x, y)
			if bestY < 0 || b > bestB {
				bestY = y
				bestB = b
			}
		}

		if bestY <= 0 || bestB < cfg.Threshold {
			continue // column stays unknown, cursor keeps its lock
		}

		seq[x] = Known(1 - 2*float64(bestY)/float64(height))
		cursor = bestY
	}

	return seq, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
