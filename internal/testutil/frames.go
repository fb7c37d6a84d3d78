package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-scope/frame"
)

// NewFrame returns a zero-filled frame buffer, failing t on bad dimensions.
func NewFrame(t *testing.T, width, height int) *frame.Buffer {
	t.Helper()

	buf, err := frame.New(width, height)
	if err != nil {
		t.Fatalf("frame.New(%d, %d): %v", width, height, err)
	}

	return buf
}

// PaintTrace sets one bright pixel per column at the row returned by rowAt.
// Columns where rowAt returns a row outside the frame are left dark.
func PaintTrace(buf *frame.Buffer, brightness uint8, rowAt func(x int) int) {
	for x := 0; x < buf.Width(); x++ {
		y := rowAt(x)
		if y >= 0 && y < buf.Height() {
			buf.Set(x, y, brightness)
		}
	}
}

// SineTraceRow returns a rowAt func tracing one sine period across the
// frame, centered vertically with the given row amplitude.
func SineTraceRow(width, height, rowAmplitude int) func(x int) int {
	mid := height / 2

	return func(x int) int {
		phase := 2 * math.Pi * float64(x) / float64(width)
		return mid - int(math.Round(float64(rowAmplitude)*math.Sin(phase)))
	}
}
