package frame

import "fmt"

// Buffer holds one captured frame as a row-major grid of brightness values.
// Pipeline stages read it; they never mutate it.
type Buffer struct {
	pix    []uint8
	width  int
	height int
}

// New returns a zero-filled Buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: dimensions must be > 0: %dx%d", width, height)
	}

	return &Buffer{
		pix:    make([]uint8, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromSlice wraps an existing row-major pixel slice without copying.
// len(pix) must equal width*height.
func FromSlice(pix []uint8, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: dimensions must be > 0: %dx%d", width, height)
	}

	if len(pix) != width*height {
		return nil, fmt.Errorf("frame: pixel count mismatch: got %d, want %d", len(pix), width*height)
	}

	return &Buffer{pix: pix, width: width, height: height}, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// At returns the brightness at column x, row y.
// Out-of-range coordinates return 0.
func (b *Buffer) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}

	return b.pix[y*b.width+x]
}

// Set writes the brightness at column x, row y.
// Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	b.pix[y*b.width+x] = v
}

// Row returns the backing slice for row y without copying.
func (b *Buffer) Row(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}

	return b.pix[y*b.width : (y+1)*b.width]
}

// Pix returns the backing row-major pixel slice.
func (b *Buffer) Pix() []uint8 { return b.pix }
