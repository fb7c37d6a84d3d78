package frame

import (
	"fmt"
	"image"
)

// FromGray copies a grayscale image into a Buffer.
func FromGray(img *image.Gray) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("frame: nil image")
	}

	bounds := img.Bounds()

	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < buf.height; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.Row(y), img.Pix[off:off+buf.width])
	}

	return buf, nil
}

// FromImage converts any image to a brightness Buffer using BT.601 luma
// weights. This is a plain colorspace conversion; enhancement (blur,
// thresholding, morphology) is the caller's concern.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("frame: nil image")
	}

	if gray, ok := img.(*image.Gray); ok {
		return FromGray(gray)
	}

	bounds := img.Bounds()

	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// 16-bit channels; luma scaled back to 8 bits.
			luma := (299*r + 587*g + 114*b) / 1000
			buf.pix[y*buf.width+x] = uint8(luma >> 8)
		}
	}

	return buf, nil
}
