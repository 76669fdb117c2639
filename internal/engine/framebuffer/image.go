package framebuffer

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// PixelsToImage wraps bottom-up RGBA rows read from GL into a top-down image.
func PixelsToImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	raw := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return transform.FlipV(raw), nil
}
