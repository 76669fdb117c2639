package framebuffer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelsToImageFlipsRows(t *testing.T) {
	// Two rows, bottom row red, top row transparent, as GL returns them
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	img, err := PixelsToImage(pixels, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestPixelsToImageSizeMismatch(t *testing.T) {
	_, err := PixelsToImage(make([]byte, 12), 2, 2)
	assert.Error(t, err)

	_, err = PixelsToImage(nil, 0, 4)
	assert.Error(t, err)
}
