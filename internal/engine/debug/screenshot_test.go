package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 7_000_000, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "facade")
	sc.now = fixedClock

	assert.Equal(t, filepath.Join("shots", "facade_2024-03-09_14-05-06.007.png"), sc.GenerateFilename())

	sc.outputDir = ""
	assert.Equal(t, "facade_2024-03-09_14-05-06.007.png", sc.GenerateFilename())
}

func TestCaptureFromPixelsKeepsTransparency(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sc := NewScreenshotCapture(dir, "bake")

	// 1x2, bottom pixel opaque green, top pixel fully transparent
	pixels := []byte{
		0, 255, 0, 255,
		0, 0, 0, 0,
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "bake_"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 1, 2), img.Bounds())
	_, _, _, topAlpha := img.At(0, 0).RGBA()
	assert.Zero(t, topAlpha)
	assert.Equal(t, color.NRGBAModel.Convert(color.RGBA{G: 255, A: 255}), color.NRGBAModel.Convert(img.At(0, 1)))
}

func TestCaptureFromPixelsBadSize(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "bad")
	_, err := sc.CaptureFromPixels([]byte{1, 2, 3}, 1, 1)
	assert.Error(t, err)
}
