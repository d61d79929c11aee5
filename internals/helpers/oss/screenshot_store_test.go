package helper

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func TestPrepareScreenshotRejectsNonImage(t *testing.T) {
	_, _, _, err := PrepareScreenshot([]byte("hello, this is not an image"), "receipt.txt")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, fe.Code)
}

func TestPrepareScreenshotRejectsEmpty(t *testing.T) {
	_, _, _, err := PrepareScreenshot(nil, "receipt.png")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestPrepareScreenshotKeepsSmallImage(t *testing.T) {
	data, ct, ext, err := PrepareScreenshot(encodePNG(t, 100, 50), "receipt.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, ".png", ext)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestPrepareScreenshotFitsBoundingBox(t *testing.T) {
	// 2000x1000 → dibatasi 800x800 dengan aspect ratio tetap
	data, ct, _, err := PrepareScreenshot(encodeJPEG(t, 2000, 1000), "big.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestExtForContentType(t *testing.T) {
	assert.Equal(t, ".jpg", extForContentType("image/jpeg", "a.jpeg"))
	assert.Equal(t, ".png", extForContentType("image/png", "a.png"))
	assert.Equal(t, ".gif", extForContentType("image/gif", "a.gif"))
	assert.Equal(t, ".webp", extForContentType("image/webp", "a.webp"))
	assert.Equal(t, ".bmp", extForContentType("image/bmp", "a.BMP"))
}
