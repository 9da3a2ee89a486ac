package client_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	blue = color.RGBA{R: 30, G: 100, B: 220, A: 255}
	pink = color.RGBA{R: 245, G: 160, B: 200, A: 255}
	gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// stripesPNG encodes equal vertical stripes of the given colors.
func stripesPNG(t *testing.T, colors ...color.RGBA) []byte {
	t.Helper()
	const w, h = 30, 30
	img := image.NewRGBA(image.Rect(0, 0, w*len(colors), h))
	for i, c := range colors {
		for x := i * w; x < (i+1)*w; x++ {
			for y := 0; y < h; y++ {
				img.Set(x, y, c)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
