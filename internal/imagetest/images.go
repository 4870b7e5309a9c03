// SPDX-License-Identifier: EPL-2.0

// Package imagetest builds deterministic images for kernel and batch tests.
package imagetest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
)

// Gradient returns an opaque image whose colour varies along both axes, so
// any geometric change is visible.
func Gradient(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(width-1, 1)),
				G: uint8(y * 255 / max(height-1, 1)),
				B: uint8((x*7 + y*13) % 256),
				A: 0xff,
			})
		}
	}
	return img
}

// Solid returns an opaque image filled with c.
func Solid(width, height int, c color.NRGBA) *image.NRGBA {
	c.A = 0xff
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Random returns an opaque image of uniformly random pixels.
func Random(rng *rand.Rand, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 0xff
			continue
		}
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return img
}

// PNG encodes img, for feeding decoders and file-system fixtures.
func PNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
