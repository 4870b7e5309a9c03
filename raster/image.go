// SPDX-License-Identifier: EPL-2.0

package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // register BMP with image.Decode
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 75

// Image is an opaque RGB8 raster. It is backed by an *image.NRGBA whose alpha
// channel is always 255, so every colour channel is a plain uint8 in [0,255].
type Image struct {
	px *image.NRGBA
}

// New returns an opaque black image.
func New(width, height int) *Image {
	return &Image{px: imaging.New(width, height, color.Black)}
}

// FromImage converts any decoded colour model to opaque RGB. Alpha is
// dropped: colour values are kept as stored and every pixel becomes opaque.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	px := imaging.Clone(src)
	for i := 3; i < len(px.Pix); i += 4 {
		px.Pix[i] = 0xff
	}

	return &Image{px: px}, nil
}

// Wrap adopts px without copying. The caller must not use px afterwards.
func Wrap(px *image.NRGBA) *Image {
	for i := 3; i < len(px.Pix); i += 4 {
		px.Pix[i] = 0xff
	}
	return &Image{px: px}
}

func (m *Image) NRGBA() *image.NRGBA { return m.px }
func (m *Image) Width() int          { return m.px.Rect.Dx() }
func (m *Image) Height() int         { return m.px.Rect.Dy() }

// Clone returns a deep copy that shares no memory with m.
func (m *Image) Clone() *Image {
	px := &image.NRGBA{
		Pix:    make([]uint8, len(m.px.Pix)),
		Stride: m.px.Stride,
		Rect:   m.px.Rect,
	}
	copy(px.Pix, m.px.Pix)
	return &Image{px: px}
}

// RGB returns the colour of the pixel at (x, y) relative to the top-left
// corner.
func (m *Image) RGB(x, y int) (r, g, b uint8) {
	i := m.offset(x, y)
	return m.px.Pix[i], m.px.Pix[i+1], m.px.Pix[i+2]
}

func (m *Image) SetRGB(x, y int, r, g, b uint8) {
	i := m.offset(x, y)
	m.px.Pix[i], m.px.Pix[i+1], m.px.Pix[i+2], m.px.Pix[i+3] = r, g, b, 0xff
}

func (m *Image) offset(x, y int) int {
	return y*m.px.Stride + x*4
}

// Equal reports whether both images have the same size and pixels.
func (m *Image) Equal(o *Image) bool {
	if m.Width() != o.Width() || m.Height() != o.Height() {
		return false
	}

	rowBytes := m.Width() * 4
	for y := range m.Height() {
		a := m.px.Pix[y*m.px.Stride : y*m.px.Stride+rowBytes]
		b := o.px.Pix[y*o.px.Stride : y*o.px.Stride+rowBytes]
		if !bytes.Equal(a, b) {
			return false
		}
	}
	return true
}

// Decode reads a JPEG, PNG, GIF, BMP or TIFF image and converts it to RGB.
func Decode(r io.Reader) (*Image, error) {
	src, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(src)
}

// EncodeJPEG writes m as a baseline JPEG at quality (1..100).
func EncodeJPEG(w io.Writer, m *Image, quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}
	if err := imaging.Encode(w, m.px, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
