// SPDX-License-Identifier: EPL-2.0

package imagefx

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/KuNaL8103/Neuro-Aug/augment"
	"github.com/KuNaL8103/Neuro-Aug/raster"
)

// Effect is an image kernel.
type Effect = augment.Effect[*raster.Image]

// Pool returns the image kernels in declaration order.
func Pool() []Effect {
	return []Effect{
		GaussianBlur{},
		Brightness{},
		Contrast{},
		NoiseInjection{},
		Rotation{},
		Mirror{},
		AffineShift{},
	}
}

// GaussianBlur blurs with a radius drawn from [0.5, 1.5).
type GaussianBlur struct{}

func (GaussianBlur) Name() string { return "gaussian_blur" }

func (GaussianBlur) Apply(rng *rand.Rand, img *raster.Image) (*raster.Image, error) {
	return Blur(img, uniform(rng, MinBlurRadius, MaxBlurRadius))
}

// Blur applies a separable gaussian blur of the given radius (sigma).
func Blur(img *raster.Image, radius float64) (*raster.Image, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return raster.Wrap(imaging.Blur(img.NRGBA(), radius)), nil
}

// Brightness scales every channel by a factor drawn from [0.8, 1.2).
type Brightness struct{}

func (Brightness) Name() string { return "brightness" }

func (Brightness) Apply(rng *rand.Rand, img *raster.Image) (*raster.Image, error) {
	return Brighten(img, uniform(rng, MinFactor, MaxFactor))
}

// Brighten multiplies every channel by factor, clamping to [0,255].
func Brighten(img *raster.Image, factor float64) (*raster.Image, error) {
	if factor < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	out := imaging.AdjustFunc(img.NRGBA(), func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(float64(c.R) * factor),
			G: clamp8(float64(c.G) * factor),
			B: clamp8(float64(c.B) * factor),
			A: 0xff,
		}
	})
	return raster.Wrap(out), nil
}

// Contrast scales distance from the mean grey level by a factor drawn from
// [0.8, 1.2).
type Contrast struct{}

func (Contrast) Name() string { return "contrast" }

func (Contrast) Apply(rng *rand.Rand, img *raster.Image) (*raster.Image, error) {
	return AdjustContrast(img, uniform(rng, MinFactor, MaxFactor))
}

// AdjustContrast maps every channel c to mean + (c-mean)*factor, where mean
// is the rounded mean luminance of the image (ITU-R 601-2 weights).
func AdjustContrast(img *raster.Image, factor float64) (*raster.Image, error) {
	if factor < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	mean := MeanLuminance(img)
	out := imaging.AdjustFunc(img.NRGBA(), func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(mean + (float64(c.R)-mean)*factor),
			G: clamp8(mean + (float64(c.G)-mean)*factor),
			B: clamp8(mean + (float64(c.B)-mean)*factor),
			A: 0xff,
		}
	})
	return raster.Wrap(out), nil
}

// MeanLuminance is the mean 8-bit grey level, rounded to an integer.
func MeanLuminance(img *raster.Image) float64 {
	w, h := img.Width(), img.Height()

	var sum int64
	for y := range h {
		for x := range w {
			r, g, b := img.RGB(x, y)
			sum += (299*int64(r) + 587*int64(g) + 114*int64(b) + 500) / 1000
		}
	}

	n := int64(w * h)
	return float64((sum + n/2) / n)
}

// NoiseInjection adds independent integer noise in [-20, 20] to every
// channel of every pixel.
type NoiseInjection struct{}

func (NoiseInjection) Name() string { return "noise_injection" }

func (NoiseInjection) Apply(rng *rand.Rand, img *raster.Image) (*raster.Image, error) {
	AddNoise(rng, img, NoiseAmplitude)
	return img, nil
}

// AddNoise perturbs img in place. Pixels are visited in row-major order so
// a seeded rng always produces the same image.
func AddNoise(rng *rand.Rand, img *raster.Image, amplitude int) {
	px := img.NRGBA()
	for y := range img.Height() {
		row := px.Pix[y*px.Stride : y*px.Stride+img.Width()*4]
		for i := 0; i < len(row); i += 4 {
			for c := range 3 {
				n := uniformInt(rng, -amplitude, amplitude)
				row[i+c] = clamp8(float64(int(row[i+c]) + n))
			}
		}
	}
}

// Rotation turns the image counter-clockwise by 90, 180 or 270 degrees.
type Rotation struct{}

func (Rotation) Name() string { return "rotation" }

func (Rotation) Apply(rng *rand.Rand, img *raster.Image) (*raster.Image, error) {
	return Rotate(img, Angles[rng.IntN(len(Angles))])
}

// Rotate is lossless; 90 and 270 swap width and height.
func Rotate(img *raster.Image, angle int) (*raster.Image, error) {
	var out *image.NRGBA
	switch angle {
	case 90:
		out = imaging.Rotate90(img.NRGBA())
	case 180:
		out = imaging.Rotate180(img.NRGBA())
	case 270:
		out = imaging.Rotate270(img.NRGBA())
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAngle, angle)
	}
	return raster.Wrap(out), nil
}

// Mirror flips the image horizontally. It is its own inverse.
type Mirror struct{}

func (Mirror) Name() string { return "mirror" }

func (Mirror) Apply(_ *rand.Rand, img *raster.Image) (*raster.Image, error) {
	return Flip(img), nil
}

func Flip(img *raster.Image) *raster.Image {
	return raster.Wrap(imaging.FlipH(img.NRGBA()))
}

// AffineShift translates the image by sx in [20, 30] and sy in [-10, 10].
type AffineShift struct{}

func (AffineShift) Name() string { return "affine_shift" }

func (AffineShift) Apply(rng *rand.Rand, img *raster.Image) (*raster.Image, error) {
	sx := uniformInt(rng, MinShiftX, MaxShiftX)
	sy := uniformInt(rng, MinShiftY, MaxShiftY)
	return Shift(img, sx, sy), nil
}

// Shift applies the affine map (1, 0, sx, 0, 1, sy): output pixel (x, y)
// takes input pixel (x+sx, y+sy). Pixels with no source are opaque black.
func Shift(img *raster.Image, sx, sy int) *raster.Image {
	bg := imaging.New(img.Width(), img.Height(), color.Black)
	return raster.Wrap(imaging.Paste(bg, img.NRGBA(), image.Pt(-sx, -sy)))
}
