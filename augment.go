// SPDX-License-Identifier: EPL-2.0

package neuroaug

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/audiofx"
	"github.com/KuNaL8103/Neuro-Aug/augment"
	"github.com/KuNaL8103/Neuro-Aug/imagefx"
	"github.com/KuNaL8103/Neuro-Aug/raster"
)

// NewImageComposer binds the image pool to the chain-abort policy: a failing
// kernel throws away the whole chain and the input comes back untouched.
func NewImageComposer(logger *zap.Logger, opts ...augment.Option) *augment.Composer[*raster.Image] {
	opts = append([]augment.Option{augment.WithLogger(logger)}, opts...)
	return augment.New(imagefx.Pool(), augment.ChainAbort, opts...)
}

// NewAudioComposer binds the audio pool to the skip-and-continue policy: a
// failing kernel is dropped and the rest of the chain still runs.
func NewAudioComposer(logger *zap.Logger, opts ...augment.Option) *augment.Composer[*audio.Clip] {
	opts = append([]augment.Option{augment.WithLogger(logger)}, opts...)
	return augment.New(audiofx.Pool(), augment.SkipAndContinue, opts...)
}

var (
	imageComposer = NewImageComposer(nil)
	audioComposer = NewAudioComposer(nil)
)

// AugmentImage applies 1 to 4 randomly chosen image kernels to img. img may
// be modified; pass a clone to keep the original. Kernel failures never
// escape: the result is then img as it was on entry.
func AugmentImage(rng *rand.Rand, img *raster.Image) *raster.Image {
	return imageComposer.Augment(rng, img).Buffer
}

// AugmentAudio applies 1 to 4 randomly chosen audio kernels to c, skipping
// any kernel that fails. c may be modified; pass a clone to keep the
// original.
func AugmentAudio(rng *rand.Rand, c *audio.Clip) *audio.Clip {
	return audioComposer.Augment(rng, c).Buffer
}
