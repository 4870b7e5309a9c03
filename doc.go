// SPDX-License-Identifier: EPL-2.0

// Package neuroaug expands media datasets with randomised variants of each
// input: images and audio clips are run through a short, randomly chosen
// chain of transformation kernels.
//
// # Quick Start
//
// Seed a generator and hand a buffer to AugmentImage or AugmentAudio:
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//
//	img, _ := raster.Decode(file)
//	out := neuroaug.AugmentImage(rng, img.Clone())
//
//	reg := neuroaug.NewAudioRegistry("")
//	clip, _ := reg.DecodeClip("wav", file)
//	variant := neuroaug.AugmentAudio(rng, clip.Clone())
//
// Every call draws a chain length k from 1..4 (capped by the pool size),
// samples k distinct kernels and applies them in the sampled order. All
// randomness comes from the supplied *rand.Rand, so a seeded generator
// reproduces the same variants.
//
// # Kernels
//
// Images (package imagefx): gaussian blur, brightness, contrast, per-channel
// noise, 90/180/270 degree rotation, horizontal mirror, affine shift.
//
// Audio (package audiofx): coloured noise overlay, time stretch, pitch shift,
// volume adjustment, single-tap reverb. Time stretch and pitch shift both
// replay the clip at a scaled rate and resample back, so they change
// duration and pitch together.
//
// # Failure Containment
//
// Augment functions never return errors. An image chain with a failing
// kernel is discarded and the input is returned as it was. An audio chain
// skips the failing kernel and carries on with the next one. Use
// NewImageComposer or NewAudioComposer directly to see which kernels ran
// and which failed.
//
// # Formats
//
// NewAudioRegistry wires decoders for WAV, MP3, Ogg Vorbis and FLAC. WAV is
// encoded natively; MP3, Ogg and FLAC output is produced by an ffmpeg
// subprocess. Images are decoded from JPEG, PNG, BMP and GIF and written as
// JPEG by package raster.
package neuroaug
