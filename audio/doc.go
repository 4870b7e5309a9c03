// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio buffer and the low-level
// primitives the augmentation kernels are built from.
//
// # Clips and Sources
//
// A Clip is a fully decoded buffer of interleaved float32 samples. Decoders
// produce a streaming Source; ReadAll drains one into a Clip:
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	clip, err := audio.ReadAll(src)
//
// Samples nominally lie in [-1, 1], but intermediate results may exceed that
// range. Clipping happens once, when a clip is encoded.
//
// # Levels
//
// Gains are expressed in decibels (20*log10 of the amplitude ratio). DBFS
// reports the RMS loudness of a clip relative to full scale; silent clips
// report negative infinity.
//
//	loud := clip.Gained(+3)
//	_ = clip.Overlay(noise, 0)
//
// # Resampling
//
// The Resampler changes the sample rate of a stream using cubic
// interpolation. Combined with Reinterpret it changes playback speed and
// pitch together:
//
//	src, _ := clip.Reinterpret(int(float64(clip.SampleRate) * 1.05))
//	faster, err := audio.ReadAll(audio.NewResampler(src, clip.SampleRate))
//
// # Format Registry
//
// The registry maps file extensions to decoders and encoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//	clip, err := registry.DecodeClip(".WAV", f)
package audio
