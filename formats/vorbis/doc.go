// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which decodes straight
// to interleaved float32, so samples pass through unchanged.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	clip, err := audio.ReadAll(src)
//
// Channel count and sample rate are those of the stream. Writing Ogg Vorbis
// is delegated to the ffmpeg package.
package vorbis
