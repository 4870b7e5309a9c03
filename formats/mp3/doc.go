// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// an audio.Source of float32 samples in [-1.0, 1.0].
//
// # Output Format
//
//   - Channels: always 2; mono files are duplicated by go-mp3
//   - Sample rate: that of the file (typically 44.1kHz or 48kHz)
//
// # Limitations
//
// There is no pure Go MP3 encoder. Writing MP3 is delegated to the ffmpeg
// package.
package mp3
