// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg encodes clips to MP3, Ogg Vorbis and FLAC by piping a WAV
// rendition through an ffmpeg subprocess.
//
//	enc := ffmpeg.NewEncoder(cfg.FFmpeg.Binary, ffmpeg.MP3)
//	err := enc.Encode(ctx, f, clip)
//
// The binary must be on PATH or configured explicitly.
package ffmpeg
