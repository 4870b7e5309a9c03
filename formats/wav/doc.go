// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// The Decoder accepts uncompressed integer PCM at 8, 16, 24 or 32 bits with
// any channel count and sample rate. Samples are normalised to float32 by bit
// depth. go-audio needs to seek, so readers that cannot are buffered in
// memory first.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	clip, err := audio.ReadAll(src)
//
// # Encoding
//
// The Encoder always writes 16-bit PCM at the clip's own rate and channel
// count. Samples outside [-1, 1] are clipped.
//
//	err := wav.Encoder{}.Encode(ctx, f, clip)
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedEncoding: compressed or floating point data
//   - ErrUnsupportedBitDepth: integer PCM at an unusual depth
//   - ErrUnsupportedWavLayout: the data chunk or format is missing
package wav
