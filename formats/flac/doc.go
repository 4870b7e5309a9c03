// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding using
// github.com/mewkiz/flac.
//
// Each FLAC frame stores one subframe per channel; the decoder interleaves
// them and normalises by the stream's bit depth. Writing FLAC is delegated
// to the ffmpeg package.
package flac
