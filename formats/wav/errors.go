// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrUnsupportedBitDepth is returned for integer PCM that is not 8, 16, 24 or 32 bit.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	// ErrUnsupportedEncoding is returned for compressed or floating point WAV data.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")
)
