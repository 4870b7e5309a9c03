// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidChannels = errors.New("channel count must be at least 1")
	ErrRaggedSamples   = errors.New("sample count must be a multiple of channels")
	ErrUnknownFormat   = errors.New("no codec registered for format")
	ErrFormatMismatch  = errors.New("clips differ in sample rate or channel count")
)
