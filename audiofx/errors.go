// SPDX-License-Identifier: EPL-2.0

package audiofx

import "errors"

var (
	ErrInvalidRatio = errors.New("rate ratio must be positive")
	ErrInvalidDecay = errors.New("reverb decay must not be negative")
)
