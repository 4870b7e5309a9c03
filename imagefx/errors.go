// SPDX-License-Identifier: EPL-2.0

package imagefx

import "errors"

var (
	ErrInvalidRadius = errors.New("blur radius must be positive")
	ErrInvalidFactor = errors.New("enhancement factor must not be negative")
	ErrInvalidAngle  = errors.New("rotation angle must be 90, 180 or 270")
)
