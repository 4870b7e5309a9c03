// SPDX-License-Identifier: EPL-2.0

package raster

import "errors"

var (
	// ErrEmptyImage is returned for images with a zero width or height.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrInvalidQuality is returned for JPEG qualities outside 1..100.
	ErrInvalidQuality = errors.New("JPEG quality must be between 1 and 100")
)
