// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

// Invalid arguments stop a run before the output folder is created. The
// other errors only ever skip a single file.
var (
	ErrInvalidCount      = errors.New("number of copies must be a positive integer")
	ErrInputNotFound     = errors.New("input folder does not exist")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode failed")
	ErrEncode            = errors.New("encode failed")
)
