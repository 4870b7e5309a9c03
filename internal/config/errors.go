// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrNotFound = errors.New("config file not found")
	ErrInvalid  = errors.New("invalid config")
)
