// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"slices"
)

// Levels are the accepted logging.level values.
var Levels = []string{"debug", "info", "warn", "error"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Augment.MaxEffects < 1 {
		return fmt.Errorf("%w: augment.max_effects must be at least 1, got %d", ErrInvalid, c.Augment.MaxEffects)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be at least 1, got %d", ErrInvalid, c.Batch.Workers)
	}
	if c.Batch.JPEGQuality < 1 || c.Batch.JPEGQuality > 100 {
		return fmt.Errorf("%w: batch.jpeg_quality must be between 1 and 100, got %d", ErrInvalid, c.Batch.JPEGQuality)
	}
	if !slices.Contains(Levels, c.Logging.Level) {
		return fmt.Errorf("%w: logging.level must be one of %v, got %q", ErrInvalid, Levels, c.Logging.Level)
	}
	return nil
}
