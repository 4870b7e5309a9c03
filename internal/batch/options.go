// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/KuNaL8103/Neuro-Aug/augment"
	"github.com/KuNaL8103/Neuro-Aug/raster"
)

// Options describe one directory run.
type Options struct {
	Input  string
	Output string
	// Count is the number of augmented copies written per input file.
	Count int
	// Seed makes the run reproducible; 0 draws a fresh seed.
	Seed    uint64
	Workers int
	// MaxEffects caps the chain length; 0 means augment.DefaultMaxEffects.
	MaxEffects int
	// JPEGQuality applies to image runs; 0 means raster.DefaultJPEGQuality.
	JPEGQuality int
	// Progress receives a progress bar when non-nil.
	Progress io.Writer
}

// Validate checks the arguments that make a run impossible. It touches
// nothing on fsys.
func (o Options) Validate(fsys afero.Fs) error {
	if o.Count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, o.Count)
	}

	if o.JPEGQuality < 0 || o.JPEGQuality > 100 {
		return fmt.Errorf("%w: %d", raster.ErrInvalidQuality, o.JPEGQuality)
	}

	ok, err := afero.DirExists(fsys, o.Input)
	if err != nil {
		return fmt.Errorf("stat input %q: %w", o.Input, err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrInputNotFound, o.Input)
	}

	return nil
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.MaxEffects < 1 {
		o.MaxEffects = augment.DefaultMaxEffects
	}
	if o.JPEGQuality == 0 {
		o.JPEGQuality = raster.DefaultJPEGQuality
	}
	return o
}
