// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	neuroaug "github.com/KuNaL8103/Neuro-Aug"
	"github.com/KuNaL8103/Neuro-Aug/augment"
	"github.com/KuNaL8103/Neuro-Aug/raster"
)

// ImageExtensions are matched case-insensitively.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// Images writes {base}_aug_{i}.jpg for i in 1..Count for every image in the
// input folder. Output is always JPEG whatever the input format.
func (r *Runner) Images(ctx context.Context, o Options) (Summary, error) {
	o = o.withDefaults()
	composer := neuroaug.NewImageComposer(r.logger, augment.WithMaxEffects(o.MaxEffects))

	process := func(ctx context.Context, name string, index int, seed uint64) ([]string, error) {
		data, err := afero.ReadFile(r.fs, filepath.Join(o.Input, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		img, err := raster.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		base, _ := splitName(name)
		var written []string

		for i := 1; i <= o.Count; i++ {
			if err := ctx.Err(); err != nil {
				return written, err
			}

			res := composer.Augment(unitRNG(seed, index, i), img.Clone())

			var buf bytes.Buffer
			if err := raster.EncodeJPEG(&buf, res.Buffer, o.JPEGQuality); err != nil {
				return written, fmt.Errorf("%w: %w", ErrEncode, err)
			}

			path := filepath.Join(o.Output, augName(base, i, ".jpg"))
			if err := r.write(path, buf.Bytes()); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}

		return written, nil
	}

	return r.run(ctx, o, job{
		noun:       "images",
		kind:       "image",
		extensions: ImageExtensions,
		process:    process,
	})
}
