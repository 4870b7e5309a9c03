// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	neuroaug "github.com/KuNaL8103/Neuro-Aug"
	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/augment"
)

// AudioExtensions are matched case-insensitively.
var AudioExtensions = lo.Map(neuroaug.AudioFormats, func(f string, _ int) string {
	return "." + f
})

func defaultRegistry() *audio.Registry {
	return neuroaug.NewAudioRegistry("")
}

// Audio writes a byte-identical {base}_original{ext} and {base}_aug_{i}{ext}
// for i in 1..Count for every audio file in the input folder. Augmented
// copies keep the container of their source.
func (r *Runner) Audio(ctx context.Context, o Options) (Summary, error) {
	o = o.withDefaults()
	composer := neuroaug.NewAudioComposer(r.logger, augment.WithMaxEffects(o.MaxEffects))

	process := func(ctx context.Context, name string, index int, seed uint64) ([]string, error) {
		base, ext := splitName(name)
		ext = strings.ToLower(ext)

		enc, ok := r.registry.GetEncoder(ext)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
		}

		data, err := afero.ReadFile(r.fs, filepath.Join(o.Input, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		clip, err := r.registry.DecodeClip(ext, bytes.NewReader(data))
		if errors.Is(err, audio.ErrUnknownFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		original := filepath.Join(o.Output, base+"_original"+ext)
		if err := r.write(original, data); err != nil {
			return nil, fmt.Errorf("write %s: %w", original, err)
		}
		written := []string{original}

		for i := 1; i <= o.Count; i++ {
			res := composer.Augment(unitRNG(seed, index, i), clip.Clone())

			var buf bytes.Buffer
			if err := enc.Encode(ctx, &buf, res.Buffer); err != nil {
				return written, fmt.Errorf("%w: %w", ErrEncode, err)
			}

			path := filepath.Join(o.Output, augName(base, i, ext))
			if err := r.write(path, buf.Bytes()); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}

		return written, nil
	}

	return r.run(ctx, o, job{
		noun:       "audio files",
		kind:       "audio",
		extensions: AudioExtensions,
		process:    process,
	})
}
