// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KuNaL8103/Neuro-Aug/audio"
)

// Summary counts the outcome of a run.
type Summary struct {
	Processed int
	Skipped   int
	// Augmentations is the number of augmented files written.
	Augmentations int
}

// Runner walks an input folder and writes augmented copies of every
// recognised file to an output folder.
type Runner struct {
	fs       afero.Fs
	logger   *zap.Logger
	out      io.Writer
	registry *audio.Registry
}

type Option func(r *Runner)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOutput sets where per-file status lines are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithRegistry replaces the audio codecs.
func WithRegistry(reg *audio.Registry) Option {
	return func(r *Runner) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// New returns a runner on fsys. Without WithRegistry the audio codecs come
// from neuroaug.NewAudioRegistry with the default ffmpeg binary.
func New(fsys afero.Fs, opts ...Option) *Runner {
	r := &Runner{
		fs:     fsys,
		logger: zap.NewNop(),
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = defaultRegistry()
	}
	return r
}

// unit processes one accepted file and returns the paths it wrote,
// including any it wrote before failing.
type unit func(ctx context.Context, name string, index int, seed uint64) ([]string, error)

type job struct {
	noun       string // plural, for status lines
	kind       string // singular, for skip lines
	extensions []string
	process    unit
}

// unitRNG seeds the generator for one output copy so that the variants do not
// depend on worker scheduling.
func unitRNG(seed uint64, index, copyIndex int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(index)<<32|uint64(copyIndex)))
}

func (r *Runner) run(ctx context.Context, o Options, j job) (Summary, error) {
	if err := o.Validate(r.fs); err != nil {
		return Summary{}, err
	}
	if err := r.fs.MkdirAll(o.Output, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output folder: %w", err)
	}

	entries, err := afero.ReadDir(r.fs, o.Input)
	if err != nil {
		return Summary{}, fmt.Errorf("read input folder: %w", err)
	}

	files := lo.FilterMap(entries, func(e os.FileInfo, _ int) (string, bool) {
		return e.Name(), !e.IsDir()
	})
	slices.Sort(files)

	accepted, rejected := lo.FilterReject(files, func(name string, _ int) bool {
		return lo.Contains(j.extensions, strings.ToLower(filepath.Ext(name)))
	})

	var (
		mtx sync.Mutex
		sum = Summary{Skipped: len(rejected)}
	)

	for _, name := range rejected {
		fmt.Fprintf(r.out, "Skipping %s - not a supported %s format\n", name, j.kind)
	}
	fmt.Fprintf(r.out, "Found %d %s to process\n", len(accepted), j.noun)

	seed := o.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	logger := r.logger.With(
		zap.String("input", o.Input),
		zap.String("output", o.Output),
		zap.Uint64("seed", seed),
	)
	logger.Info("batch started", zap.Int("files", len(accepted)), zap.Int("skipped", len(rejected)))

	bar := newBar(o.Progress, len(accepted), j.noun)

	g := new(errgroup.Group)
	g.SetLimit(o.Workers)

	for i, name := range accepted {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			written, err := j.process(ctx, name, i, seed)
			if err != nil {
				err = multierr.Append(err, r.remove(written))
			}

			mtx.Lock()
			defer mtx.Unlock()

			if err != nil {
				sum.Skipped++
				logger.Warn("file skipped", zap.String("file", name), zap.Error(err))
				fmt.Fprintf(r.out, "Error processing %s: %v\n", name, err)
			} else {
				sum.Processed++
				sum.Augmentations += o.Count
				logger.Debug("file processed", zap.String("file", name))
				fmt.Fprintf(r.out, "Processed: %s (%d/%d)\n", name, sum.Processed, len(accepted))
			}

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	_ = g.Wait()
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Info("batch finished",
		zap.Int("processed", sum.Processed),
		zap.Int("skipped", sum.Skipped),
		zap.Int("augmentations", sum.Augmentations),
	)

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	return sum, nil
}

// remove deletes partial outputs of a failed file.
func (r *Runner) remove(paths []string) error {
	var err error
	for _, p := range paths {
		err = multierr.Append(err, r.fs.Remove(p))
	}
	return err
}

func (r *Runner) write(path string, data []byte) error {
	return afero.WriteFile(r.fs, path, data, 0o644)
}

func newBar(w io.Writer, total int, noun string) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("augmenting "+noun),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
}

func splitName(name string) (base, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

func augName(base string, i int, ext string) string {
	return fmt.Sprintf("%s_aug_%d%s", base, i, ext)
}
