// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	neuroaug "github.com/KuNaL8103/Neuro-Aug"
	"github.com/KuNaL8103/Neuro-Aug/formats/ffmpeg"
	"github.com/KuNaL8103/Neuro-Aug/internal/batch"
	"github.com/KuNaL8103/Neuro-Aug/internal/logging"
)

func newImageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "image <input_folder> <output_folder> <count>",
		Short: "Write count augmented JPEG copies of every image in a folder",
		Long: "Reads .jpg, .jpeg, .png and .bmp files from input_folder and writes\n" +
			"{name}_aug_{i}.jpg for i = 1..count to output_folder.",
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, ctx, args, imageKind)
		},
	}
}

func newAudioCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "audio <input_folder> <output_folder> <count>",
		Short: "Write count augmented copies of every audio file in a folder",
		Long: "Reads .wav, .mp3, .ogg and .flac files from input_folder and writes\n" +
			"{name}_original{ext} and {name}_aug_{i}{ext} for i = 1..count to\n" +
			"output_folder. Compressed formats are encoded with ffmpeg.",
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, ctx, args, audioKind)
		},
	}
}

// exactArgs is cobra.ExactArgs that also prints the usage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			_ = cmd.Usage()
			return err
		}
		return nil
	}
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", batch.ErrInvalidCount, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", batch.ErrInvalidCount, n)
	}
	return n, nil
}

// mediaKind binds a subcommand to its batch run.
type mediaKind struct {
	noun  string
	audio bool
	run   func(r *batch.Runner, ctx context.Context, o batch.Options) (batch.Summary, error)
}

var (
	imageKind = mediaKind{noun: "images", run: (*batch.Runner).Images}
	audioKind = mediaKind{noun: "audio files", audio: true, run: (*batch.Runner).Audio}
)

func runBatch(cmd *cobra.Command, ctx *commandContext, args []string, kind mediaKind) error {
	count, err := parseCount(args[2])
	if err != nil {
		return err
	}

	cfg, err := ctx.config(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if kind.audio {
		if err := ffmpeg.Available(cfg.FFmpeg.Binary); err != nil {
			logger.Warn("ffmpeg not found, mp3, ogg and flac files will be skipped", zap.Error(err))
		}
	}

	runner := batch.New(ctx.fs,
		batch.WithLogger(logger),
		batch.WithOutput(cmd.OutOrStdout()),
		batch.WithRegistry(neuroaug.NewAudioRegistry(cfg.FFmpeg.Binary)),
	)

	opts := batch.Options{
		Input:       args[0],
		Output:      args[1],
		Count:       count,
		Seed:        cfg.Batch.Seed,
		Workers:     cfg.Batch.Workers,
		MaxEffects:  cfg.Augment.MaxEffects,
		JPEGQuality: cfg.Batch.JPEGQuality,
	}
	if !ctx.noProgress {
		opts.Progress = cmd.ErrOrStderr()
	}

	sum, err := kind.run(runner, cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nSummary: %d %s processed, %d skipped\n", sum.Processed, kind.noun, sum.Skipped)
	if kind.audio {
		fmt.Fprintf(out, "Total augmentations created: %d\n", sum.Augmentations)
	}
	return nil
}
