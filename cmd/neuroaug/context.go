// SPDX-License-Identifier: EPL-2.0

package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KuNaL8103/Neuro-Aug/internal/config"
)

// commandContext carries the filesystem and the global flags shared by all
// subcommands.
type commandContext struct {
	fs afero.Fs

	configPath string
	seed       uint64
	workers    int
	maxEffects int
	logLevel   string
	ffmpeg     string
	noProgress bool
}

func newCommandContext(fsys afero.Fs) *commandContext {
	return &commandContext{fs: fsys}
}

func (c *commandContext) bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.configPath, "config", "c", "", "Configuration file path")
	flags.Uint64Var(&c.seed, "seed", 0, "Seed for reproducible output (0 picks a random seed)")
	flags.IntVar(&c.workers, "workers", 1, "Number of files processed concurrently")
	flags.IntVar(&c.maxEffects, "max-effects", 4, "Maximum number of effects chained per copy")
	flags.StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&c.ffmpeg, "ffmpeg", "ffmpeg", "ffmpeg binary used for mp3, ogg and flac output")
	flags.BoolVar(&c.noProgress, "no-progress", false, "Disable the progress bar")
}

// config loads the file named by --config and applies every flag the user
// set explicitly on top of it.
func (c *commandContext) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.fs, strings.TrimSpace(c.configPath))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Batch.Seed = c.seed
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = c.workers
	}
	if flags.Changed("max-effects") {
		cfg.Augment.MaxEffects = c.maxEffects
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(c.logLevel)
	}
	if flags.Changed("ffmpeg") {
		cfg.FFmpeg.Binary = c.ffmpeg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
