// SPDX-License-Identifier: EPL-2.0

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

//go:embed sample_config.toml
var sampleConfig string

// Augment configures chain composition.
type Augment struct {
	MaxEffects int `toml:"max_effects"`
}

// Batch configures directory runs.
type Batch struct {
	Workers     int    `toml:"workers"`
	Seed        uint64 `toml:"seed"` // 0 draws a fresh seed per run
	JPEGQuality int    `toml:"jpeg_quality"`
}

// Logging configures log output.
type Logging struct {
	Level string `toml:"level"`
}

// FFmpeg configures the encoder used for mp3, ogg and flac output.
type FFmpeg struct {
	Binary string `toml:"binary"`
}

type Config struct {
	Augment Augment `toml:"augment"`
	Batch   Batch   `toml:"batch"`
	Logging Logging `toml:"logging"`
	FFmpeg  FFmpeg  `toml:"ffmpeg"`
}

// SampleConfig returns a commented config file holding the defaults.
func SampleConfig() string {
	return sampleConfig
}

// Load reads path from fsys on top of Default. An empty path returns the
// defaults; a path that does not exist is an error.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := fsys.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config %q: %w", path, ErrNotFound)
			}
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
