// SPDX-License-Identifier: EPL-2.0

package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/KuNaL8103/Neuro-Aug/internal/config"
)

func writeConfig(t *testing.T, fsys afero.Fs, body string) string {
	t.Helper()

	const path = "/etc/neuroaug.toml"
	if err := afero.WriteFile(fsys, path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Augment.MaxEffects != 4 {
		t.Errorf("max_effects = %d, want 4", cfg.Augment.MaxEffects)
	}
	if cfg.Batch.Workers != 1 || cfg.Batch.Seed != 0 || cfg.Batch.JPEGQuality != 75 {
		t.Errorf("unexpected batch defaults: %+v", cfg.Batch)
	}
	if cfg.Logging.Level != "info" || cfg.FFmpeg.Binary != "ffmpeg" {
		t.Errorf("unexpected defaults: %+v %+v", cfg.Logging, cfg.FFmpeg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(afero.NewMemMapFs(), "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if *cfg != config.Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", *cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(afero.NewMemMapFs(), "/nope.toml")
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("Load error = %v, want ErrNotFound", err)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	path := writeConfig(t, fsys, `
[augment]
max_effects = 2

[batch]
workers = 8
seed = 1234

[logging]
level = " DEBUG "

[ffmpeg]
binary = ""
`)

	cfg, err := config.Load(fsys, path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Augment.MaxEffects != 2 || cfg.Batch.Workers != 8 || cfg.Batch.Seed != 1234 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Batch.JPEGQuality != 75 {
		t.Errorf("jpeg_quality = %d, want default 75", cfg.Batch.JPEGQuality)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Errorf("binary = %q, want ffmpeg", cfg.FFmpeg.Binary)
	}
}

func TestLoadRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "zero effects", body: "[augment]\nmax_effects = 0\n", want: "augment.max_effects"},
		{name: "no workers", body: "[batch]\nworkers = 0\n", want: "batch.workers"},
		{name: "quality too high", body: "[batch]\njpeg_quality = 101\n", want: "batch.jpeg_quality"},
		{name: "unknown level", body: "[logging]\nlevel = \"verbose\"\n", want: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := afero.NewMemMapFs()
			_, err := config.Load(fsys, writeConfig(t, fsys, tt.body))
			if !errors.Is(err, config.ErrInvalid) {
				t.Fatalf("Load error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name %s", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	_, err := config.Load(fsys, writeConfig(t, fsys, "[batch]\nthreads = 4\n"))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse error", err)
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("sample config = %+v, want %+v", cfg, config.Default())
	}
}
