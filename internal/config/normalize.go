// SPDX-License-Identifier: EPL-2.0

package config

import (
	"strings"

	"github.com/KuNaL8103/Neuro-Aug/formats/ffmpeg"
)

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = ffmpeg.DefaultBinary
	}
}
