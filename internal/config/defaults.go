// SPDX-License-Identifier: EPL-2.0

package config

import (
	"github.com/KuNaL8103/Neuro-Aug/augment"
	"github.com/KuNaL8103/Neuro-Aug/formats/ffmpeg"
	"github.com/KuNaL8103/Neuro-Aug/raster"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Augment: Augment{
			MaxEffects: augment.DefaultMaxEffects,
		},
		Batch: Batch{
			Workers:     1,
			JPEGQuality: raster.DefaultJPEGQuality,
		},
		Logging: Logging{
			Level: "info",
		},
		FFmpeg: FFmpeg{
			Binary: ffmpeg.DefaultBinary,
		},
	}
}
