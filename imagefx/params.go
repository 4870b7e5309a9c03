// SPDX-License-Identifier: EPL-2.0

package imagefx

import "math/rand/v2"

// Parameter ranges drawn on every Apply.
const (
	MinBlurRadius = 0.5
	MaxBlurRadius = 1.5

	MinFactor = 0.8
	MaxFactor = 1.2

	// NoiseAmplitude bounds the integer noise added to each channel.
	NoiseAmplitude = 20

	MinShiftX = 20
	MaxShiftX = 30
	MinShiftY = -10
	MaxShiftY = 10
)

// Angles a Rotation may choose from, counter-clockwise degrees.
var Angles = []int{90, 180, 270}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// uniformInt draws from [lo, hi] inclusive.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
