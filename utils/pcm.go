// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampUnit limits x to the full-scale range [-1, 1].
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// PCMScale returns the magnitude of full scale for a signed integer PCM
// stream of the given bit depth (2^(bitDepth-1)). Unknown depths fall back
// to 16 bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat32 converts a signed integer PCM sample to float32 in [-1, 1).
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(v) / PCMScale(bitDepth)
}

// Float32ToPCM converts a float sample to signed integer PCM at bitDepth.
// Values outside [-1, 1] are clipped; the positive peak maps to the largest
// representable value so no wrap-around can occur.
func Float32ToPCM(x float32, bitDepth int) int {
	x = ClampUnit(x)
	peak := float64(PCMScale(bitDepth)) - 1
	return int(math.Round(float64(x) * peak))
}

// Float32ToInt16 is Float32ToPCM specialised for the 16 bit streams every
// encoder in this module writes.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 16))
}
