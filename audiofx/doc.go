// SPDX-License-Identifier: EPL-2.0

// Package audiofx holds the audio augmentation kernels used by the composer.
//
// Each kernel draws its parameters from the caller's *rand.Rand and works on
// an *audio.Clip. Kernels never change a clip's sample rate or channel count.
// TimeStretch and PitchShift both replay the samples at a scaled rate and
// resample back, so either one changes duration and pitch together.
//
// The underlying operations (AddNoise, Reinterpret, Echo) are exported with
// explicit parameters for callers that want a fixed transform.
package audiofx
