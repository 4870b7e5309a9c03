// SPDX-License-Identifier: EPL-2.0

package audiofx

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/augment"
)

// Parameter ranges drawn on every Apply.
const (
	MinNoiseLevel = -20.0
	MaxNoiseLevel = -10.0

	MinStretch = 0.9
	MaxStretch = 1.1

	MinSemitones = -2.0
	MaxSemitones = 2.0

	MinGain = -3.0
	MaxGain = 3.0

	MinDecay = 0.1
	MaxDecay = 0.5

	// EchoGain is the attenuation of the single reverb tap in dB.
	EchoGain = -6.0
)

// Effect is an audio kernel.
type Effect = augment.Effect[*audio.Clip]

// Pool returns the audio kernels in declaration order.
func Pool() []Effect {
	return []Effect{
		NoiseOverlay{},
		TimeStretch{},
		PitchShift{},
		VolumeAdjust{},
		Reverb{},
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// NoiseOverlay mixes in white, pink or brown noise 10 to 20 dB below the
// signal.
type NoiseOverlay struct{}

func (NoiseOverlay) Name() string { return "noise_overlay" }

func (NoiseOverlay) Apply(rng *rand.Rand, c *audio.Clip) (*audio.Clip, error) {
	color := audio.NoiseColors[rng.IntN(len(audio.NoiseColors))]
	level := uniform(rng, MinNoiseLevel, MaxNoiseLevel)
	return AddNoise(rng, c, color, level)
}

// AddNoise overlays noise whose loudness is the signal's dBFS plus level.
// Empty and silent clips have no reference loudness and are returned as is.
func AddNoise(rng *rand.Rand, c *audio.Clip, color audio.NoiseColor, level float64) (*audio.Clip, error) {
	signal := c.DBFS()
	if c.Frames() == 0 || math.IsInf(signal, -1) {
		return c, nil
	}

	noise, err := audio.Noise(rng, color, c.SampleRate, c.Channels, c.Frames())
	if err != nil {
		return nil, err
	}

	current := noise.DBFS()
	if math.IsInf(current, -1) {
		return c, nil
	}
	noise.ApplyGain(signal + level - current)

	if err := c.Overlay(noise, 0); err != nil {
		return nil, err
	}
	return c, nil
}

// TimeStretch replays the clip at a rate factor in [0.9, 1.1) and resamples
// back to the nominal rate, changing duration and pitch together.
type TimeStretch struct{}

func (TimeStretch) Name() string { return "time_stretch" }

func (TimeStretch) Apply(rng *rand.Rand, c *audio.Clip) (*audio.Clip, error) {
	return Reinterpret(c, uniform(rng, MinStretch, MaxStretch))
}

// PitchShift is TimeStretch with a ratio of 2^(semitones/12) for semitones
// in [-2, 2).
type PitchShift struct{}

func (PitchShift) Name() string { return "pitch_shift" }

func (PitchShift) Apply(rng *rand.Rand, c *audio.Clip) (*audio.Clip, error) {
	return Reinterpret(c, SemitoneRatio(uniform(rng, MinSemitones, MaxSemitones)))
}

func SemitoneRatio(semitones float64) float64 {
	return math.Pow(2, semitones/12)
}

// Reinterpret treats the samples of c as recorded at int(rate*ratio) and
// resamples them to c's own rate. A ratio above 1 shortens the clip and
// raises its pitch. The result has c's sample rate and channel count.
func Reinterpret(c *audio.Clip, ratio float64) (*audio.Clip, error) {
	if ratio <= 0 || math.IsNaN(ratio) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	src, err := c.Reinterpret(int(float64(c.SampleRate) * ratio))
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(audio.NewResampler(src, c.SampleRate))
}

// VolumeAdjust adds a gain in [-3, 3) dB.
type VolumeAdjust struct{}

func (VolumeAdjust) Name() string { return "volume_adjust" }

func (VolumeAdjust) Apply(rng *rand.Rand, c *audio.Clip) (*audio.Clip, error) {
	c.ApplyGain(uniform(rng, MinGain, MaxGain))
	return c, nil
}

// Reverb adds one echo for a decay in [0.1, 0.5).
type Reverb struct{}

func (Reverb) Name() string { return "reverb" }

func (Reverb) Apply(rng *rand.Rand, c *audio.Clip) (*audio.Clip, error) {
	return Echo(c, uniform(rng, MinDecay, MaxDecay))
}

// Echo builds the tap as c attenuated by 6 dB with decay*1000 ms of silence
// in front, and overlays it onto c starting decay*1000 ms in. The padding and
// the overlay offset add up, so the echo is heard 2*decay seconds after the
// dry signal. The clip keeps its length.
func Echo(c *audio.Clip, decay float64) (*audio.Clip, error) {
	if decay < 0 || math.IsNaN(decay) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDecay, decay)
	}

	delayMs := int(decay * 1000)
	tap, err := audio.Silent(c.SampleRate, c.Channels, delayMs).Append(c.Gained(EchoGain))
	if err != nil {
		return nil, err
	}

	if err := c.Overlay(tap, audio.FramesForMs(c.SampleRate, delayMs)); err != nil {
		return nil, err
	}
	return c, nil
}
