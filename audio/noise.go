// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math/rand/v2"
)

// NoiseColor selects the spectral shape of generated noise.
type NoiseColor string

const (
	White NoiseColor = "white"
	Pink  NoiseColor = "pink"
	Brown NoiseColor = "brown"
)

// NoiseColors lists every supported color in a fixed order.
var NoiseColors = []NoiseColor{White, Pink, Brown}

// Noise synthesises frames of noise with the given layout. Each channel gets
// its own filter state; all randomness comes from rng.
func Noise(rng *rand.Rand, color NoiseColor, sampleRate, channels, frames int) (*Clip, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	var next func(ch int) float32
	switch color {
	case White:
		next = func(int) float32 { return white(rng) }
	case Pink:
		state := make([]pinkState, channels)
		next = func(ch int) float32 { return state[ch].next(white(rng)) }
	case Brown:
		state := make([]float32, channels)
		next = func(ch int) float32 {
			// leaky integrator keeps the walk bounded
			state[ch] = (state[ch] + 0.02*white(rng)) / 1.02
			return state[ch] * 3.5
		}
	default:
		return nil, fmt.Errorf("unknown noise color %q", color)
	}

	samples := make([]float32, max(frames, 0)*channels)
	for i := range samples {
		samples[i] = next(i % channels)
	}

	return &Clip{SampleRate: sampleRate, Channels: channels, Samples: samples}, nil
}

func white(rng *rand.Rand) float32 {
	return float32(rng.Float64()*2 - 1)
}

// pinkState is Paul Kellet's refined pink filter.
type pinkState struct {
	b0, b1, b2, b3, b4, b5, b6 float32
}

func (p *pinkState) next(w float32) float32 {
	p.b0 = 0.99886*p.b0 + w*0.0555179
	p.b1 = 0.99332*p.b1 + w*0.0750759
	p.b2 = 0.96900*p.b2 + w*0.1538520
	p.b3 = 0.86650*p.b3 + w*0.3104856
	p.b4 = 0.55000*p.b4 + w*0.5329522
	p.b5 = -0.7616*p.b5 - w*0.0168980
	out := p.b0 + p.b1 + p.b2 + p.b3 + p.b4 + p.b5 + p.b6 + w*0.5362
	p.b6 = w * 0.115926

	return out * 0.11
}
