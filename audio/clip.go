// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Clip is a fully decoded audio buffer: interleaved float32 samples at a
// nominal sample rate. Samples are not clipped in memory; clipping to [-1,1]
// happens when a clip is encoded.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []float32
}

// NewClip validates the layout and wraps samples without copying.
func NewClip(sampleRate, channels int, samples []float32) (*Clip, error) {
	c := &Clip{SampleRate: sampleRate, Channels: channels, Samples: samples}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Silent returns a zeroed clip lasting ms milliseconds, rounded down to whole
// frames.
func Silent(sampleRate, channels int, ms int) *Clip {
	frames := FramesForMs(sampleRate, ms)
	return &Clip{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    make([]float32, frames*channels),
	}
}

// FramesForMs converts a millisecond offset into a frame count at rate.
func FramesForMs(sampleRate, ms int) int {
	if ms <= 0 {
		return 0
	}
	return int(int64(ms) * int64(sampleRate) / 1000)
}

func (c *Clip) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, c.SampleRate)
	}
	if c.Channels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, c.Channels)
	}
	if len(c.Samples)%c.Channels != 0 {
		return ErrRaggedSamples
	}
	return nil
}

// Frames is the number of sample frames (one sample per channel).
func (c *Clip) Frames() int {
	if c.Channels < 1 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// DurationMs is the clip length in whole milliseconds.
func (c *Clip) DurationMs() int {
	return int(c.Duration() / time.Millisecond)
}

// Clone returns a deep copy that shares no memory with c.
func (c *Clip) Clone() *Clip {
	out := *c
	out.Samples = make([]float32, len(c.Samples))
	copy(out.Samples, c.Samples)
	return &out
}

// SameLayout reports whether o has the same sample rate and channel count.
func (c *Clip) SameLayout(o *Clip) bool {
	return c.SampleRate == o.SampleRate && c.Channels == o.Channels
}

// Source streams the clip. The returned Source reads c.Samples directly, so c
// must not be modified while it is in use.
func (c *Clip) Source() Source {
	return &clipSource{clip: c}
}

// Reinterpret returns a Source that replays the raw samples of c as if they
// had been recorded at sampleRate. No sample is touched; only the nominal
// rate changes, which alters both perceived duration and pitch.
func (c *Clip) Reinterpret(sampleRate int) (Source, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	return &clipSource{clip: c, rate: sampleRate}, nil
}

type clipSource struct {
	clip *Clip
	rate int
	pos  int
}

func (s *clipSource) SampleRate() int {
	if s.rate > 0 {
		return s.rate
	}
	return s.clip.SampleRate
}

func (s *clipSource) Channels() int { return s.clip.Channels }
func (s *clipSource) BufSize() int  { return 4096 * s.clip.Channels }
func (s *clipSource) Close() error  { return nil }

func (s *clipSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.clip.Samples) {
		return 0, io.EOF
	}

	// whole frames only
	n := len(dst) - len(dst)%s.clip.Channels
	n = copy(dst[:n], s.clip.Samples[s.pos:])
	s.pos += n

	return n, nil
}

// maxEmptyReads bounds consecutive (0, nil) reads before ReadAll gives up.
const maxEmptyReads = 100

// ReadAll drains src into a Clip. The source is not closed.
func ReadAll(src Source) (*Clip, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	size := src.BufSize()
	if size < channels {
		size = 4096 * channels
	}
	size -= size % channels
	buf := make([]float32, size)

	var samples []float32
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}

	// drop a trailing partial frame from sloppy decoders
	samples = samples[:len(samples)-len(samples)%channels]

	return NewClip(src.SampleRate(), channels, samples)
}
