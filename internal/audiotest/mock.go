// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the audio, audiofx and batch
// tests. It does not import the audio package so that package's own tests
// can use it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the sample for frame index and channel.
type Waveform func(frame, channel int) float32

// Sine is a full-band sine at frequency Hz with the given peak amplitude.
func Sine(sampleRate int, frequency, amplitude float64) Waveform {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	}
}

// Constant returns value for every sample.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Ramp rises linearly from 0 by step per frame, offset by channel so that
// interleaving mistakes show up in assertions.
func Ramp(step float32) Waveform {
	return func(frame, channel int) float32 {
		return float32(frame)*step + float32(channel)*0.5
	}
}

// Samples renders frames of w as interleaved samples.
func Samples(channels, frames int, w Waveform) []float32 {
	out := make([]float32, frames*channels)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = w(f, ch)
		}
	}
	return out
}

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   Waveform

	// EOFWithData makes the final read return its samples together with
	// io.EOF, the way several decoders behave.
	EOFWithData bool
	// FailAfter makes ReadSamples return Err once this many frames were
	// produced; zero disables it.
	FailAfter int
	Err       error

	Closed bool
}

// NewMockSource creates a source producing frames frames of w.
func NewMockSource(sampleRate, channels, frames int, w Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   w,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Constant(0))
}

// NewSineSource creates a mock source that generates a unit sine wave.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Sine(sampleRate, frequency, 1))
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset resets the generated frame counter to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter > 0 && m.generated >= m.FailAfter {
		return 0, m.Err
	}

	if m.generated >= m.frames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.frames-m.generated)
	if m.FailAfter > 0 {
		framesToWrite = min(framesToWrite, m.FailAfter-m.generated)
	}

	for f := range framesToWrite {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += framesToWrite
	n := framesToWrite * m.channels

	if m.EOFWithData && m.generated >= m.frames {
		return n, io.EOF
	}

	return n, nil
}
