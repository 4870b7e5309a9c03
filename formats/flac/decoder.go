// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/utils"
)

var ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

// frameReader is the part of flac.Stream the source needs; tests swap it out.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source interleaves decoded FLAC frames into float32 samples.
type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	bitDepth   int

	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("close flac: %w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && len(dst) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// fill decodes the next frame into pending.
func (s *source) fill() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode flac: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d", audio.ErrFormatMismatch, len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	out := make([]float32, frames*s.channels)
	for ch, sub := range f.Subframes {
		for i := range min(frames, len(sub.Samples)) {
			out[i*s.channels+ch] = utils.PCMToFloat32(int(sub.Samples[i]), s.bitDepth)
		}
	}
	s.pending = out

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("open flac: %w", err)
	}

	bitDepth := int(stream.Info.BitsPerSample)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:     stream,
		sampleRate: int(stream.Info.SampleRate),
		channels:   int(stream.Info.NChannels),
		bitDepth:   bitDepth,
	}, nil
}
