// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/KuNaL8103/Neuro-Aug/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves channel count.
//
// Output frame j is taken at source position j*ratio, so a stream of N source
// frames yields ceil(N/ratio) output frames. Positions past the last source
// frame hold that frame instead of extrapolating.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // srcRate / dstRate - source frames per output frame
	channels int

	// window[k] holds source frame base-1+k, clamped to the stream bounds
	window [4][]float32
	base   int
	pos    float64 // fractional offset from base

	frames int // real source frames read so far
	primed bool
	eof    bool

	srcBuf []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  float64(src.SampleRate()),
		dstRate:  float64(dstRate),
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		srcBuf:   make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one whole frame into dst. It reports false once the source
// is exhausted; a trailing partial frame counts as exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.srcBuf)
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("%w", err)
		}

		if n == r.channels {
			copy(dst, r.srcBuf)
			r.frames++
			if err == io.EOF {
				r.eof = true
			}
			return true, nil
		}

		if err == io.EOF || n > 0 {
			r.eof = true
			return false, nil
		}
	}

	return false, io.ErrNoProgress
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.window[1])
	if err != nil || !ok {
		return err
	}
	copy(r.window[0], r.window[1])

	for _, k := range []int{2, 3} {
		ok, err := r.readFrame(r.window[k])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[k], r.window[k-1])
		}
	}

	return nil
}

// advance slides the window forward by one source frame.
func (r *Resampler) advance() error {
	r.base++

	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces dst samples at r.dstRate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if r.eof && r.base >= r.frames {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}

// Resample converts a whole clip to dstRate.
func Resample(c *Clip, dstRate int) (*Clip, error) {
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, dstRate)
	}
	return ReadAll(NewResampler(c.Source(), dstRate))
}
