// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"context"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/utils"
)

// BitDepth of every file the Encoder writes.
const BitDepth = 16

// chunkSize is the number of samples handed to go-audio per write.
const chunkSize = 8192

// Encoder writes clips as 16-bit integer PCM WAV with the clip's own sample
// rate and channel count. Samples outside [-1, 1] are clipped.
type Encoder struct{}

func (Encoder) Encode(ctx context.Context, w io.Writer, c *audio.Clip) error {
	if err := c.Validate(); err != nil {
		return err
	}

	// go-audio seeks back to patch the RIFF sizes on Close
	ws, direct := w.(io.WriteSeeker)
	if !direct {
		ws = &writeSeeker{}
	}

	if err := encode(ctx, ws, c); err != nil {
		return err
	}

	if !direct {
		if _, err := w.Write(ws.(*writeSeeker).buf); err != nil {
			return fmt.Errorf("write wav: %w", err)
		}
	}

	return nil
}

func encode(ctx context.Context, ws io.WriteSeeker, c *audio.Clip) error {
	enc := wav.NewEncoder(ws, c.SampleRate, BitDepth, c.Channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.Channels,
			SampleRate:  c.SampleRate,
		},
		Data:           make([]int, 0, min(len(c.Samples), chunkSize)),
		SourceBitDepth: BitDepth,
	}

	// an empty write still emits the header
	for i := 0; i == 0 || i < len(c.Samples); i += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(i+chunkSize, len(c.Samples))
		buf.Data = buf.Data[:0]
		for _, x := range c.Samples[i:end] {
			buf.Data = append(buf.Data, utils.Float32ToPCM(x, BitDepth))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}

	return nil
}

// writeSeeker is an in-memory io.WriteSeeker for destinations that cannot
// seek.
type writeSeeker struct {
	buf    []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.buf)) {
		ws.buf = append(ws.buf, make([]byte, end-int64(len(ws.buf)))...)
	}
	copy(ws.buf[ws.offset:], p)
	ws.offset = end
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}
