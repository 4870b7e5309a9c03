// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/formats/wav"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "ffmpeg"

var ErrUnsupportedFormat = errors.New("no ffmpeg codec for format")

var commandContext = exec.CommandContext

// Codec pairs an ffmpeg audio encoder with the muxer that wraps it.
type Codec struct {
	Encoder string
	Muxer   string
}

var (
	MP3    = Codec{Encoder: "libmp3lame", Muxer: "mp3"}
	Vorbis = Codec{Encoder: "libvorbis", Muxer: "ogg"}
	FLAC   = Codec{Encoder: "flac", Muxer: "flac"}
)

var codecs = map[string]Codec{
	"mp3":  MP3,
	"ogg":  Vorbis,
	"flac": FLAC,
}

// CodecFor returns the codec used for a file extension such as ".mp3".
func CodecFor(format string) (Codec, error) {
	c, ok := codecs[audio.FormatKey(format)]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return c, nil
}

// Encoder pipes a clip through an ffmpeg subprocess. The clip is handed to
// ffmpeg as 16-bit WAV on stdin and the encoded stream is copied from stdout,
// so sample rate and channel count are preserved.
type Encoder struct {
	binary string
	codec  Codec
}

// NewEncoder returns an encoder for codec. An empty binary means
// DefaultBinary.
func NewEncoder(binary string, codec Codec) *Encoder {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Encoder{binary: binary, codec: codec}
}

func (e *Encoder) Binary() string { return e.binary }

func (e *Encoder) args() []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "wav",
		"-i", "pipe:0",
		"-c:a", e.codec.Encoder,
		"-f", e.codec.Muxer,
		"pipe:1",
	}
}

func (e *Encoder) Encode(ctx context.Context, w io.Writer, c *audio.Clip) error {
	var pcm bytes.Buffer
	if err := (wav.Encoder{}).Encode(ctx, &pcm, c); err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := commandContext(ctx, e.binary, e.args()...) //nolint:gosec
	cmd.Stdin = &pcm
	cmd.Stdout = w
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg encode %s: %w: %s", e.codec.Muxer, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Available reports whether binary can be found on PATH.
func Available(binary string) error {
	if binary == "" {
		binary = DefaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("ffmpeg not available: %w", err)
	}
	return nil
}
