// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder serialises a whole clip into a container format.
type Encoder interface {
	Encode(ctx context.Context, w io.Writer, c *Clip) error
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive and may carry a leading dot, so file extensions
// can be used directly.
type Registry struct {
	codecs   map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:   make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

// FormatKey normalises an extension or format name into a registry key.
func FormatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[FormatKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[FormatKey(format)]
	return d, ok
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[FormatKey(format)] = e
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[FormatKey(format)]
	return e, ok
}

// Formats lists, sorted, the keys that have both a decoder and an encoder.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := lo.Filter(lo.Keys(r.codecs), func(k string, _ int) bool {
		_, ok := r.encoders[k]
		return ok
	})
	slices.Sort(keys)

	return keys
}

// DecodeClip decodes r with the decoder registered for format and drains the
// resulting stream into memory.
func (r *Registry) DecodeClip(format string, rd io.Reader) (*Clip, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, ErrUnknownFormat
	}

	src, err := d.Decode(rd)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ReadAll(src)
}
