// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/KuNaL8103/Neuro-Aug/audio"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	samples    []int16 // PCM samples (16-bit)
	offset     int
	chunk      int // max bytes per Read; 0 means unlimited
	err        error
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesToRead := min(len(buf), (len(m.samples)-m.offset)*2)
	if m.chunk > 0 {
		bytesToRead = min(bytesToRead, m.chunk)
	}
	bytesToRead -= bytesToRead % 2

	for i := range bytesToRead / 2 {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}
	m.offset += bytesToRead / 2

	return bytesToRead, nil
}

func newTestSource(m *mockMP3Reader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, buf: make([]byte, 64)}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "garbage", data: []byte("This is not MP3 data")},
		{name: "empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 44100})

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 32 {
		t.Errorf("BufSize() = %d, want 32", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{
		sampleRate: 8000,
		samples:    []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0},
	})

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0, 0.25, -0.25, 0.0}
	for i := range n {
		if math.Abs(float64(dst[i]-expected[i])) > 0.001 {
			t.Errorf("dst[%d] = %v, want ~%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_ShortReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = int16(i * 100)
	}
	// 6-byte reads split frames across calls
	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: samples, chunk: 6})

	clip, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(clip.Samples) != 100 {
		t.Fatalf("read %d samples, want 100", len(clip.Samples))
	}
	for i, s := range clip.Samples {
		if want := float32(i*100) / 32768; s != want {
			t.Fatalf("sample %d = %v, want %v", i, s, want)
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2, 3, 4}})

	n, err := src.ReadSamples(make([]float32, 16))
	if n != 4 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (4, EOF)", n, err)
	}

	n, err = src.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_OddBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2, 3, 4}})

	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = (%d, %v), want (0, nil)", n, err)
	}
	if n, _ := src.ReadSamples(make([]float32, 3)); n != 2 {
		t.Errorf("ReadSamples(3) n = %d, want one whole frame", n)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := newTestSource(&mockMP3Reader{sampleRate: 8000, err: boom})

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		src := newTestSource(&mockMP3Reader{sampleRate: 44100, samples: samples})
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
