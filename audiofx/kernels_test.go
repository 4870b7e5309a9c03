// SPDX-License-Identifier: EPL-2.0

package audiofx

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/internal/audiotest"
)

func sineClip(rate, channels, frames int) *audio.Clip {
	return &audio.Clip{
		SampleRate: rate,
		Channels:   channels,
		Samples:    audiotest.Samples(channels, frames, audiotest.Sine(rate, 440, 0.5)),
	}
}

func TestPool_Order(t *testing.T) {
	t.Parallel()

	want := []string{"noise_overlay", "time_stretch", "pitch_shift", "volume_adjust", "reverb"}
	pool := Pool()
	if len(pool) != len(want) {
		t.Fatalf("Pool() has %d effects, want %d", len(pool), len(want))
	}
	for i, e := range pool {
		if e.Name() != want[i] {
			t.Errorf("Pool()[%d] = %q, want %q", i, e.Name(), want[i])
		}
	}
}

func TestPool_KeepsLayout(t *testing.T) {
	t.Parallel()

	for _, e := range Pool() {
		t.Run(e.Name(), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(3, 0))
			out, err := e.Apply(rng, sineClip(22050, 2, 4410))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if out.SampleRate != 22050 || out.Channels != 2 {
				t.Errorf("Apply() = %d Hz x %d, want 22050 Hz x 2", out.SampleRate, out.Channels)
			}
			if err := out.Validate(); err != nil {
				t.Errorf("Apply() produced invalid clip: %v", err)
			}
		})
	}
}

func TestVolumeAdjust_Inverse(t *testing.T) {
	t.Parallel()

	c := sineClip(8000, 1, 8000)
	before := c.DBFS()

	for _, db := range []float64{-3, -1.5, 0.5, 2.9} {
		c.ApplyGain(db)
		if got := c.DBFS(); math.Abs(got-(before+db)) > 1e-3 {
			t.Errorf("ApplyGain(%v) DBFS = %v, want %v", db, got, before+db)
		}
		c.ApplyGain(-db)
		if got := c.DBFS(); math.Abs(got-before) > 1e-3 {
			t.Errorf("ApplyGain(%v) then (%v) DBFS = %v, want %v", db, -db, got, before)
		}
	}
}

func TestVolumeAdjust_Range(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(9, 0))
	for range 50 {
		c := sineClip(8000, 1, 800)
		before := c.DBFS()

		out, err := VolumeAdjust{}.Apply(rng, c)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if delta := out.DBFS() - before; delta < MinGain-1e-3 || delta > MaxGain+1e-3 {
			t.Fatalf("gain %v dB outside [%v, %v]", delta, MinGain, MaxGain)
		}
	}
}

func TestReinterpret_FrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
	}{
		{name: "slower", ratio: 0.9},
		{name: "identity", ratio: 1},
		{name: "faster", ratio: 1.1},
		{name: "two semitones up", ratio: SemitoneRatio(2)},
		{name: "two semitones down", ratio: SemitoneRatio(-2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const rate, frames = 44100, 44100
			out, err := Reinterpret(sineClip(rate, 2, frames), tt.ratio)
			if err != nil {
				t.Fatalf("Reinterpret() error = %v", err)
			}
			if out.SampleRate != rate {
				t.Errorf("SampleRate = %d, want %d", out.SampleRate, rate)
			}

			playback := int(float64(rate) * tt.ratio)
			want := int(math.Ceil(float64(frames) * rate / float64(playback)))
			if got := out.Frames(); got < want-1 || got > want+1 {
				t.Errorf("Frames() = %d, want %d", got, want)
			}
		})
	}
}

func TestReinterpret_InvalidRatio(t *testing.T) {
	t.Parallel()

	for _, ratio := range []float64{0, -1, math.NaN()} {
		if _, err := Reinterpret(sineClip(8000, 1, 10), ratio); !errors.Is(err, ErrInvalidRatio) {
			t.Errorf("Reinterpret(%v) error = %v, want ErrInvalidRatio", ratio, err)
		}
	}
}

func TestTimeStretch_DurationRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 0))
	for range 20 {
		out, err := TimeStretch{}.Apply(rng, sineClip(16000, 1, 16000))
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		frames := 16000.0
		lo := int(frames/MaxStretch) - 2
		hi := int(frames/MinStretch) + 2
		if f := out.Frames(); f < lo || f > hi {
			t.Fatalf("Frames() = %d, want within [%d, %d]", f, lo, hi)
		}
	}
}

func TestEcho_ImpulseResponse(t *testing.T) {
	t.Parallel()

	c := audio.Silent(1000, 1, 1000)
	c.Samples[0] = 1

	out, err := Echo(c, 0.25)
	if err != nil {
		t.Fatalf("Echo() error = %v", err)
	}
	if out.Frames() != 1000 {
		t.Fatalf("Frames() = %d, want 1000", out.Frames())
	}

	tap := float32(audio.DBToLinear(EchoGain))
	for i, s := range out.Samples {
		want := float32(0)
		switch i {
		case 0:
			want = 1
		case 500:
			want = tap
		}
		if math.Abs(float64(s-want)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, s, want)
		}
	}
}

func TestReverb_KeepsLength(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 0))
	for _, frames := range []int{0, 1, 100, 22050} {
		out, err := Reverb{}.Apply(rng, sineClip(22050, 2, frames))
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if out.Frames() != frames {
			t.Errorf("Frames() = %d, want %d", out.Frames(), frames)
		}
	}
}

func TestEcho_InvalidDecay(t *testing.T) {
	t.Parallel()

	if _, err := Echo(sineClip(8000, 1, 10), -0.1); !errors.Is(err, ErrInvalidDecay) {
		t.Errorf("Echo(-0.1) error = %v, want ErrInvalidDecay", err)
	}
}

func TestAddNoise_Level(t *testing.T) {
	t.Parallel()

	for _, color := range audio.NoiseColors {
		t.Run(string(color), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(17, 0))
			orig := sineClip(16000, 2, 16000)
			signal := orig.DBFS()

			out, err := AddNoise(rng, orig.Clone(), color, -15)
			if err != nil {
				t.Fatalf("AddNoise() error = %v", err)
			}

			diff := out.Clone()
			for i := range diff.Samples {
				diff.Samples[i] -= orig.Samples[i]
			}
			if got := diff.DBFS(); math.Abs(got-(signal-15)) > 0.01 {
				t.Errorf("noise at %v dBFS, want %v", got, signal-15)
			}
		})
	}
}

func TestAddNoise_SilentAndEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		clip *audio.Clip
	}{
		{name: "silent", clip: audio.Silent(8000, 1, 100)},
		{name: "empty", clip: &audio.Clip{SampleRate: 8000, Channels: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frames := tt.clip.Frames()
			out, err := NoiseOverlay{}.Apply(rand.New(rand.NewPCG(1, 0)), tt.clip)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if out.Frames() != frames {
				t.Errorf("Frames() = %d, want %d", out.Frames(), frames)
			}
			for i, s := range out.Samples {
				if s != 0 {
					t.Fatalf("sample %d = %v, want 0", i, s)
				}
			}
		})
	}
}

func TestAddNoise_UnknownColor(t *testing.T) {
	t.Parallel()

	c := sineClip(8000, 1, 100)
	before := c.Clone()

	if _, err := AddNoise(rand.New(rand.NewPCG(1, 0)), c, audio.NoiseColor("violet"), -10); err == nil {
		t.Fatal("AddNoise() error = nil, want error")
	}
	for i := range c.Samples {
		if c.Samples[i] != before.Samples[i] {
			t.Fatal("failed AddNoise modified the clip")
		}
	}
}

func BenchmarkPitchShift(b *testing.B) {
	c := sineClip(44100, 2, 44100)
	b.ReportAllocs()

	for range b.N {
		if _, err := Reinterpret(c, SemitoneRatio(1)); err != nil {
			b.Fatal(err)
		}
	}
}
