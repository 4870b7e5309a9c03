// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// DBToLinear converts a dB gain to a linear amplitude factor (20*log10).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to dB. Zero maps to -Inf.
func LinearToDB(linear float64) float64 {
	if linear <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(linear)
}

// RMS of every sample across all channels.
func (c *Clip) RMS() float64 {
	if len(c.Samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range c.Samples {
		v := float64(s)
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(c.Samples)))
}

// DBFS is the clip loudness relative to digital full scale (1.0). Silent and
// empty clips report -Inf.
func (c *Clip) DBFS() float64 {
	return LinearToDB(c.RMS())
}

// ApplyGain scales every sample in place by db decibels.
func (c *Clip) ApplyGain(db float64) {
	g := float32(DBToLinear(db))
	for i := range c.Samples {
		c.Samples[i] *= g
	}
}

// Gained returns a copy of c scaled by db decibels.
func (c *Clip) Gained(db float64) *Clip {
	out := c.Clone()
	out.ApplyGain(db)
	return out
}

// Overlay sums o onto c in place starting at frame offset position. c keeps
// its length: frames of o running past the end of c are dropped. Both clips
// must share a layout.
func (c *Clip) Overlay(o *Clip, position int) error {
	if !c.SameLayout(o) {
		return ErrFormatMismatch
	}
	if position < 0 {
		position = 0
	}

	start := position * c.Channels
	if start >= len(c.Samples) {
		return nil
	}

	dst := c.Samples[start:]
	n := min(len(dst), len(o.Samples))
	for i := range n {
		dst[i] += o.Samples[i]
	}

	return nil
}

// Append returns a new clip holding c followed by o.
func (c *Clip) Append(o *Clip) (*Clip, error) {
	if !c.SameLayout(o) {
		return nil, ErrFormatMismatch
	}

	samples := make([]float32, 0, len(c.Samples)+len(o.Samples))
	samples = append(samples, c.Samples...)
	samples = append(samples, o.Samples...)

	return &Clip{SampleRate: c.SampleRate, Channels: c.Channels, Samples: samples}, nil
}
