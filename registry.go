// SPDX-License-Identifier: EPL-2.0

package neuroaug

import (
	"github.com/KuNaL8103/Neuro-Aug/audio"
	"github.com/KuNaL8103/Neuro-Aug/formats/ffmpeg"
	"github.com/KuNaL8103/Neuro-Aug/formats/flac"
	"github.com/KuNaL8103/Neuro-Aug/formats/mp3"
	"github.com/KuNaL8103/Neuro-Aug/formats/vorbis"
	"github.com/KuNaL8103/Neuro-Aug/formats/wav"
)

// AudioFormats are the container keys the audio pipeline reads and writes.
var AudioFormats = []string{"flac", "mp3", "ogg", "wav"}

// NewAudioRegistry registers a decoder and an encoder for every entry of
// AudioFormats. WAV is written natively; the compressed containers are
// encoded by ffmpegBinary (DefaultBinary when empty), which is only looked up
// when an encode actually runs.
func NewAudioRegistry(ffmpegBinary string) *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("mp3", ffmpeg.NewEncoder(ffmpegBinary, ffmpeg.MP3))
	reg.RegisterEncoder("ogg", ffmpeg.NewEncoder(ffmpegBinary, ffmpeg.Vorbis))
	reg.RegisterEncoder("flac", ffmpeg.NewEncoder(ffmpegBinary, ffmpeg.FLAC))

	return reg
}
