package ebiten

import (
	"io"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"chosenoffset.com/wanderer/internal/audio"
)

// AudioSink plays mixer voices through an Ebitengine audio context.
type AudioSink struct {
	ctx *ebitenaudio.Context
}

// NewAudioSink creates the process-wide audio context. Only one may exist.
func NewAudioSink() *AudioSink {
	return &AudioSink{ctx: ebitenaudio.NewContext(audio.SampleRate)}
}

// NewVoice implements audio.Sink.
func (s *AudioSink) NewVoice(pcm []byte) audio.Voice {
	return s.ctx.NewPlayerFromBytes(pcm)
}

// DecodeWAV is an audio.Decoder for WAV files, resampled to the mixer rate.
func DecodeWAV(r io.Reader) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(audio.SampleRate, r)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}
