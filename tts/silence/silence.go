// SPDX-License-Identifier: EPL-2.0

// Package silence is an offline tts.Synthesizer. It renders a fixed amount
// of audio per character of text, either silence or a quiet tone whose pitch
// depends on the voice, so the whole studio can run without network access.
package silence

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/payload"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
)

const (
	DefaultSampleRate = 24000
	// DefaultPerRune is how much audio each character of text produces.
	DefaultPerRune = 50 * time.Millisecond

	mimeType = "audio/L16;codec=pcm;rate="
)

// Synthesizer generates deterministic PCM. The zero value is not usable; use New.
type Synthesizer struct {
	sampleRate int
	channels   int
	perRune    time.Duration
	amplitude  float64
}

type Option func(*Synthesizer)

// WithFormat sets the sample rate and channel count of the output.
func WithFormat(sampleRate, channels int) Option {
	return func(s *Synthesizer) {
		s.sampleRate = sampleRate
		s.channels = channels
	}
}

// WithPerRune sets the audio length produced per character.
func WithPerRune(d time.Duration) Option {
	return func(s *Synthesizer) { s.perRune = d }
}

// WithTone replaces silence by a sine tone of the given amplitude in [0, 1].
func WithTone(amplitude float64) Option {
	return func(s *Synthesizer) { s.amplitude = amplitude }
}

func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		sampleRate: DefaultSampleRate,
		channels:   1,
		perRune:    DefaultPerRune,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Synthesize renders perRune of audio for every rune of the trimmed text.
// The same text and voice always produce the same payload.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voiceID string) (*tts.Speech, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, tts.ErrEmptyText
	}

	frames := int(int64(utf8.RuneCountInString(text)) * int64(s.perRune) * int64(s.sampleRate) / int64(time.Second))
	frames = max(frames, 1)

	freq := toneFor(voiceID)
	raw := make([]byte, frames*s.channels*2)
	for i := range frames {
		v := int16(math.Round(s.amplitude * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(s.sampleRate))))
		for ch := range s.channels {
			off := (i*s.channels + ch) * 2
			binary.LittleEndian.PutUint16(raw[off:off+2], uint16(v))
		}
	}

	return &tts.Speech{
		Payload:    payload.Encode(raw),
		SampleRate: s.sampleRate,
		Channels:   s.channels,
		MIMEType:   mimeType + strconv.Itoa(s.sampleRate),
	}, nil
}

// toneFor maps a voice id onto 110 Hz to 440 Hz.
func toneFor(voiceID string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(voiceID))
	return 110 + float64(h.Sum32()%331)
}
