// SPDX-License-Identifier: EPL-2.0

// Package studio keeps the history of generated speech clips.
//
// Generate asks a tts.Synthesizer for speech, runs the payload through
// voxfluent.Transcode and stores the WAV in a file owned by the new clip.
// The history is newest first. Deleting a clip, or closing the studio,
// releases its file.
package studio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	voxfluent "github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/observe"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/payload"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
)

// Studio is safe for concurrent use. Synthesis and transcoding run outside
// the history lock, so several Generate calls may be in flight at once.
type Studio struct {
	synth      tts.Synthesizer
	catalog    *tts.Catalog
	sampleRate int
	channels   int
	dir        string
	metrics    *observe.Metrics
	now        func() time.Time

	mu     sync.Mutex
	clips  []*Clip
	closed bool
}

// Option configures a Studio.
type Option func(*Studio)

// WithCatalog replaces the built-in voice catalogue.
func WithCatalog(c *tts.Catalog) Option {
	return func(s *Studio) { s.catalog = c }
}

// WithFormat sets the PCM format assumed when the synthesizer reports none.
func WithFormat(sampleRate, channels int) Option {
	return func(s *Studio) {
		s.sampleRate = sampleRate
		s.channels = channels
	}
}

// WithLibraryDir sets where clip files are written. Default is os.TempDir().
func WithLibraryDir(dir string) Option {
	return func(s *Studio) { s.dir = dir }
}

// WithMetrics sets the instruments clips and errors are recorded on.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Studio) { s.metrics = m }
}

// WithClock overrides time.Now for clip timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Studio) { s.now = now }
}

// New returns a Studio generating clips with synth.
func New(synth tts.Synthesizer, opts ...Option) *Studio {
	s := &Studio{
		synth:      synth,
		catalog:    tts.DefaultCatalog(),
		sampleRate: voxfluent.DefaultSampleRate,
		channels:   voxfluent.DefaultChannels,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}
	return s
}

// Catalog returns the voices the studio accepts.
func (s *Studio) Catalog() *tts.Catalog { return s.catalog }

// Generate speaks text with voiceID (empty means the default voice) and
// prepends the new clip to the history.
//
// Text is trimmed first; blank text is tts.ErrEmptyText and an unknown voice
// tts.ErrUnknownVoice, both without contacting the synthesizer. Codec
// failures come back as payload.ErrDecode, audio.ErrEmptyAudio or
// wav.ErrAllocation. On any error the history is unchanged.
func (s *Studio) Generate(ctx context.Context, text, voiceID string) (*Clip, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, tts.ErrEmptyText
	}

	voice, err := s.catalog.Resolve(voiceID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	id := uuid.NewString()
	logger := log.With().Str("clip", id).Str("voice", voice.ID).Logger()

	speech, err := s.synth.Synthesize(ctx, text, voice.ID)
	if err == nil && (speech == nil || speech.Payload == "") {
		err = tts.ErrNoAudio
	}
	if err != nil {
		s.metrics.RecordError(ctx, observe.StageSynthesize)
		logger.Error().Err(err).Msg("speech generation failed")
		return nil, fmt.Errorf("synthesizing: %w", err)
	}

	rate, channels := speech.SampleRate, speech.Channels
	if rate == 0 {
		rate = s.sampleRate
	}
	if channels == 0 {
		channels = s.channels
	}

	buf, data, err := voxfluent.Transcode(speech.Payload, rate, channels)
	if err != nil {
		s.metrics.RecordError(ctx, stageOf(err))
		logger.Error().Err(err).Int("sample_rate", rate).Int("channels", channels).Msg("transcoding failed")
		return nil, err
	}

	dir := s.dir
	if dir == "" {
		dir = os.TempDir()
	}
	art, err := writeArtifact(dir, id[:8], data)
	if err != nil {
		s.metrics.RecordError(ctx, observe.StageStore)
		logger.Error().Err(err).Str("dir", dir).Msg("storing clip failed")
		return nil, err
	}

	clip := &Clip{
		ID:        id,
		Text:      text,
		Voice:     voice,
		CreatedAt: s.now(),
		Buffer:    buf,
		artifact:  art,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = art.Release()
		return nil, ErrClosed
	}
	s.clips = slices.Insert(s.clips, 0, clip)
	s.mu.Unlock()

	elapsed := time.Since(start)
	s.metrics.RecordClip(ctx, voice.ID, elapsed.Seconds(), buf.DurationSeconds())
	logger.Info().
		Dur("elapsed", elapsed).
		Dur("duration", buf.Duration()).
		Int("bytes", len(data)).
		Str("path", art.Path()).
		Msg("clip generated")

	return clip, nil
}

// stageOf attributes a Transcode error to its pipeline stage.
func stageOf(err error) string {
	switch {
	case errors.Is(err, payload.ErrDecode):
		return observe.StageDecode
	case errors.Is(err, audio.ErrEmptyAudio), errors.Is(err, audio.ErrInvalidFormat):
		return observe.StageInterpret
	default:
		return observe.StageEncode
	}
}

// Clips returns the history, newest first.
func (s *Studio) Clips() []*Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.clips)
}

func (s *Studio) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clips)
}

// Clip finds a clip by id.
func (s *Studio) Clip(id string) (*Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return s.clips[i], true
}

// Latest returns the newest clip.
func (s *Studio) Latest() (*Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.clips) == 0 {
		return nil, false
	}
	return s.clips[0], true
}

// Delete removes a clip from the history and releases its file.
func (s *Studio) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrClipNotFound, id)
	}
	clip := s.clips[i]
	s.clips = slices.Delete(s.clips, i, i+1)
	s.mu.Unlock()

	s.metrics.RecordDelete(ctx, 1)
	log.Debug().Str("clip", id).Msg("clip deleted")

	return clip.artifact.Release()
}

// Close releases every clip file and empties the history. Generate fails
// with ErrClosed afterwards. Close is idempotent.
func (s *Studio) Close() error {
	s.mu.Lock()
	clips := s.clips
	s.clips = nil
	s.closed = true
	s.mu.Unlock()

	var errs []error
	for _, c := range clips {
		if err := c.artifact.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(clips) > 0 {
		s.metrics.RecordDelete(context.Background(), len(clips))
		log.Debug().Int("clips", len(clips)).Msg("studio closed")
	}

	return errors.Join(errs...)
}

func (s *Studio) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// index must be called with s.mu held.
func (s *Studio) index(id string) int {
	return slices.IndexFunc(s.clips, func(c *Clip) bool { return c.ID == id })
}
