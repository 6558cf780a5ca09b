// SPDX-License-Identifier: EPL-2.0

// Package gemini implements tts.Synthesizer on top of the Gemini
// speech-generation API through google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/payload"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
)

const (
	DefaultModel      = "gemini-2.5-flash-preview-tts"
	DefaultSampleRate = 24000
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("gemini: API key is missing")

// Config configures the Gemini synthesizer.
type Config struct {
	APIKey string
	// Model defaults to DefaultModel.
	Model string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
	// Timeout per request; zero leaves it to ctx.
	Timeout time.Duration
	// SampleRate is assumed when the response MIME type carries no rate.
	SampleRate int
}

// Synthesizer calls Models.GenerateContent with an AUDIO response modality.
type Synthesizer struct {
	client     *genai.Client
	model      string
	sampleRate int
}

// New creates a Synthesizer. The genai client is created once and reused.
func New(ctx context.Context, cfg Config) (*Synthesizer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	}
	if cfg.Timeout > 0 {
		cc.HTTPOptions.Timeout = &cfg.Timeout
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Synthesizer{
		client:     client,
		model:      cfg.Model,
		sampleRate: cfg.SampleRate,
	}, nil
}

// Synthesize asks the model to read text aloud with the prebuilt voice voiceID.
// The first inline data part of the first candidate is returned as a base64
// payload; a response without one is tts.ErrNoAudio.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voiceID string) (*tts.Speech, error) {
	if text == "" {
		return nil, tts.ErrEmptyText
	}

	start := time.Now()
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voiceID},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).
			Str("model", s.model).
			Str("voice", voiceID).
			Msg("gemini speech generation failed")
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	blob := firstInlineData(resp)
	if blob == nil || len(blob.Data) == 0 {
		return nil, tts.ErrNoAudio
	}

	rate := rateFromMIME(blob.MIMEType, s.sampleRate)

	log.Debug().
		Str("model", s.model).
		Str("voice", voiceID).
		Str("mime_type", blob.MIMEType).
		Int("bytes", len(blob.Data)).
		Dur("elapsed", time.Since(start)).
		Msg("gemini speech generated")

	return &tts.Speech{
		Payload:    payload.Encode(blob.Data),
		SampleRate: rate,
		Channels:   1,
		MIMEType:   blob.MIMEType,
	}, nil
}

func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return nil
	}
	return c.Content.Parts[0].InlineData
}

// rateFromMIME reads the rate parameter of e.g. "audio/L16;codec=pcm;rate=24000".
func rateFromMIME(mimeType string, fallback int) int {
	if mimeType == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return fallback
	}
	rate, err := strconv.Atoi(params["rate"])
	if err != nil || rate <= 0 {
		return fallback
	}
	return rate
}
