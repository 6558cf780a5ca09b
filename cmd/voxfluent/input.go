// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/config"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts/gemini"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts/silence"
)

// newRegistry registers every provider the command knows, configured from cfg.
func newRegistry(cfg *config.Config) *tts.Registry {
	reg := tts.NewRegistry()

	reg.Register(config.ProviderGemini, func(ctx context.Context) (tts.Synthesizer, error) {
		return gemini.New(ctx, gemini.Config{
			APIKey:     cfg.Provider.APIKey,
			Model:      cfg.Provider.Model,
			BaseURL:    cfg.Provider.BaseURL,
			Timeout:    cfg.Provider.Timeout,
			SampleRate: cfg.Audio.SampleRate,
		})
	})
	reg.Register(config.ProviderSilence, func(context.Context) (tts.Synthesizer, error) {
		return silence.New(
			silence.WithFormat(cfg.Audio.SampleRate, cfg.Audio.Channels),
			silence.WithTone(0.2),
		), nil
	})

	return reg
}

// readText joins args, or reads stdin when there are none and it is not a
// terminal. fallback is used when both are empty.
func readText(args []string, stdin *os.File, fallback string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin != nil {
		if fi, err := stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return "", fmt.Errorf("reading stdin: %w", err)
			}
			if text := strings.TrimSpace(string(data)); text != "" {
				return text, nil
			}
		}
	}

	return fallback, nil
}

// readPayload loads a base64 payload file. Surrounding whitespace, such as
// the trailing newline editors add, is not part of the payload.
func readPayload(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading payload: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
