// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/formats/wav"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/audiotest"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/config"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts/gemini"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Provider.APIKey = ""
	reg := newRegistry(cfg)

	if got := reg.Names(); len(got) != 2 || got[0] != "gemini" || got[1] != "silence" {
		t.Errorf("Names() = %v, want [gemini silence]", got)
	}

	synth, err := reg.New(context.Background(), config.ProviderSilence)
	if err != nil {
		t.Fatalf("New(silence) error = %v", err)
	}
	sp, err := synth.Synthesize(context.Background(), "hi", "Kore")
	if err != nil || sp.Payload == "" {
		t.Errorf("silence Synthesize() = %v, %v", sp, err)
	}

	if _, err := reg.New(context.Background(), config.ProviderGemini); !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Errorf("New(gemini) without key error = %v, want ErrMissingAPIKey", err)
	}
	if _, err := reg.New(context.Background(), "elevenlabs"); !errors.Is(err, tts.ErrUnknownProvider) {
		t.Errorf("New(elevenlabs) error = %v, want ErrUnknownProvider", err)
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	got, err := readText([]string{"hello", "world"}, nil, "fallback")
	if err != nil || got != "hello world" {
		t.Errorf("readText(args) = %q, %v", got, err)
	}

	got, err = readText(nil, nil, "fallback")
	if err != nil || got != "fallback" {
		t.Errorf("readText(none) = %q, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "stdin.txt")
	if err := os.WriteFile(path, []byte("  from stdin \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err = readText(nil, f, "fallback")
	if err != nil || got != "from stdin" {
		t.Errorf("readText(file) = %q, %v", got, err)
	}
}

func TestTranscodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "speech.b64")
	out := filepath.Join(dir, "speech.wav")

	raw := audiotest.SinePCM(24000, 1, 2400, 440)
	if err := os.WriteFile(in, []byte(audiotest.Base64(raw)+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := transcodeFile(context.Background(), in, out, false, config.Default()); err != nil {
		t.Fatalf("transcodeFile() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != wav.HeaderSize+len(raw) {
		t.Errorf("wrote %d bytes, want %d", len(data), wav.HeaderSize+len(raw))
	}
}

func TestPrintVoices(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printVoices(&out, tts.DefaultCatalog())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header plus 5 voices:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "Kore") || !strings.Contains(lines[1], "Female") {
		t.Errorf("first voice line = %q", lines[1])
	}
}
