// SPDX-License-Identifier: EPL-2.0

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/config"
)

func TestLoadFromReader_Full(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	yaml := `
log_level: debug
provider:
  name: gemini
  model: gemini-custom-tts
  api_key: secret
  base_url: http://localhost:9999
  timeout: 30s
audio:
  sample_rate: 16000
  channels: 2
library:
  dir: ` + t.TempDir() + `
voices:
  - id: Kore
    name: Kore
    gender: Female
    description: Calm.
  - id: Puck
default_prompt: Hello there.
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.LogLevel != config.LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Provider.Model != "gemini-custom-tts" || cfg.Provider.APIKey != "secret" {
		t.Errorf("Provider = %+v", cfg.Provider)
	}
	if cfg.Provider.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Provider.Timeout)
	}
	if cfg.Audio.SampleRate != 16000 || cfg.Audio.Channels != 2 {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
	if cfg.DefaultPrompt != "Hello there." {
		t.Errorf("DefaultPrompt = %q", cfg.DefaultPrompt)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if cat.Len() != 2 || cat.Default().ID != "Kore" {
		t.Errorf("Catalog() = %d voices, default %q", cat.Len(), cat.Default().ID)
	}
}

func TestLoadFromReader_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.Provider.Name != config.ProviderGemini {
		t.Errorf("Provider.Name = %q, want gemini", cfg.Provider.Name)
	}
	if cfg.Provider.Model != "gemini-2.5-flash-preview-tts" {
		t.Errorf("Provider.Model = %q", cfg.Provider.Model)
	}
	if cfg.Provider.APIKey != "from-env" {
		t.Errorf("Provider.APIKey = %q, want GEMINI_API_KEY fallback", cfg.Provider.APIKey)
	}
	if cfg.Audio.SampleRate != 24000 || cfg.Audio.Channels != 1 {
		t.Errorf("Audio = %+v, want 24000/1", cfg.Audio)
	}
	if cfg.LogLevel != config.LogInfo {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if cat.Len() != 5 {
		t.Errorf("default catalog has %d voices, want 5", cat.Len())
	}
}

func TestDefault_APIKeyPrecedence(t *testing.T) {
	t.Setenv("API_KEY", "primary")
	t.Setenv("GEMINI_API_KEY", "secondary")

	if got := config.Default().Provider.APIKey; got != "primary" {
		t.Errorf("APIKey = %q, want API_KEY to win", got)
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("provider:\n  nmae: gemini\n"))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	yaml := `
log_level: loud
provider:
  name: elevenlabs
  timeout: -1s
audio:
  sample_rate: -8000
  channels: -1
voices:
  - id: A
  - id: A
  - name: missing id
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	for _, want := range []string{
		"log_level",
		"provider.name",
		"provider.timeout",
		"audio.sample_rate",
		"audio.channels",
		"duplicate",
		"voices[2].id is required",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestValidate_LibraryDirIsFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Library.Dir = file

	if err := config.Validate(cfg); err == nil || !strings.Contains(err.Error(), "library.dir") {
		t.Errorf("Validate() error = %v, want library.dir complaint", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "voxfluent.yaml")
	if err := os.WriteFile(path, []byte("provider:\n  name: silence\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.Name != config.ProviderSilence {
		t.Errorf("Provider.Name = %q, want silence", cfg.Provider.Name)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}
