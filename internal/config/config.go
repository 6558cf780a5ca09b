// SPDX-License-Identifier: EPL-2.0

// Package config provides the configuration schema and YAML loader of the
// studio command.
package config

import (
	"os"
	"time"

	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Provider names understood by the command.
const (
	ProviderGemini  = "gemini"
	ProviderSilence = "silence"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`

	Provider ProviderConfig `yaml:"provider"`
	Audio    AudioConfig    `yaml:"audio"`
	Library  LibraryConfig  `yaml:"library"`

	// Voices replaces the built-in catalogue when non-empty.
	Voices []VoiceConfig `yaml:"voices"`

	DefaultPrompt string `yaml:"default_prompt"`
}

// ProviderConfig selects and configures the speech generation service.
type ProviderConfig struct {
	Name    string        `yaml:"name"`
	Model   string        `yaml:"model"`
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// AudioConfig is the PCM format assumed when the service does not report one.
type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
}

// LibraryConfig says where clip files are written. Empty means the OS temp dir.
type LibraryConfig struct {
	Dir string `yaml:"dir"`
}

type VoiceConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Gender      string `yaml:"gender"`
	Description string `yaml:"description"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogInfo
	}
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = ProviderGemini
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = "gemini-2.5-flash-preview-tts"
	}
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = apiKeyFromEnv()
	}
	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = 24000
	}
	if cfg.Audio.Channels == 0 {
		cfg.Audio.Channels = 1
	}
	if cfg.DefaultPrompt == "" {
		cfg.DefaultPrompt = tts.DefaultPrompt
	}
}

func apiKeyFromEnv() string {
	if k := os.Getenv("API_KEY"); k != "" {
		return k
	}
	return os.Getenv("GEMINI_API_KEY")
}

// Catalog builds the voice catalogue: the configured voices, or the
// built-in ones when none are configured.
func (cfg *Config) Catalog() (*tts.Catalog, error) {
	if len(cfg.Voices) == 0 {
		return tts.DefaultCatalog(), nil
	}
	voices := make([]tts.Voice, len(cfg.Voices))
	for i, v := range cfg.Voices {
		voices[i] = tts.Voice{
			ID:          v.ID,
			Name:        v.Name,
			Gender:      tts.Gender(v.Gender),
			Description: v.Description,
		}
	}
	return tts.NewCatalog(voices)
}
