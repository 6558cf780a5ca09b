// SPDX-License-Identifier: EPL-2.0

// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps debug, info, warn and error onto zerolog levels.
// Anything else, including the empty string, is info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init sets the global level and time format. When the LOG_LEVEL environment
// variable is set it wins over level. Logs go to stderr, in console form if
// pretty is true.
func Init(level string, pretty bool) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	logLevel := ParseLevel(level)

	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	log.Debug().
		Str("level", logLevel.String()).
		Str("time_format", "unix ms").
		Msg("Logger initialized")
}
