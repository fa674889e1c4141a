// Package logging configures the process-wide zerolog logger for the mlens
// CLI and the macrolens library.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base        zerolog.Logger
	initialized bool
)

// Init configures the global logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: warn, this is a CLI)
//   - LOG_PRETTY: true|false (default: true)
func Init() {
	level := parseLevel(getenv("LOG_LEVEL", "warn"))
	pretty := !strings.EqualFold(getenv("LOG_PRETTY", "true"), "false")

	zerolog.TimeFieldFormat = time.RFC3339
	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(level)
	initialized = true
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if !initialized {
		Init()
	}
	return &base
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
