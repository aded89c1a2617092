package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	// Default is the default logger instance
	Default *slog.Logger
)

func init() {
	// Roasting is the user-facing output; diagnostics stay quiet unless asked for.
	Default = New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	})
}

// Format represents the output format
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
)

// Config holds logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// New creates a new logger with the given configuration
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: toSlogLevel(cfg.Level)})
	case FormatPretty:
		handler = tint.NewHandler(cfg.Output, &tint.Options{
			Level:      toSlogLevel(cfg.Level),
			TimeFormat: time.Kitchen,
		})
	default:
		handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: toSlogLevel(cfg.Level)})
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ParseFormat maps a format name to a Format. Unknown names map to FormatText.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON
	case FormatPretty:
		return FormatPretty
	default:
		return FormatText
	}
}

// toSlogLevel converts our Level to slog.Level
func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OrDefault returns l, or Default when l is nil.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Default
	}
	return l
}

// Debug logs a debug message using the default logger
func Debug(msg string, args ...any) {
	Default.Debug(msg, args...)
}

// Info logs an info message using the default logger
func Info(msg string, args ...any) {
	Default.Info(msg, args...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, args ...any) {
	Default.Warn(msg, args...)
}

// Error logs an error message using the default logger
func Error(msg string, args ...any) {
	Default.Error(msg, args...)
}

// With creates a child logger with the given attributes
func With(args ...any) *slog.Logger {
	return Default.With(args...)
}
