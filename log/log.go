package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Level represents a logging severity threshold.
type Level string

const (
	// LevelError only logs errors.
	LevelError Level = "error"
	// LevelWarn logs warnings and above.
	LevelWarn Level = "warn"
	// LevelInfo logs informational messages and above.
	LevelInfo Level = "info"
	// LevelDebug logs everything, including debug messages.
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs in a human-readable key=value format.
	FormatText Format = "text"
)

// Handler is a [slog.Handler] constructed by this package.
type Handler = slog.Handler

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// ParseLevel parses a log level string into a [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownLogLevel, level)
}

// ParseFormat parses a log format string into a [Format].
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains(GetAllFormats(), logFmt) {
		return logFmt, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownLogFormat, format)
}

// GetAllLevels returns every recognized [Level].
func GetAllLevels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
}

// GetAllLevelStrings returns every recognized level as a string, for use in
// flag help text and shell completions.
func GetAllLevelStrings() []string {
	levels := GetAllLevels()
	strs := make([]string, len(levels))

	for i, l := range levels {
		strs[i] = string(l)
	}

	return strs
}

// GetAllFormats returns every recognized [Format].
func GetAllFormats() []Format {
	return []Format{FormatJSON, FormatLogfmt, FormatText}
}

// GetAllFormatStrings returns every recognized format as a string, for use in
// flag help text and shell completions.
func GetAllFormatStrings() []string {
	formats := GetAllFormats()
	strs := make([]string, len(formats))

	for i, f := range formats {
		strs[i] = string(f)
	}

	return strs
}

// slogLevel converts l to the [slog.Level] it gates.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	}

	return slog.LevelInfo
}

// NewHandler creates a [Handler] that writes to w at the given level and
// format. FormatLogfmt and FormatText both produce key=value output; only
// FormatJSON differs structurally.
func NewHandler(w io.Writer, level Level, format Format) Handler {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level.slogLevel(),
	}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// NewHandlerFromStrings parses levelStr and formatStr and delegates to
// [NewHandler].
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (Handler, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, level, format), nil
}
