package cli

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
)

// Verbosity of the agent's logging.
//
// The zero value is [LevelDebug]. Only the four declared constants are valid;
// every function that produces a LogLevel from text rejects anything else.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Canonical text for each level, in declaration order.
var logLevelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// Returns the canonical lowercase name of the level.
func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return logLevelNames[l]
}

// Parses a canonical level name.
//
// Matching is case-sensitive: "info" is accepted, "INFO" is not. The returned
// error wraps [ErrInvalidLogLevel].
func ParseLogLevel(s string) (LogLevel, error) {
	for i, name := range logLevelNames {
		if s == name {
			return LogLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, s)
}

// Implements [encoding.TextMarshaler].
func (l LogLevel) MarshalText() ([]byte, error) {
	if l < LevelDebug || l > LevelError {
		return nil, fmt.Errorf("%w %d", ErrInvalidLogLevel, int(l))
	}
	return []byte(l.String()), nil
}

// Implements [encoding.TextUnmarshaler].
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Decodes the flag value for kong.
//
// A missing value is reported as a [ParseError] of kind [MissingValue] and an
// unknown name as [InvalidValue], so the caller sees the classification
// without inspecting kong's message text.
func (l *LogLevel) Decode(ctx *kong.DecodeContext) error {
	flag := "--" + ctx.Value.Name
	value, err := popValue(ctx, flag)
	if err != nil {
		return err
	}
	level, err := ParseLogLevel(value)
	if err != nil {
		return &ParseError{Kind: InvalidValue, Flag: flag, Value: value, Err: err}
	}
	*l = level
	return nil
}

// Returns the slog level with the same meaning.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}
