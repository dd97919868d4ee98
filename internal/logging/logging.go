// Package logging builds the CLI logger and holds the attribute helpers used
// across the codebase so keys stay consistent.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Common log attribute keys.
const (
	KeyTool     = "tool"
	KeyBackend  = "backend"
	KeyTurnID   = "turn_id"
	KeyDuration = "duration"
	KeyError    = "error"
)

// New returns a colorized logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.TimeOnly,
	}))
}

// ParseLevel converts a level name to slog.Level; unknown names mean warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Tool(name string) slog.Attr { return slog.String(KeyTool, name) }

func Backend(name string) slog.Attr { return slog.String(KeyBackend, name) }

func TurnID(id string) slog.Attr { return slog.String(KeyTurnID, id) }

func Duration(d time.Duration) slog.Attr { return slog.Duration(KeyDuration, d) }

// Err returns an error attribute. A nil err yields an empty group, which
// slog omits.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizeToken describes a secret without revealing any of it.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
