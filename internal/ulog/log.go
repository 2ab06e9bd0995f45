// Package ulog wraps zerolog so the core uthread package logs through a
// small interface instead of importing zerolog directly in its exported
// surface, letting a host swap in its own logger (spec.md §6 treats the
// host's printing facility as an external collaborator).
package ulog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the narrow logging surface internal/uthread depends on.
type Logger interface {
	Debug(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type zlog struct {
	l zerolog.Logger
}

// New returns a Logger writing human-readable output to w, suitable for the
// scenario CLI. Pass io.Discard to silence diagnostics entirely.
func New(w io.Writer, level zerolog.Level) Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	l := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return &zlog{l: l}
}

// Default returns a warn-level logger writing to stderr, the quiet default
// used when a host constructs a Runtime without supplying its own logger.
func Default() Logger {
	return New(os.Stderr, zerolog.WarnLevel)
}

// Discard returns a Logger that drops everything, useful in tests that
// don't want scheduler chatter.
func Discard() Logger {
	return New(io.Discard, zerolog.Disabled)
}

func (z *zlog) Debug(msg string, kv ...any) { z.event(z.l.Debug(), msg, kv) }
func (z *zlog) Warn(msg string, kv ...any)  { z.event(z.l.Warn(), msg, kv) }
func (z *zlog) Error(msg string, kv ...any) { z.event(z.l.Error(), msg, kv) }

func (z *zlog) event(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
