// Package logger wraps zerolog with the small API used across the library.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New. The zero value logs warnings and above as JSON
// to stderr.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a leveled logger. A nil *Logger is valid and discards
// everything, so components can hold one without checking.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from opts. It fails only on an unknown level name.
func New(opts Options) (*Logger, error) {
	level := zerolog.WarnLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &Logger{z: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// WithFields returns a child logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Fields(fields).Logger()}
}

// WithComponent tags every entry with the emitting component name.
func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Str("component", name).Logger()}
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Info(msg string)  { l.emit(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached when it is non-nil.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.z.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
