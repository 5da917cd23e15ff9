package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging surface the rest of the module depends on.
// Any slog-shaped implementation satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Output io.Writer
	Level  Level
	Format Format
}

// DefaultLogger writes warnings and above as text to stderr.
var DefaultLogger = New(Options{Output: os.Stderr, Level: DefaultLevel})

// Nop discards everything. Handy for tests and for callers that don't
// care about skipped-sequence diagnostics.
var Nop = New(Options{Output: io.Discard, Level: ErrorLevel})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	case FormatText:
		fallthrough
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	return &logger{Logger: slog.New(handler)}
}
