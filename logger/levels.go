package logger

import "log/slog"

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel

	// DefaultLevel keeps a library quiet unless something is actually
	// off: skipped sequences and the like surface as warnings.
	DefaultLevel Level = WarnLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

// Format selects the slog handler encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)
