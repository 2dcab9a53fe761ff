//go:build !(rp2040 || rp2350)

package logx

import (
	"log/slog"
	"os"
)

// slogLogger adapts log/slog to Logger, the host's native structured logger
// grounded on the spec's request for human- and machine-readable SBC-side
// logs; MCU builds can't afford slog's allocations, hence the split.
type slogLogger struct {
	l     *slog.Logger
	level Level
}

func NewSlogLogger(level Level) Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: toSlogLevel(level)})
	return &slogLogger{l: slog.New(h), level: level}
}

func toSlogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *slogLogger) Debug(msg string, kv ...any) { s.l.Debug(msg, kv...) }
func (s *slogLogger) Info(msg string, kv ...any)  { s.l.Info(msg, kv...) }
func (s *slogLogger) Error(msg string, kv ...any) { s.l.Error(msg, kv...) }
func (s *slogLogger) With(kv ...any) Logger {
	return &slogLogger{l: s.l.With(kv...), level: s.level}
}

func newDefaultLogger(level Level) Logger { return NewSlogLogger(level) }
