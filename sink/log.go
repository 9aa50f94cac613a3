package sink

import (
	"context"
	"log/slog"
)

// Log writes frames to a structured logger. Rehearsal mode: point the
// show at a Log sink and read the lighting decisions instead of
// driving fixtures.
type Log struct {
	logger *slog.Logger
}

// NewLog builds a Log sink. A nil logger falls back to slog.Default().
func NewLog(l *slog.Logger) *Log {
	if l == nil {
		l = slog.Default()
	}
	return &Log{logger: l.With(slog.String("component", "sink"))}
}

// Send logs the frame at Info level.
func (l *Log) Send(_ context.Context, f Frame) error {
	l.logger.Info("frame",
		slog.String("set", f.Set.String()),
		slog.Any("fixtures", f.Fixtures),
		slog.Any("values", f.Values))
	return nil
}
