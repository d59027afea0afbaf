package testing

import (
	"context"
	"log/slog"
)

// CaptureHandler is a slog.Handler that buffers records for inspection by
// tests. Records beyond the buffer's capacity are dropped rather than
// blocking the code under test
type CaptureHandler struct {
	Logs     chan slog.Record
	minLevel slog.Leveler
}

func NewCaptureHandler() *CaptureHandler {
	var minLevel slog.LevelVar
	minLevel.Set(slog.LevelDebug)
	return &CaptureHandler{
		Logs:     make(chan slog.Record, 16),
		minLevel: &minLevel,
	}
}

// Drain returns the records captured so far
func (h *CaptureHandler) Drain() []slog.Record {
	var res []slog.Record
	for {
		select {
		case r := <-h.Logs:
			res = append(res, r)
		default:
			return res
		}
	}
}

func (h *CaptureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	select {
	case h.Logs <- r:
	default:
	}
	return nil
}

func (h *CaptureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *CaptureHandler) WithGroup(_ string) slog.Handler {
	return h
}
