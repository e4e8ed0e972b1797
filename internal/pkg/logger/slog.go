package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// requestContextHandler tags every record with the service name, extracts
// request_id from the context and attaches a stack trace to error records.
type requestContextHandler struct {
	slog.Handler

	service string
}

func (h *requestContextHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String("service", h.service))

	if ctx != nil {
		if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
			record.AddAttrs(slog.String("request_id", requestID))
		}
	}

	if record.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		record.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}

	return h.Handler.Handle(ctx, record)
}

func (h *requestContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &requestContextHandler{Handler: h.Handler.WithAttrs(attrs), service: h.service}
}

func (h *requestContextHandler) WithGroup(name string) slog.Handler {
	return &requestContextHandler{Handler: h.Handler.WithGroup(name), service: h.service}
}

// InitStructuredLogger installs the process wide JSON logger of a service.
func InitStructuredLogger(service string, level slog.Leveler) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, opts)
	handler := &requestContextHandler{Handler: jsonHandler, service: service}

	slog.SetDefault(slog.New(handler))
}
