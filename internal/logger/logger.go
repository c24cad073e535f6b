// Package logger configures the process-wide slog logger and carries
// request ids through contexts.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New builds a logger writing to w. Records logged with a context that
// carries a request id get a request_id attribute.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var h slog.Handler
	if cfg.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	h = h.WithAttrs(cfg.BaseAttributes())

	return slog.New(&contextHandler{Handler: h})
}

// Setup installs a stderr logger as the slog default and returns it
func Setup(cfg Config) *slog.Logger {
	l := New(cfg, os.Stderr)
	slog.SetDefault(l)
	return l
}

// NewRequestID creates a new request id
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestIDFromContext extracts the request id from the context, if present
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger with the request id attached when
// present. Loggers built by New already read the id from the context passed
// to each *Context call, so they are returned unchanged.
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if _, ok := l.Handler().(*contextHandler); ok {
		return l
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		return l.With(KeyRequestID, id)
	}
	return l
}

type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := RequestIDFromContext(ctx); ok {
		r.AddAttrs(slog.String(KeyRequestID, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
